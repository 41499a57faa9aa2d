package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

// fakePoster applies entries against in-memory balances and can be told
// to fail on the nth call.
type fakePoster struct {
	balances map[uuid.UUID]int64
	calls    int
	failOn   int // 1-based call number to fail on; 0 means never
}

func (f *fakePoster) PostEntry(_ context.Context, in PostEntryInput) (*PostedEntry, error) {
	f.calls++
	if f.failOn != 0 && f.calls == f.failOn {
		return nil, errors.New("boom")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if f.balances == nil {
		f.balances = map[uuid.UUID]int64{}
	}
	delta := in.AmountCents
	if in.Type == EntryDebit {
		delta = -delta
	}
	f.balances[in.EmployeeID] += delta
	return &PostedEntry{ID: uuid.New(), AmountCents: in.AmountCents, BalanceAfter: f.balances[in.EmployeeID]}, nil
}

func (f *fakePoster) GetBalance(_ context.Context, employeeID uuid.UUID) (int64, error) {
	return f.balances[employeeID], nil
}

func cmd(emp uuid.UUID, cents int64, typ EntryType) Command {
	return Command{Entry: PostEntryInput{
		LocationID:  uuid.New(),
		EmployeeID:  emp,
		AmountCents: cents,
		Type:        typ,
		SourceType:  SourceAdjustment,
	}}
}

func TestRunCommands_AllSucceed(t *testing.T) {
	emp := uuid.New()
	p := &fakePoster{}

	results, err := RunCommands(context.Background(), p, []Command{
		cmd(emp, 500, EntryCredit),
		cmd(emp, 200, EntryDebit),
	})
	if err != nil {
		t.Fatalf("RunCommands failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, r.Err)
		}
		if r.Posted == nil {
			t.Errorf("result %d: missing posted entry", i)
		}
	}
	if got := p.balances[emp]; got != 300 {
		t.Errorf("balance = %d, want 300", got)
	}
}

func TestRunCommands_StopsAtFirstFailure(t *testing.T) {
	emp := uuid.New()
	p := &fakePoster{failOn: 2}

	results, err := RunCommands(context.Background(), p, []Command{
		cmd(emp, 100, EntryCredit),
		cmd(emp, 100, EntryCredit),
		cmd(emp, 100, EntryCredit),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	// First posting landed, second failed, third never ran.
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err != nil || results[0].Posted == nil {
		t.Error("first command should have succeeded")
	}
	if results[1].Err == nil {
		t.Error("second command should carry the failure")
	}
	if got := p.balances[emp]; got != 100 {
		t.Errorf("balance = %d, want 100 (only first posting applied)", got)
	}
}

func TestPostEntryInput_Validate(t *testing.T) {
	emp := uuid.New()

	tests := []struct {
		name string
		in   PostEntryInput
		want error
	}{
		{"valid credit", PostEntryInput{EmployeeID: emp, AmountCents: 1, Type: EntryCredit, SourceType: SourceDirectTip}, nil},
		{"zero amount", PostEntryInput{EmployeeID: emp, AmountCents: 0, Type: EntryCredit}, ErrNonPositiveAmount},
		{"negative amount", PostEntryInput{EmployeeID: emp, AmountCents: -5, Type: EntryDebit}, ErrNonPositiveAmount},
		{"bad type", PostEntryInput{EmployeeID: emp, AmountCents: 1, Type: "transfer"}, ErrInvalidEntryType},
		{"missing employee", PostEntryInput{AmountCents: 1, Type: EntryDebit}, ErrMissingEmployee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.in.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSourceType_IsTipDistribution(t *testing.T) {
	if !SourceGroupDistribution.IsTipDistribution() || !SourceDirectTip.IsTipDistribution() {
		t.Error("distribution types should report true")
	}
	if SourceAdjustment.IsTipDistribution() || SourceChargeback.IsTipDistribution() {
		t.Error("correction types should report false")
	}
}
