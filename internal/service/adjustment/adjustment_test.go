package adjustment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/enttest"
	entadj "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

func TestManualInputValidate(t *testing.T) {
	loc := uuid.New()
	emp := uuid.New()

	cases := []struct {
		name string
		in   ManualInput
		want error
	}{
		{
			name: "valid",
			in: ManualInput{
				LocationID: loc,
				Reason:     "split corrected after shift review",
				Deltas:     []ManualDelta{{EmployeeID: emp, DeltaCents: 250}},
			},
			want: nil,
		},
		{
			name: "reason only, no deltas",
			in:   ManualInput{LocationID: loc, Reason: "noted for audit"},
			want: nil,
		},
		{
			name: "missing reason",
			in: ManualInput{
				LocationID: loc,
				Deltas:     []ManualDelta{{EmployeeID: emp, DeltaCents: 100}},
			},
			want: ErrReasonRequired,
		},
		{
			name: "missing location",
			in: ManualInput{
				Reason: "x",
				Deltas: []ManualDelta{{EmployeeID: emp, DeltaCents: 100}},
			},
			want: ErrMissingLocation,
		},
		{
			name: "delta without employee",
			in: ManualInput{
				LocationID: loc,
				Reason:     "x",
				Deltas:     []ManualDelta{{DeltaCents: 100}},
			},
			want: ErrMissingEmployee,
		},
		{
			name: "zero delta is allowed",
			in: ManualInput{
				LocationID: loc,
				Reason:     "x",
				Deltas:     []ManualDelta{{EmployeeID: emp, DeltaCents: 0}},
			},
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

// postRecorder captures postings without touching a database.
type postRecorder struct {
	entries []ledger.PostEntryInput
}

func (p *postRecorder) PostEntry(_ context.Context, in ledger.PostEntryInput) (*ledger.PostedEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p.entries = append(p.entries, in)
	return &ledger.PostedEntry{ID: uuid.New(), AmountCents: in.AmountCents}, nil
}

func (p *postRecorder) GetBalance(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

// A reason-only override with no deltas still writes exactly one audit
// record and posts nothing.
func TestApplyManual_EmptyDeltaListStillAudited(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	poster := &postRecorder{}
	svc := New(db, poster)

	result, err := svc.ApplyManual(ctx, ManualInput{
		LocationID: uuid.New(),
		Reason:     "pool closed, noted for the record",
	})
	if err != nil {
		t.Fatalf("ApplyManual: %v", err)
	}
	if result.PostedCount != 0 || len(poster.entries) != 0 {
		t.Errorf("posted %d entries, want 0", len(poster.entries))
	}

	rows, err := db.TipAdjustment.Query().All(ctx)
	if err != nil {
		t.Fatalf("load adjustments: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("adjustment rows = %d, want exactly 1", len(rows))
	}
	adj := rows[0]
	if adj.ID != result.AdjustmentID {
		t.Errorf("result adjustment %s, row %s", result.AdjustmentID, adj.ID)
	}
	if adj.AdjustmentType != entadj.AdjustmentTypeManualOverride {
		t.Errorf("adjustment type = %s, want manual_override", adj.AdjustmentType)
	}
	if adj.Reason != "pool closed, noted for the record" {
		t.Errorf("reason = %q", adj.Reason)
	}
}

// One adjustment record covers all deltas; zero deltas are skipped and
// every posted entry links back to the adjustment.
func TestApplyManual_PostsDeltasLinkedToOneAdjustment(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	poster := &postRecorder{}
	svc := New(db, poster)

	loc := uuid.New()
	up, flat, down := uuid.New(), uuid.New(), uuid.New()
	result, err := svc.ApplyManual(ctx, ManualInput{
		LocationID: loc,
		Reason:     "shift split corrected by manager",
		Deltas: []ManualDelta{
			{EmployeeID: up, DeltaCents: 300},
			{EmployeeID: flat, DeltaCents: 0},
			{EmployeeID: down, DeltaCents: -150},
		},
	})
	if err != nil {
		t.Fatalf("ApplyManual: %v", err)
	}

	if count, _ := db.TipAdjustment.Query().Count(ctx); count != 1 {
		t.Fatalf("adjustment rows = %d, want exactly 1", count)
	}
	if result.PostedCount != 2 || len(poster.entries) != 2 {
		t.Fatalf("posted %d entries, want 2 (zero delta skipped)", len(poster.entries))
	}

	credit, debit := poster.entries[0], poster.entries[1]
	if credit.EmployeeID != up || credit.Type != ledger.EntryCredit || credit.AmountCents != 300 {
		t.Errorf("first posting = %+v, want 300-cent credit for %s", credit, up)
	}
	if debit.EmployeeID != down || debit.Type != ledger.EntryDebit || debit.AmountCents != 150 {
		t.Errorf("second posting = %+v, want 150-cent debit for %s", debit, down)
	}
	for _, e := range poster.entries {
		if e.SourceType != ledger.SourceAdjustment {
			t.Errorf("posting source type = %s, want adjustment", e.SourceType)
		}
		if e.AdjustmentID == nil || *e.AdjustmentID != result.AdjustmentID {
			t.Errorf("posting not linked to adjustment %s: %+v", result.AdjustmentID, e)
		}
	}
}
