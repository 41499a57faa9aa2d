package chargeback

import (
	"testing"

	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

func TestPlanReversal_CapsDebitAtBalance(t *testing.T) {
	loc := uuid.New()
	emp := uuid.New()
	credits := []OriginalCredit{
		{EmployeeID: emp, AmountCents: 500, TransactionID: uuid.New()},
	}
	balances := map[uuid.UUID]int64{emp: 200}

	plan := PlanReversal(loc, credits, balances, nil, Settings{
		ChargebackPolicy:      PolicyEmployeeChargeback,
		AllowNegativeBalances: false,
	})

	if len(plan.Commands) != 1 {
		t.Fatalf("expected 1 debit command, got %d", len(plan.Commands))
	}
	debit := plan.Commands[0]
	if debit.Entry.AmountCents != 200 {
		t.Errorf("debit = %d, want 200 (capped at balance)", debit.Entry.AmountCents)
	}
	if !debit.Capped {
		t.Error("debit should be marked capped")
	}
	if debit.Entry.Type != ledger.EntryDebit || debit.Entry.SourceType != ledger.SourceChargeback {
		t.Errorf("debit tagged %s/%s, want debit/chargeback", debit.Entry.Type, debit.Entry.SourceType)
	}

	if len(plan.Debts) != 1 {
		t.Fatalf("expected 1 debt, got %d", len(plan.Debts))
	}
	if plan.Debts[0].RemainingCents != 300 || plan.Debts[0].OriginalCents != 500 {
		t.Errorf("debt = %+v, want remaining 300 of original 500", plan.Debts[0])
	}
	if plan.ChargedBackCents != 200 || plan.FlaggedForReviewCents != 300 {
		t.Errorf("charged back %d / flagged %d, want 200 / 300",
			plan.ChargedBackCents, plan.FlaggedForReviewCents)
	}
}

func TestPlanReversal_BalanceDeclinesAcrossCredits(t *testing.T) {
	loc := uuid.New()
	emp := uuid.New()
	credits := []OriginalCredit{
		{EmployeeID: emp, AmountCents: 300, TransactionID: uuid.New()},
		{EmployeeID: emp, AmountCents: 200, TransactionID: uuid.New()},
	}
	balances := map[uuid.UUID]int64{emp: 400}

	plan := PlanReversal(loc, credits, balances, nil, Settings{AllowNegativeBalances: false})

	if len(plan.Commands) != 2 {
		t.Fatalf("expected 2 debits, got %d", len(plan.Commands))
	}
	// First credit fully recoverable, second capped at what's left.
	if plan.Commands[0].Entry.AmountCents != 300 {
		t.Errorf("first debit = %d, want 300", plan.Commands[0].Entry.AmountCents)
	}
	if plan.Commands[1].Entry.AmountCents != 100 || !plan.Commands[1].Capped {
		t.Errorf("second debit = %d (capped=%v), want 100 capped",
			plan.Commands[1].Entry.AmountCents, plan.Commands[1].Capped)
	}
	if plan.ChargedBackCents != 400 || plan.FlaggedForReviewCents != 100 {
		t.Errorf("charged back %d / flagged %d, want 400 / 100",
			plan.ChargedBackCents, plan.FlaggedForReviewCents)
	}
}

func TestPlanReversal_ZeroBalanceSkipsPostingButKeepsDebt(t *testing.T) {
	loc := uuid.New()
	emp := uuid.New()
	credits := []OriginalCredit{
		{EmployeeID: emp, AmountCents: 500, TransactionID: uuid.New()},
	}
	// Balance already below zero: nothing recoverable.
	balances := map[uuid.UUID]int64{emp: -50}

	plan := PlanReversal(loc, credits, balances, nil, Settings{AllowNegativeBalances: false})

	if len(plan.Commands) != 0 {
		t.Fatalf("expected no debit commands, got %d", len(plan.Commands))
	}
	if len(plan.Debts) != 1 || plan.Debts[0].RemainingCents != 500 {
		t.Fatalf("expected full 500-cent debt, got %+v", plan.Debts)
	}
	if plan.ChargedBackCents != 0 || plan.FlaggedForReviewCents != 500 {
		t.Errorf("charged back %d / flagged %d, want 0 / 500",
			plan.ChargedBackCents, plan.FlaggedForReviewCents)
	}
}

func TestPlanReversal_NegativeBalancesAllowed(t *testing.T) {
	loc := uuid.New()
	emp := uuid.New()
	credits := []OriginalCredit{
		{EmployeeID: emp, AmountCents: 500, TransactionID: uuid.New()},
	}

	plan := PlanReversal(loc, credits, map[uuid.UUID]int64{emp: 200}, nil, Settings{AllowNegativeBalances: true})

	if len(plan.Commands) != 1 || plan.Commands[0].Entry.AmountCents != 500 {
		t.Fatalf("expected one uncapped 500-cent debit, got %+v", plan.Commands)
	}
	if plan.Commands[0].Capped {
		t.Error("debit should not be capped")
	}
	if len(plan.Debts) != 0 {
		t.Errorf("expected no debts, got %+v", plan.Debts)
	}
}

// Conservation: for every employee, debited + remaining == original
// credited total, across several employees and multiple credit entries.
func TestPlanReversal_Conservation(t *testing.T) {
	loc := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	credits := []OriginalCredit{
		{EmployeeID: a, AmountCents: 300, TransactionID: uuid.New()},
		{EmployeeID: b, AmountCents: 450, TransactionID: uuid.New()},
		{EmployeeID: a, AmountCents: 250, TransactionID: uuid.New()},
		{EmployeeID: c, AmountCents: 120, TransactionID: uuid.New()},
	}
	balances := map[uuid.UUID]int64{a: 400, b: 0, c: 1000}

	plan := PlanReversal(loc, credits, balances, nil, Settings{AllowNegativeBalances: false})

	original := map[uuid.UUID]int64{a: 550, b: 450, c: 120}
	debited := make(map[uuid.UUID]int64)
	for _, cmd := range plan.Commands {
		debited[cmd.Entry.EmployeeID] += cmd.Entry.AmountCents
	}
	remaining := make(map[uuid.UUID]int64)
	for _, debt := range plan.Debts {
		remaining[debt.EmployeeID] = debt.RemainingCents
	}

	for emp, want := range original {
		if got := debited[emp] + remaining[emp]; got != want {
			t.Errorf("employee %s: debited(%d) + remaining(%d) = %d, want %d",
				emp, debited[emp], remaining[emp], got, want)
		}
	}
	if debited[a] != 400 || remaining[a] != 150 {
		t.Errorf("employee a: debited %d / remaining %d, want 400 / 150", debited[a], remaining[a])
	}
	if debited[b] != 0 || remaining[b] != 450 {
		t.Errorf("employee b: debited %d / remaining %d, want 0 / 450", debited[b], remaining[b])
	}
	if debited[c] != 120 || remaining[c] != 0 {
		t.Errorf("employee c: debited %d / remaining %d, want 120 / 0", debited[c], remaining[c])
	}
}

// A debit posted by an earlier run is netted out, so replanning the same
// credits charges only what is still outstanding.
func TestPlanReversal_NetsOutPriorDebits(t *testing.T) {
	loc := uuid.New()
	emp := uuid.New()
	txn := uuid.New()
	credits := []OriginalCredit{
		{EmployeeID: emp, AmountCents: 500, TransactionID: txn},
	}

	fullyReversed := PlanReversal(loc, credits, nil,
		map[CreditRef]int64{{EmployeeID: emp, TransactionID: txn}: 500},
		Settings{AllowNegativeBalances: true})
	if len(fullyReversed.Commands) != 0 {
		t.Fatalf("fully reversed credit should plan no debits, got %+v", fullyReversed.Commands)
	}
	if fullyReversed.ChargedBackCents != 0 || len(fullyReversed.Debts) != 0 {
		t.Errorf("charged back %d / debts %+v, want 0 / none",
			fullyReversed.ChargedBackCents, fullyReversed.Debts)
	}

	partial := PlanReversal(loc, credits, map[uuid.UUID]int64{emp: 100},
		map[CreditRef]int64{{EmployeeID: emp, TransactionID: txn}: 200},
		Settings{AllowNegativeBalances: false})
	if len(partial.Commands) != 1 || partial.Commands[0].Entry.AmountCents != 100 {
		t.Fatalf("expected one 100-cent debit for the outstanding portion, got %+v", partial.Commands)
	}
	// Conservation still holds counting the earlier 200-cent debit.
	if len(partial.Debts) != 1 || partial.Debts[0].RemainingCents != 200 {
		t.Errorf("debts = %+v, want a single 200-cent remainder", partial.Debts)
	}
}

func TestPlanReversal_NoCredits(t *testing.T) {
	plan := PlanReversal(uuid.New(), nil, nil, nil, DefaultSettings())
	if len(plan.Commands) != 0 || len(plan.Debts) != 0 || plan.ChargedBackCents != 0 {
		t.Errorf("empty input should produce an empty plan, got %+v", plan)
	}
}
