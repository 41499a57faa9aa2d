package chargeback

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/enttest"
	ententry "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	enttxn "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

var errPostingFault = errors.New("ledger unavailable")

// entryPoster writes ledger rows through the ent client so a later run
// can see them, and keeps a running balance per employee. When faulty is
// set, each posting persists and then reports a failure, mimicking a
// write that landed but whose acknowledgment was lost.
type entryPoster struct {
	db       *repo.Client
	balances map[uuid.UUID]int64
	faulty   bool
}

func (p *entryPoster) PostEntry(ctx context.Context, in ledger.PostEntryInput) (*ledger.PostedEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	before := p.balances[in.EmployeeID]
	after := before + in.AmountCents
	if in.Type == ledger.EntryDebit {
		after = before - in.AmountCents
	}
	row, err := p.db.TipLedgerEntry.Create().
		SetLocationID(in.LocationID).
		SetEmployeeID(in.EmployeeID).
		SetEntryType(ententry.EntryType(in.Type)).
		SetAmountCents(in.AmountCents).
		SetSourceType(ententry.SourceType(in.SourceType)).
		SetNillableSourceID(in.SourceID).
		SetNillableOrderID(in.OrderID).
		SetNillableAdjustmentID(in.AdjustmentID).
		SetMemo(in.Memo).
		SetBalanceBefore(before).
		SetBalanceAfter(after).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	p.balances[in.EmployeeID] = after
	if p.faulty {
		return nil, errPostingFault
	}
	return &ledger.PostedEntry{ID: row.ID, AmountCents: in.AmountCents, BalanceAfter: after}, nil
}

func (p *entryPoster) GetBalance(_ context.Context, employeeID uuid.UUID) (int64, error) {
	return p.balances[employeeID], nil
}

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedTipTransaction(t *testing.T, db *repo.Client, locationID, paymentID uuid.UUID, amount int64) *repo.TipTransaction {
	t.Helper()
	txn, err := db.TipTransaction.Create().
		SetLocationID(locationID).
		SetAmountCents(amount).
		SetPaymentID(paymentID).
		SetCollectedAt(time.Now()).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed tip transaction: %v", err)
	}
	return txn
}

func seedCredit(t *testing.T, db *repo.Client, locationID, employeeID, txnID uuid.UUID, amount int64) {
	t.Helper()
	if err := db.TipLedgerEntry.Create().
		SetLocationID(locationID).
		SetEmployeeID(employeeID).
		SetEntryType(ententry.EntryTypeCredit).
		SetAmountCents(amount).
		SetSourceType(ententry.SourceTypeDirectTip).
		SetSourceID(txnID).
		SetBalanceBefore(0).
		SetBalanceAfter(amount).
		Exec(context.Background()); err != nil {
		t.Fatalf("seed credit entry: %v", err)
	}
}

// Re-running the chargeback after a posting failure must not debit
// employees again for credits that were already reversed.
func TestExecute_RetryAfterPostingFaultDoesNotDoubleDebit(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	loc, emp, payment := uuid.New(), uuid.New(), uuid.New()

	txn := seedTipTransaction(t, db, loc, payment, 500)
	seedCredit(t, db, loc, emp, txn.ID, 500)

	settings := Settings{
		ChargebackPolicy:      PolicyEmployeeChargeback,
		AllowNegativeBalances: true,
	}
	balances := map[uuid.UUID]int64{emp: 500}

	// First run: the debit lands in the ledger but the posting reports
	// a fault, so the run stops before voiding the transactions.
	faulty := New(db, &entryPoster{db: db, balances: balances, faulty: true})
	if _, err := faulty.ExecuteWithSettings(ctx, payment, loc, settings); !errors.Is(err, errPostingFault) {
		t.Fatalf("first run error = %v, want %v", err, errPostingFault)
	}
	if got := balances[emp]; got != 0 {
		t.Fatalf("balance after first run = %d, want 0", got)
	}

	// Second run with the fault cleared: the already-posted debit is
	// netted out and nothing further is charged.
	healthy := New(db, &entryPoster{db: db, balances: balances})
	result, err := healthy.ExecuteWithSettings(ctx, payment, loc, settings)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if result.ChargedBackCents != 0 {
		t.Errorf("second run charged back %d cents, want 0", result.ChargedBackCents)
	}
	if len(result.Debts) != 0 {
		t.Errorf("second run recorded debts %+v, want none", result.Debts)
	}
	if result.TransactionsVoided != 1 {
		t.Errorf("transactions voided = %d, want 1", result.TransactionsVoided)
	}
	if got := balances[emp]; got != 0 {
		t.Errorf("final balance = %d, want 0", got)
	}

	debits, err := db.TipLedgerEntry.Query().
		Where(
			ententry.EntryTypeEQ(ententry.EntryTypeDebit),
			ententry.SourceTypeEQ(ententry.SourceTypeChargeback),
			ententry.SourceID(txn.ID),
		).
		All(ctx)
	if err != nil {
		t.Fatalf("load chargeback debits: %v", err)
	}
	if len(debits) != 1 || debits[0].AmountCents != 500 {
		t.Errorf("chargeback debits = %+v, want one 500-cent entry", debits)
	}
}

// A debt already recorded for the payment is not duplicated when the
// chargeback is re-invoked before the transactions were voided.
func TestExecute_RetryDoesNotDuplicateDebts(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	loc, emp, payment := uuid.New(), uuid.New(), uuid.New()

	txn := seedTipTransaction(t, db, loc, payment, 500)
	seedCredit(t, db, loc, emp, txn.ID, 500)

	// An earlier run got as far as debiting 200 cents and recording the
	// 300-cent remainder before it was interrupted.
	poster := &entryPoster{db: db, balances: map[uuid.UUID]int64{emp: 200}}
	if _, err := poster.PostEntry(ctx, ledger.PostEntryInput{
		LocationID:  loc,
		EmployeeID:  emp,
		AmountCents: 200,
		Type:        ledger.EntryDebit,
		SourceType:  ledger.SourceChargeback,
		SourceID:    &txn.ID,
	}); err != nil {
		t.Fatalf("seed prior debit: %v", err)
	}
	if err := db.TipDebt.Create().
		SetLocationID(loc).
		SetEmployeeID(emp).
		SetPaymentID(payment).
		SetOriginalAmountCents(500).
		SetRemainingCents(300).
		Exec(ctx); err != nil {
		t.Fatalf("seed debt: %v", err)
	}

	result, err := New(db, poster).ExecuteWithSettings(ctx, payment, loc, Settings{
		ChargebackPolicy:      PolicyEmployeeChargeback,
		AllowNegativeBalances: false,
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if result.ChargedBackCents != 0 {
		t.Errorf("retry charged back %d cents, want 0", result.ChargedBackCents)
	}

	count, err := db.TipDebt.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count debts: %v", err)
	}
	if count != 1 {
		t.Errorf("debt rows = %d, want the single original row", count)
	}
}

// BUSINESS_ABSORBS voids the transactions and touches nothing else: no
// debits, no debts, nothing charged back.
func TestExecute_BusinessAbsorbsLeavesLedgerUntouched(t *testing.T) {
	ctx := context.Background()
	db := openClient(t)
	loc, emp, payment := uuid.New(), uuid.New(), uuid.New()

	txn := seedTipTransaction(t, db, loc, payment, 750)
	seedCredit(t, db, loc, emp, txn.ID, 750)

	poster := &entryPoster{db: db, balances: map[uuid.UUID]int64{emp: 750}}
	result, err := New(db, poster).ExecuteWithSettings(ctx, payment, loc, Settings{
		ChargebackPolicy: PolicyBusinessAbsorbs,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if result.ChargedBackCents != 0 || result.FlaggedForReviewCents != 0 {
		t.Errorf("charged back %d / flagged %d, want 0 / 0",
			result.ChargedBackCents, result.FlaggedForReviewCents)
	}
	if len(result.Debts) != 0 {
		t.Errorf("debts = %+v, want none", result.Debts)
	}
	if result.TransactionsVoided != 1 {
		t.Errorf("transactions voided = %d, want 1", result.TransactionsVoided)
	}
	if got := poster.balances[emp]; got != 750 {
		t.Errorf("employee balance = %d, want untouched 750", got)
	}

	debits, err := db.TipLedgerEntry.Query().
		Where(ententry.EntryTypeEQ(ententry.EntryTypeDebit)).
		Count(ctx)
	if err != nil {
		t.Fatalf("count debits: %v", err)
	}
	if debits != 0 {
		t.Errorf("debit entries = %d, want 0", debits)
	}
	if debts, _ := db.TipDebt.Query().Count(ctx); debts != 0 {
		t.Errorf("debt rows = %d, want 0", debts)
	}

	voided, err := db.TipTransaction.Query().
		Where(enttxn.ID(txn.ID), enttxn.DeletedAtNotNil()).
		Count(ctx)
	if err != nil {
		t.Fatalf("count voided transactions: %v", err)
	}
	if voided != 1 {
		t.Error("transaction should be soft-deleted")
	}
}

func TestExecute_NoTransactions(t *testing.T) {
	db := openClient(t)
	svc := New(db, &entryPoster{db: db, balances: map[uuid.UUID]int64{}})
	_, err := svc.ExecuteWithSettings(context.Background(), uuid.New(), uuid.New(), DefaultSettings())
	if !errors.Is(err, ErrNoTipTransactions) {
		t.Fatalf("error = %v, want %v", err, ErrNoTipTransactions)
	}
}
