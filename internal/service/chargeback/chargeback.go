package chargeback

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	entsetting "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/locationsetting"
	entdebt "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipdebt"
	ententry "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	enttxn "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Execute reverses the tip credits of a voided/refunded payment under
	// the location's configured policy.
	Execute(ctx context.Context, paymentID, locationID uuid.UUID) (*Result, error)

	// ExecuteWithSettings is Execute with the settings already resolved;
	// the engine itself never reads ambient configuration.
	ExecuteWithSettings(ctx context.Context, paymentID, locationID uuid.UUID, s Settings) (*Result, error)

	ListOpenDebts(ctx context.Context, locationID uuid.UUID, page, perPage int) ([]*repo.TipDebt, int, error)
	ResolveDebt(ctx context.Context, debtID uuid.UUID) (*repo.TipDebt, error)
}

// Result reports one chargeback run.
type Result struct {
	PaymentID             uuid.UUID              `json:"payment_id"`
	Policy                Policy                 `json:"policy"`
	ChargedBackCents      int64                  `json:"charged_back_cents"`
	FlaggedForReviewCents int64                  `json:"flagged_for_review_cents"`
	Debts                 []Debt                 `json:"debts,omitempty"`
	Debits                []ledger.CommandResult `json:"-"`
	TransactionsVoided    int                    `json:"transactions_voided"`
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chargebackService struct {
	db     *repo.Client
	poster ledger.Poster
}

func New(db *repo.Client, poster ledger.Poster) Service {
	return &chargebackService{db: db, poster: poster}
}

func (s *chargebackService) Execute(ctx context.Context, paymentID, locationID uuid.UUID) (*Result, error) {
	return s.ExecuteWithSettings(ctx, paymentID, locationID, s.resolveLocationSettings(ctx, locationID))
}

func (s *chargebackService) ExecuteWithSettings(ctx context.Context, paymentID, locationID uuid.UUID, settings Settings) (*Result, error) {
	txns, err := s.db.TipTransaction.Query().
		Where(enttxn.PaymentID(paymentID), enttxn.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tip transactions: %w", err)
	}
	if len(txns) == 0 {
		return nil, ErrNoTipTransactions
	}

	result := &Result{PaymentID: paymentID, Policy: settings.ChargebackPolicy}

	if settings.ChargebackPolicy == PolicyBusinessAbsorbs {
		voided, err := s.voidTransactions(ctx, txns)
		if err != nil {
			return nil, err
		}
		result.TransactionsVoided = voided
		return result, nil
	}

	// EMPLOYEE_CHARGEBACK: reverse every original distribution credit.
	txnIDs := make([]uuid.UUID, 0, len(txns))
	for _, txn := range txns {
		txnIDs = append(txnIDs, txn.ID)
	}
	entries, err := s.db.TipLedgerEntry.Query().
		Where(
			ententry.EntryTypeEQ(ententry.EntryTypeCredit),
			ententry.SourceTypeIn(ententry.SourceTypeGroupDistribution, ententry.SourceTypeDirectTip),
			ententry.SourceIDIn(txnIDs...),
		).
		Order(ententry.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load original credits: %w", err)
	}

	credits := make([]OriginalCredit, 0, len(entries))
	employees := make(map[uuid.UUID]struct{})
	for _, e := range entries {
		if e.SourceID == nil {
			continue
		}
		credits = append(credits, OriginalCredit{
			EmployeeID:    e.EmployeeID,
			AmountCents:   e.AmountCents,
			TransactionID: *e.SourceID,
			OrderID:       e.OrderID,
		})
		employees[e.EmployeeID] = struct{}{}
	}

	// Debits an earlier run already posted against these transactions
	// reduce what is still owed; without this a re-run after a partial
	// posting failure would charge the same credits twice.
	posted, err := s.db.TipLedgerEntry.Query().
		Where(
			ententry.EntryTypeEQ(ententry.EntryTypeDebit),
			ententry.SourceTypeEQ(ententry.SourceTypeChargeback),
			ententry.SourceIDIn(txnIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prior chargeback debits: %w", err)
	}
	prior := make(map[CreditRef]int64, len(posted))
	for _, e := range posted {
		if e.SourceID == nil {
			continue
		}
		prior[CreditRef{EmployeeID: e.EmployeeID, TransactionID: *e.SourceID}] += e.AmountCents
	}

	balances := make(map[uuid.UUID]int64, len(employees))
	if !settings.AllowNegativeBalances {
		for id := range employees {
			balance, err := s.poster.GetBalance(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("get balance for employee %s: %w", id, err)
			}
			balances[id] = balance
		}
	}

	plan := PlanReversal(locationID, credits, balances, prior, settings)
	result.ChargedBackCents = plan.ChargedBackCents
	result.FlaggedForReviewCents = plan.FlaggedForReviewCents
	result.Debts = plan.Debts

	debits, err := ledger.RunCommands(ctx, s.poster, plan.Commands)
	result.Debits = debits
	if err != nil {
		// Posted debits stay posted; the caller re-invokes the chargeback
		// once the posting fault clears.
		return result, fmt.Errorf("chargeback for payment %s: %w", paymentID, err)
	}

	existing, err := s.db.TipDebt.Query().
		Where(entdebt.PaymentID(paymentID)).
		All(ctx)
	if err != nil {
		return result, fmt.Errorf("load recorded debts: %w", err)
	}
	recorded := make(map[uuid.UUID]struct{}, len(existing))
	for _, d := range existing {
		recorded[d.EmployeeID] = struct{}{}
	}

	for _, debt := range plan.Debts {
		if _, ok := recorded[debt.EmployeeID]; ok {
			continue
		}
		if err := s.db.TipDebt.Create().
			SetLocationID(locationID).
			SetEmployeeID(debt.EmployeeID).
			SetPaymentID(paymentID).
			SetOriginalAmountCents(debt.OriginalCents).
			SetRemainingCents(debt.RemainingCents).
			Exec(ctx); err != nil {
			return result, fmt.Errorf("create tip debt for employee %s: %w", debt.EmployeeID, err)
		}
	}

	voided, err := s.voidTransactions(ctx, txns)
	if err != nil {
		return result, err
	}
	result.TransactionsVoided = voided
	return result, nil
}

// resolveLocationSettings never fails: a missing row or broken blob means
// the documented defaults.
func (s *chargebackService) resolveLocationSettings(ctx context.Context, locationID uuid.UUID) Settings {
	row, err := s.db.LocationSetting.Query().
		Where(entsetting.LocationID(locationID)).
		Only(ctx)
	if err != nil {
		return DefaultSettings()
	}
	return ResolveSettings(row.Settings)
}

func (s *chargebackService) voidTransactions(ctx context.Context, txns []*repo.TipTransaction) (int, error) {
	ids := make([]uuid.UUID, 0, len(txns))
	for _, txn := range txns {
		ids = append(ids, txn.ID)
	}
	n, err := s.db.TipTransaction.Update().
		Where(enttxn.IDIn(ids...), enttxn.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("void tip transactions: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Debt tracking
// ---------------------------------------------------------------------------

func (s *chargebackService) ListOpenDebts(ctx context.Context, locationID uuid.UUID, page, perPage int) ([]*repo.TipDebt, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := s.db.TipDebt.Query().
		Where(entdebt.LocationID(locationID), entdebt.StatusEQ(entdebt.StatusOpen))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count open debts: %w", err)
	}

	debts, err := query.
		Order(entdebt.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list open debts: %w", err)
	}
	return debts, total, nil
}

func (s *chargebackService) ResolveDebt(ctx context.Context, debtID uuid.UUID) (*repo.TipDebt, error) {
	debt, err := s.db.TipDebt.Get(ctx, debtID)
	if repo.IsNotFound(err) {
		return nil, ErrDebtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tip debt: %w", err)
	}
	if debt.Status == entdebt.StatusResolved {
		return nil, ErrDebtAlreadyClosed
	}

	resolved, err := s.db.TipDebt.UpdateOne(debt).
		SetStatus(entdebt.StatusResolved).
		SetRemainingCents(0).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve tip debt: %w", err)
	}
	return resolved, nil
}
