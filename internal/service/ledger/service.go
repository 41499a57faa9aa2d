package ledger

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	ententry "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	entwallet "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipwallet"
)

// Service is the production posting primitive plus its read side.
type Service interface {
	Poster

	ListEntries(ctx context.Context, employeeID uuid.UUID, page, perPage int) ([]*repo.TipLedgerEntry, error)
}

type ledgerService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &ledgerService{db: db}
}

// PostEntry appends one entry and moves the cached wallet balance inside a
// single database transaction. The wallet row is locked for the duration,
// which serializes concurrent postings against the same employee.
func (s *ledgerService) PostEntry(ctx context.Context, in PostEntryInput) (*PostedEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin posting tx: %w", err)
	}

	entry, err := s.postInTx(ctx, tx, in)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit posting tx: %w", err)
	}
	return entry, nil
}

func (s *ledgerService) postInTx(ctx context.Context, tx *repo.Tx, in PostEntryInput) (*PostedEntry, error) {
	w, err := tx.TipWallet.Query().
		Where(entwallet.EmployeeID(in.EmployeeID)).
		ForUpdate().
		Only(ctx)
	if repo.IsNotFound(err) {
		w, err = tx.TipWallet.Create().
			SetEmployeeID(in.EmployeeID).
			SetLocationID(in.LocationID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load tip wallet: %w", err)
	}

	before := w.BalanceCents
	after := before + in.AmountCents
	if in.Type == EntryDebit {
		after = before - in.AmountCents
	}

	c := tx.TipLedgerEntry.Create().
		SetLocationID(in.LocationID).
		SetEmployeeID(in.EmployeeID).
		SetEntryType(ententry.EntryType(in.Type)).
		SetAmountCents(in.AmountCents).
		SetSourceType(ententry.SourceType(in.SourceType)).
		SetNillableSourceID(in.SourceID).
		SetNillableOrderID(in.OrderID).
		SetNillableAdjustmentID(in.AdjustmentID).
		SetBalanceBefore(before).
		SetBalanceAfter(after)
	if in.Memo != "" {
		c = c.SetMemo(in.Memo)
	}

	entry, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append ledger entry: %w", err)
	}

	if err := tx.TipWallet.UpdateOne(w).
		SetBalanceCents(after).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update cached balance: %w", err)
	}

	return &PostedEntry{ID: entry.ID, AmountCents: entry.AmountCents, BalanceAfter: after}, nil
}

// GetBalance returns the cached balance. Employees without a wallet yet
// have a balance of zero; that is not an error.
func (s *ledgerService) GetBalance(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	w, err := s.db.TipWallet.Query().
		Where(entwallet.EmployeeID(employeeID)).
		Only(ctx)
	if repo.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get tip wallet: %w", err)
	}
	return w.BalanceCents, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, employeeID uuid.UUID, page, perPage int) ([]*repo.TipLedgerEntry, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	entries, err := s.db.TipLedgerEntry.Query().
		Where(ententry.EmployeeID(employeeID)).
		Order(ententry.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}
