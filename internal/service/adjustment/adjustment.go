package adjustment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	entadj "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ApplyManual posts manager-specified deltas directly, with an audit
	// record. No recomputation happens: this is the override path, not a
	// reconciler.
	ApplyManual(ctx context.Context, in ManualInput) (*ManualResult, error)

	// ListAdjustments pages through the audit log, newest first.
	ListAdjustments(ctx context.Context, filter Filter, page, perPage int) ([]*repo.TipAdjustment, int, error)
}

// ManualDelta is one employee's explicit correction in cents; positive
// credits, negative debits.
type ManualDelta struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	DeltaCents int64     `json:"delta_cents"`
}

// ManualInput describes one manual override. Before/After are free-form
// audit context supplied by the caller; the engine stores them verbatim
// and never interprets them.
type ManualInput struct {
	LocationID  uuid.UUID
	Reason      string
	Deltas      []ManualDelta
	Before      map[string]int64
	After       map[string]int64
	RequestedBy *uuid.UUID
}

// Validate checks the override before anything is written.
func (in ManualInput) Validate() error {
	if in.Reason == "" {
		return ErrReasonRequired
	}
	if in.LocationID == (uuid.UUID{}) {
		return ErrMissingLocation
	}
	for _, d := range in.Deltas {
		if d.EmployeeID == (uuid.UUID{}) {
			return ErrMissingEmployee
		}
	}
	return nil
}

// ManualResult reports what one manual adjustment did.
type ManualResult struct {
	AdjustmentID uuid.UUID              `json:"adjustment_id"`
	PostedCount  int                    `json:"posted_count"`
	Posted       []ledger.CommandResult `json:"-"`
}

// Filter narrows the audit-log listing.
type Filter struct {
	LocationID     *uuid.UUID
	AdjustmentType *string
	From           *time.Time
	To             *time.Time
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type adjustmentService struct {
	db     *repo.Client
	poster ledger.Poster
}

func New(db *repo.Client, poster ledger.Poster) Service {
	return &adjustmentService{db: db, poster: poster}
}

func (s *adjustmentService) ApplyManual(ctx context.Context, in ManualInput) (*ManualResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// The audit record always exists, even for an empty delta list: a
	// reason-only adjustment is a legitimate paper trail.
	create := s.db.TipAdjustment.Create().
		SetLocationID(in.LocationID).
		SetAdjustmentType(entadj.AdjustmentTypeManualOverride).
		SetReason(in.Reason).
		SetNillableRequestedBy(in.RequestedBy)
	if in.Before != nil {
		create = create.SetBefore(in.Before)
	}
	if in.After != nil {
		create = create.SetAfter(in.After)
	}
	adj, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create manual adjustment: %w", err)
	}
	adjID := adj.ID

	cmds := make([]ledger.Command, 0, len(in.Deltas))
	for _, d := range in.Deltas {
		if d.DeltaCents == 0 {
			continue
		}
		entryType := ledger.EntryCredit
		amount := d.DeltaCents
		if amount < 0 {
			entryType = ledger.EntryDebit
			amount = -amount
		}
		cmds = append(cmds, ledger.Command{Entry: ledger.PostEntryInput{
			LocationID:   in.LocationID,
			EmployeeID:   d.EmployeeID,
			AmountCents:  amount,
			Type:         entryType,
			SourceType:   ledger.SourceAdjustment,
			SourceID:     &adjID,
			AdjustmentID: &adjID,
			Memo:         in.Reason,
		}})
	}

	result := &ManualResult{AdjustmentID: adjID}
	posted, err := ledger.RunCommands(ctx, s.poster, cmds)
	result.Posted = posted
	for _, r := range posted {
		if r.Err == nil {
			result.PostedCount++
		}
	}
	if err != nil {
		return result, fmt.Errorf("manual adjustment %s: %w", adjID, err)
	}
	return result, nil
}

func (s *adjustmentService) ListAdjustments(ctx context.Context, filter Filter, page, perPage int) ([]*repo.TipAdjustment, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := s.db.TipAdjustment.Query()
	if filter.LocationID != nil {
		query = query.Where(entadj.LocationID(*filter.LocationID))
	}
	if filter.AdjustmentType != nil {
		query = query.Where(entadj.AdjustmentTypeEQ(entadj.AdjustmentType(*filter.AdjustmentType)))
	}
	if filter.From != nil {
		query = query.Where(entadj.CreatedAtGTE(*filter.From))
	}
	if filter.To != nil {
		query = query.Where(entadj.CreatedAtLT(*filter.To))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count adjustments: %w", err)
	}

	adjustments, err := query.
		Order(entadj.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list adjustments: %w", err)
	}
	return adjustments, total, nil
}
