package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	entadj "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	entgroup "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroup"
	entsegment "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroupsegment"
	ententry "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	enttxn "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	entowner "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	entown "github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ReconcileGroup recomputes a tip group's member allocations against
	// its segment split history and posts netted corrections.
	ReconcileGroup(ctx context.Context, groupID uuid.UUID, opts Options) (*Result, error)

	// ReconcileOrder does the same for a single order's active ownership
	// shares.
	ReconcileOrder(ctx context.Context, orderID uuid.UUID, opts Options) (*Result, error)
}

// Options carry audit context for a reconciliation run.
type Options struct {
	// SegmentID scopes a group reconciliation to one segment. Ignored for
	// order reconciliation.
	SegmentID *uuid.UUID

	Reason        string
	AutoTriggered bool
	RequestedBy   *uuid.UUID
}

// Result reports what one reconciliation run did. AdjustmentID is nil
// when every delta was zero and nothing was written.
type Result struct {
	AdjustmentID *uuid.UUID             `json:"adjustment_id,omitempty"`
	Deltas       []Delta                `json:"deltas"`
	Posted       []ledger.CommandResult `json:"-"`
	PostedCount  int                    `json:"posted_count"`
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type allocationService struct {
	db     *repo.Client
	poster ledger.Poster
}

func New(db *repo.Client, poster ledger.Poster) Service {
	return &allocationService{db: db, poster: poster}
}

func (s *allocationService) ReconcileGroup(ctx context.Context, groupID uuid.UUID, opts Options) (*Result, error) {
	group, err := s.db.TipGroup.Query().
		Where(entgroup.ID(groupID), entgroup.DeletedAtIsNil()).
		Only(ctx)
	if repo.IsNotFound(err) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tip group: %w", err)
	}

	segQuery := s.db.TipGroupSegment.Query().Where(entsegment.GroupID(groupID))
	if opts.SegmentID != nil {
		segQuery = segQuery.Where(entsegment.ID(*opts.SegmentID))
	}
	segments, err := segQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load segments: %w", err)
	}
	if opts.SegmentID != nil && len(segments) == 0 {
		return nil, ErrSegmentNotFound
	}

	splits := make(map[uuid.UUID]map[uuid.UUID]float64, len(segments))
	for _, seg := range segments {
		split, err := parseSplit(seg.Split)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", seg.ID, err)
		}
		splits[seg.ID] = split
	}

	txnQuery := s.db.TipTransaction.Query().
		Where(enttxn.GroupID(groupID), enttxn.DeletedAtIsNil())
	if opts.SegmentID != nil {
		txnQuery = txnQuery.Where(enttxn.SegmentID(*opts.SegmentID))
	}
	rows, err := txnQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tip transactions: %w", err)
	}
	txns := make([]Transaction, 0, len(rows))
	txnIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, Transaction{ID: row.ID, AmountCents: row.AmountCents, SegmentID: row.SegmentID})
		txnIDs = append(txnIDs, row.ID)
	}

	credited, err := s.creditedTotals(ctx, txnIDs, groupScope{groupID: &groupID})
	if err != nil {
		return nil, err
	}

	plan, err := PlanGroupReconciliation(txns, splits, credited)
	if err != nil {
		return nil, err
	}

	reason := opts.Reason
	if reason == "" {
		reason = "group membership reconciliation"
	}

	return s.apply(ctx, plan, applyInput{
		locationID:     group.LocationID,
		adjustmentType: entadj.AdjustmentTypeGroupMembership,
		reason:         reason,
		groupID:        &groupID,
		memo:           fmt.Sprintf("reallocation for tip group %q", group.Name),
		opts:           opts,
	})
}

func (s *allocationService) ReconcileOrder(ctx context.Context, orderID uuid.UUID, opts Options) (*Result, error) {
	ownership, err := s.db.OrderOwnership.Query().
		Where(entown.OrderID(orderID), entown.IsActive(true)).
		Only(ctx)
	if repo.IsNotFound(err) {
		return nil, ErrNoActiveOwnership
	}
	if err != nil {
		return nil, fmt.Errorf("get order ownership: %w", err)
	}

	owners, err := s.db.OrderOwner.Query().
		Where(entowner.OwnershipID(ownership.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order owners: %w", err)
	}
	if len(owners) == 0 {
		return nil, ErrNoOwners
	}
	sharePercents := make(map[uuid.UUID]float64, len(owners))
	for _, o := range owners {
		sharePercents[o.EmployeeID] = o.SharePercent
	}

	rows, err := s.db.TipTransaction.Query().
		Where(enttxn.OrderID(orderID), enttxn.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tip transactions: %w", err)
	}
	txns := make([]Transaction, 0, len(rows))
	txnIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, Transaction{ID: row.ID, AmountCents: row.AmountCents})
		txnIDs = append(txnIDs, row.ID)
	}

	credited, err := s.creditedTotals(ctx, txnIDs, groupScope{orderID: &orderID})
	if err != nil {
		return nil, err
	}

	plan, err := PlanOrderReconciliation(txns, sharePercents, credited)
	if err != nil {
		return nil, err
	}

	reason := opts.Reason
	if reason == "" {
		reason = "order ownership reconciliation"
	}

	return s.apply(ctx, plan, applyInput{
		locationID:     ownership.LocationID,
		adjustmentType: entadj.AdjustmentTypeOwnershipSplit,
		reason:         reason,
		orderID:        &orderID,
		memo:           fmt.Sprintf("reallocation for order %s", orderID),
		opts:           opts,
	})
}

// ---------------------------------------------------------------------------
// Shared mechanics
// ---------------------------------------------------------------------------

type groupScope struct {
	groupID *uuid.UUID
	orderID *uuid.UUID
}

// creditedTotals sums what each employee actually holds for the target:
// the original tip-distribution credits against its transactions plus the
// signed corrections from earlier adjustments on the same target. Folding
// prior corrections in is what makes reconciliation idempotent: a second
// run sees the just-posted deltas as part of "actual" and computes zero.
func (s *allocationService) creditedTotals(ctx context.Context, txnIDs []uuid.UUID, scope groupScope) (map[uuid.UUID]int64, error) {
	credited := make(map[uuid.UUID]int64)

	if len(txnIDs) > 0 {
		distributionType := ententry.SourceTypeGroupDistribution
		if scope.orderID != nil {
			distributionType = ententry.SourceTypeDirectTip
		}
		entries, err := s.db.TipLedgerEntry.Query().
			Where(
				ententry.EntryTypeEQ(ententry.EntryTypeCredit),
				ententry.SourceTypeEQ(distributionType),
				ententry.SourceIDIn(txnIDs...),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load distribution credits: %w", err)
		}
		for _, e := range entries {
			credited[e.EmployeeID] += e.AmountCents
		}
	}

	adjQuery := s.db.TipAdjustment.Query()
	switch {
	case scope.groupID != nil:
		adjQuery = adjQuery.Where(entadj.GroupID(*scope.groupID))
	case scope.orderID != nil:
		adjQuery = adjQuery.Where(entadj.OrderID(*scope.orderID))
	}
	adjIDs, err := adjQuery.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prior adjustments: %w", err)
	}
	if len(adjIDs) == 0 {
		return credited, nil
	}

	corrections, err := s.db.TipLedgerEntry.Query().
		Where(ententry.AdjustmentIDIn(adjIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prior corrections: %w", err)
	}
	for _, e := range corrections {
		if e.EntryType == ententry.EntryTypeCredit {
			credited[e.EmployeeID] += e.AmountCents
		} else {
			credited[e.EmployeeID] -= e.AmountCents
		}
	}

	return credited, nil
}

type applyInput struct {
	locationID     uuid.UUID
	adjustmentType entadj.AdjustmentType
	reason         string
	groupID        *uuid.UUID
	orderID        *uuid.UUID
	memo           string
	opts           Options
}

// apply writes the audit adjustment and posts the plan's deltas in order.
// A zero-delta plan writes nothing at all; re-running a reconciler that
// has nothing left to fix is a quiet no-op.
func (s *allocationService) apply(ctx context.Context, plan *Plan, in applyInput) (*Result, error) {
	result := &Result{Deltas: plan.Deltas}
	if !plan.HasChanges() {
		return result, nil
	}

	adj, err := s.db.TipAdjustment.Create().
		SetLocationID(in.locationID).
		SetAdjustmentType(in.adjustmentType).
		SetReason(in.reason).
		SetBefore(centsByEmployee(plan.Actual)).
		SetAfter(centsByEmployee(plan.Expected)).
		SetAutoTriggered(in.opts.AutoTriggered).
		SetNillableGroupID(in.groupID).
		SetNillableOrderID(in.orderID).
		SetNillableRequestedBy(in.opts.RequestedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create adjustment: %w", err)
	}
	adjID := adj.ID
	result.AdjustmentID = &adjID

	cmds := make([]ledger.Command, 0, len(plan.Deltas))
	for _, d := range plan.Deltas {
		entryType := ledger.EntryCredit
		amount := d.Cents
		if amount < 0 {
			entryType = ledger.EntryDebit
			amount = -amount
		}
		cmds = append(cmds, ledger.Command{Entry: ledger.PostEntryInput{
			LocationID:   in.locationID,
			EmployeeID:   d.EmployeeID,
			AmountCents:  amount,
			Type:         entryType,
			SourceType:   ledger.SourceAdjustment,
			SourceID:     &adjID,
			OrderID:      in.orderID,
			AdjustmentID: &adjID,
			Memo:         in.memo,
		}})
	}

	posted, err := ledger.RunCommands(ctx, s.poster, cmds)
	result.Posted = posted
	for _, r := range posted {
		if r.Err == nil {
			result.PostedCount++
		}
	}
	if err != nil {
		// Some corrections may already be applied. Re-running the same
		// reconciler recomputes from current ledger state and posts only
		// what is still missing.
		return result, fmt.Errorf("partial correction for adjustment %s: %w", adjID, err)
	}
	return result, nil
}

func centsByEmployee(m map[uuid.UUID]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for id, cents := range m {
		out[id.String()] = cents
	}
	return out
}

// parseSplit validates a segment's stored split at the boundary: it must
// be a map of employee ids to non-negative fractions.
func parseSplit(raw map[string]float64) (map[uuid.UUID]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	split := make(map[uuid.UUID]float64, len(raw))
	for key, fraction := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("split key %q is not an employee id: %w", key, err)
		}
		if fraction < 0 {
			return nil, ErrNegativeFraction
		}
		split[id] = fraction
	}
	return split, nil
}
