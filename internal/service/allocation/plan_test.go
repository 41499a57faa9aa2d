package allocation

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func deltasByEmployee(p *Plan) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(p.Deltas))
	for _, d := range p.Deltas {
		out[d.EmployeeID] = d.Cents
	}
	return out
}

// A group goes from three members (50/30/20) to two (60/40) after the
// original distribution was credited. The removed member is clawed back in
// full, the remaining two move to their new targets, and the posted
// deltas sum to zero.
func TestPlanGroupReconciliation_Reconfiguration(t *testing.T) {
	m := ids(3)
	segID := uuid.New()
	txns := []Transaction{{ID: uuid.New(), AmountCents: 1000, SegmentID: &segID}}

	// Current split: m2 removed, m0/m1 now 60/40.
	splits := map[uuid.UUID]map[uuid.UUID]float64{
		segID: {m[0]: 0.6, m[1]: 0.4},
	}
	// What the old 50/30/20 split already credited.
	credited := map[uuid.UUID]int64{m[0]: 500, m[1]: 300, m[2]: 200}

	plan, err := PlanGroupReconciliation(txns, splits, credited)
	if err != nil {
		t.Fatalf("PlanGroupReconciliation failed: %v", err)
	}

	deltas := deltasByEmployee(plan)
	if deltas[m[0]] != 100 {
		t.Errorf("delta for m0 = %d, want +100", deltas[m[0]])
	}
	if deltas[m[1]] != 100 {
		t.Errorf("delta for m1 = %d, want +100", deltas[m[1]])
	}
	if deltas[m[2]] != -200 {
		t.Errorf("delta for removed member = %d, want -200 (full claw-back)", deltas[m[2]])
	}

	var sum int64
	for _, d := range plan.Deltas {
		sum += d.Cents
	}
	if sum != 0 {
		t.Errorf("sum of deltas = %d, want 0 (money neither created nor destroyed)", sum)
	}
}

// Feeding a plan's expected totals back in as "credited" must produce no
// deltas: after corrections post, a second run is a no-op.
func TestPlanGroupReconciliation_Idempotent(t *testing.T) {
	m := ids(3)
	segID := uuid.New()
	txns := []Transaction{
		{ID: uuid.New(), AmountCents: 1000, SegmentID: &segID},
		{ID: uuid.New(), AmountCents: 750, SegmentID: &segID},
	}
	splits := map[uuid.UUID]map[uuid.UUID]float64{
		segID: {m[0]: 0.5, m[1]: 0.3, m[2]: 0.2},
	}

	first, err := PlanGroupReconciliation(txns, splits, map[uuid.UUID]int64{})
	if err != nil {
		t.Fatalf("first plan failed: %v", err)
	}
	if !first.HasChanges() {
		t.Fatal("first run should have corrections to post")
	}

	second, err := PlanGroupReconciliation(txns, splits, first.Expected)
	if err != nil {
		t.Fatalf("second plan failed: %v", err)
	}
	if second.HasChanges() {
		t.Errorf("second run computed deltas %v, want none", second.Deltas)
	}
}

func TestPlanGroupReconciliation_NetsAcrossTransactions(t *testing.T) {
	m := ids(2)
	segID := uuid.New()
	txns := []Transaction{
		{ID: uuid.New(), AmountCents: 400, SegmentID: &segID},
		{ID: uuid.New(), AmountCents: 600, SegmentID: &segID},
	}
	splits := map[uuid.UUID]map[uuid.UUID]float64{segID: {m[0]: 0.5, m[1]: 0.5}}
	// m0 got everything so far.
	credited := map[uuid.UUID]int64{m[0]: 1000}

	plan, err := PlanGroupReconciliation(txns, splits, credited)
	if err != nil {
		t.Fatalf("PlanGroupReconciliation failed: %v", err)
	}
	deltas := deltasByEmployee(plan)
	// One netted correction per employee, not one per transaction.
	if len(plan.Deltas) != 2 {
		t.Fatalf("expected 2 deltas, got %d", len(plan.Deltas))
	}
	if deltas[m[0]] != -500 || deltas[m[1]] != 500 {
		t.Errorf("deltas = %v, want m0 -500, m1 +500", deltas)
	}
}

func TestPlanGroupReconciliation_SkipsSegmentsWithoutSplits(t *testing.T) {
	m := ids(1)
	withSplit := uuid.New()
	withoutSplit := uuid.New()
	txns := []Transaction{
		{ID: uuid.New(), AmountCents: 500, SegmentID: &withSplit},
		{ID: uuid.New(), AmountCents: 300, SegmentID: &withoutSplit},
		{ID: uuid.New(), AmountCents: 100, SegmentID: nil},
	}
	splits := map[uuid.UUID]map[uuid.UUID]float64{withSplit: {m[0]: 1.0}}

	plan, err := PlanGroupReconciliation(txns, splits, map[uuid.UUID]int64{})
	if err != nil {
		t.Fatalf("PlanGroupReconciliation failed: %v", err)
	}
	if plan.Expected[m[0]] != 500 {
		t.Errorf("expected credit = %d, want 500 (splitless transactions skipped)", plan.Expected[m[0]])
	}
}

func TestPlanGroupReconciliation_DeterministicDeltaOrder(t *testing.T) {
	m := ids(3)
	credited := map[uuid.UUID]int64{m[2]: 10, m[0]: 20, m[1]: 30}

	plan, err := PlanGroupReconciliation(nil, nil, credited)
	if err != nil {
		t.Fatalf("PlanGroupReconciliation failed: %v", err)
	}
	// Everyone clawed back, ordered lexicographically by employee id.
	if len(plan.Deltas) != 3 {
		t.Fatalf("expected 3 deltas, got %d", len(plan.Deltas))
	}
	for i, d := range plan.Deltas {
		if d.EmployeeID != m[i] {
			t.Errorf("delta %d is for %s, want %s", i, d.EmployeeID, m[i])
		}
	}
}

func TestPlanOrderReconciliation_PercentShares(t *testing.T) {
	m := ids(2)
	txns := []Transaction{{ID: uuid.New(), AmountCents: 1000}}
	shares := map[uuid.UUID]float64{m[0]: 75, m[1]: 25}

	plan, err := PlanOrderReconciliation(txns, shares, map[uuid.UUID]int64{})
	if err != nil {
		t.Fatalf("PlanOrderReconciliation failed: %v", err)
	}
	if plan.Expected[m[0]] != 750 || plan.Expected[m[1]] != 250 {
		t.Errorf("expected = %v, want 750/250", plan.Expected)
	}
}

func TestPlanOrderReconciliation_NoOwners(t *testing.T) {
	if _, err := PlanOrderReconciliation(nil, nil, nil); !errors.Is(err, ErrNoOwners) {
		t.Errorf("got %v, want ErrNoOwners", err)
	}
}
