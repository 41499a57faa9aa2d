package allocation

import (
	"sort"

	"github.com/google/uuid"
)

// Transaction is the slice of a TipTransaction the planner needs.
type Transaction struct {
	ID          uuid.UUID
	AmountCents int64
	SegmentID   *uuid.UUID
}

// Delta is one employee's pending correction: positive means the employee
// is owed more credit, negative means credit is clawed back.
type Delta struct {
	EmployeeID uuid.UUID
	Cents      int64
}

// Plan is the netted outcome of comparing what should have been credited
// against what actually was. Before/After are the per-employee totals
// recorded on the audit adjustment; Deltas lists only nonzero corrections
// in deterministic (lexicographic) employee order.
type Plan struct {
	Expected map[uuid.UUID]int64
	Actual   map[uuid.UUID]int64
	Deltas   []Delta
}

// HasChanges reports whether the plan would post anything.
func (p *Plan) HasChanges() bool {
	return len(p.Deltas) > 0
}

// PlanGroupReconciliation computes expected shares for every transaction
// using its segment's current split, nets them against the amounts
// already credited, and returns one correction per employee. Employees
// holding credit but absent from every current split get a full
// claw-back. Transactions whose segment has no usable split are skipped
// rather than failing the whole run.
func PlanGroupReconciliation(txns []Transaction, splits map[uuid.UUID]map[uuid.UUID]float64, credited map[uuid.UUID]int64) (*Plan, error) {
	expected := make(map[uuid.UUID]int64)
	for _, txn := range txns {
		if txn.SegmentID == nil {
			continue
		}
		split, ok := splits[*txn.SegmentID]
		if !ok || len(split) == 0 {
			continue
		}
		shares, err := ComputeShares(txn.AmountCents, split)
		if err != nil {
			return nil, err
		}
		for id, cents := range shares {
			expected[id] += cents
		}
	}
	return buildPlan(expected, credited), nil
}

// PlanOrderReconciliation is the same netting keyed on the order's active
// ownership shares (percent of 100) instead of segment splits.
func PlanOrderReconciliation(txns []Transaction, sharePercents map[uuid.UUID]float64, credited map[uuid.UUID]int64) (*Plan, error) {
	if len(sharePercents) == 0 {
		return nil, ErrNoOwners
	}

	fractions := make(map[uuid.UUID]float64, len(sharePercents))
	for id, pct := range sharePercents {
		fractions[id] = pct / 100
	}

	expected := make(map[uuid.UUID]int64)
	for _, txn := range txns {
		shares, err := ComputeShares(txn.AmountCents, fractions)
		if err != nil {
			return nil, err
		}
		for id, cents := range shares {
			expected[id] += cents
		}
	}
	return buildPlan(expected, credited), nil
}

func buildPlan(expected, credited map[uuid.UUID]int64) *Plan {
	actual := make(map[uuid.UUID]int64, len(credited))
	for id, cents := range credited {
		actual[id] = cents
		if _, ok := expected[id]; !ok {
			// Removed member: target is zero, the delta claws back
			// everything they currently hold.
			expected[id] = 0
		}
	}
	for id := range expected {
		if _, ok := actual[id]; !ok {
			actual[id] = 0
		}
	}

	employees := make([]uuid.UUID, 0, len(expected))
	for id := range expected {
		employees = append(employees, id)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].String() < employees[j].String()
	})

	var deltas []Delta
	for _, id := range employees {
		if d := expected[id] - actual[id]; d != 0 {
			deltas = append(deltas, Delta{EmployeeID: id, Cents: d})
		}
	}

	return &Plan{Expected: expected, Actual: actual, Deltas: deltas}
}
