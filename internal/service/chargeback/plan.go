package chargeback

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

// OriginalCredit is one tip-distribution CREDIT that was posted for an
// affected transaction. Each one is reversed individually.
type OriginalCredit struct {
	EmployeeID    uuid.UUID
	AmountCents   int64
	TransactionID uuid.UUID
	OrderID       *uuid.UUID
}

// CreditRef names one original credit by the employee it paid and the
// tip transaction it came from. Debits already posted against a credit
// are keyed by it.
type CreditRef struct {
	EmployeeID    uuid.UUID
	TransactionID uuid.UUID
}

// Debt is the uncollectible remainder owed by one employee.
type Debt struct {
	EmployeeID     uuid.UUID
	OriginalCents  int64
	RemainingCents int64
}

// Plan is the precomputed reversal: one debit command per recoverable
// original credit, plus one debt per employee whose credit could not be
// fully recovered. Conservation holds per employee:
// debited + remaining == original credited total.
type Plan struct {
	Commands              []ledger.Command
	Debts                 []Debt
	ChargedBackCents      int64
	FlaggedForReviewCents int64
}

// PlanReversal walks the original credits in order and decides each
// debit. Amounts in prior, debits already posted for the same credit by
// an earlier run that failed partway, are netted out first so a re-run
// never charges the same credit twice. When negative balances are
// disallowed, debits are capped at the employee's remaining balance,
// tracked across the employee's credits so several reversals against
// one balance cannot overdraw it. A credit whose capped debit is zero
// posts nothing but still counts fully toward the employee's
// uncollectible remainder.
func PlanReversal(locationID uuid.UUID, credits []OriginalCredit, balances map[uuid.UUID]int64, prior map[CreditRef]int64, s Settings) *Plan {
	plan := &Plan{}

	remaining := make(map[uuid.UUID]int64, len(balances))
	for id, b := range balances {
		if b < 0 {
			b = 0
		}
		remaining[id] = b
	}

	original := make(map[uuid.UUID]int64)
	debited := make(map[uuid.UUID]int64)

	for _, credit := range credits {
		original[credit.EmployeeID] += credit.AmountCents

		already := prior[CreditRef{EmployeeID: credit.EmployeeID, TransactionID: credit.TransactionID}]
		if already > credit.AmountCents {
			already = credit.AmountCents
		}
		debited[credit.EmployeeID] += already

		target := credit.AmountCents - already
		capped := false
		if !s.AllowNegativeBalances {
			if avail := remaining[credit.EmployeeID]; target > avail {
				target = avail
				capped = true
			}
			remaining[credit.EmployeeID] -= target
		}
		if target == 0 {
			continue
		}
		debited[credit.EmployeeID] += target
		plan.ChargedBackCents += target

		txnID := credit.TransactionID
		plan.Commands = append(plan.Commands, ledger.Command{
			Capped: capped,
			Entry: ledger.PostEntryInput{
				LocationID:  locationID,
				EmployeeID:  credit.EmployeeID,
				AmountCents: target,
				Type:        ledger.EntryDebit,
				SourceType:  ledger.SourceChargeback,
				SourceID:    &txnID,
				OrderID:     credit.OrderID,
				Memo:        fmt.Sprintf("chargeback of tip transaction %s", txnID),
			},
		})
	}

	employees := make([]uuid.UUID, 0, len(original))
	for id := range original {
		employees = append(employees, id)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].String() < employees[j].String()
	})
	for _, id := range employees {
		if short := original[id] - debited[id]; short > 0 {
			plan.Debts = append(plan.Debts, Debt{
				EmployeeID:     id,
				OriginalCents:  original[id],
				RemainingCents: short,
			})
			plan.FlaggedForReviewCents += short
		}
	}

	return plan
}
