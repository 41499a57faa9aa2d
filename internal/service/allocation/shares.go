package allocation

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComputeShares splits totalCents across the members of a fractional
// split, penny-exact. Members are processed in lexicographic order of
// their ids so the result is reproducible for audit regardless of map
// iteration order. Every member except the last gets round(total *
// fraction); the last member absorbs the rounding remainder, so the
// shares always sum to exactly totalCents.
//
// Zero-fraction members still appear in the result with a share of 0:
// "should receive nothing" is distinguishable from "absent".
func ComputeShares(totalCents int64, split map[uuid.UUID]float64) (map[uuid.UUID]int64, error) {
	if totalCents < 0 {
		return nil, ErrNegativeTotal
	}
	if len(split) == 0 {
		return nil, ErrEmptySplit
	}

	members := make([]uuid.UUID, 0, len(split))
	for id, fraction := range split {
		if fraction < 0 {
			return nil, ErrNegativeFraction
		}
		members = append(members, id)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})

	shares := make(map[uuid.UUID]int64, len(members))
	if totalCents == 0 {
		for _, id := range members {
			shares[id] = 0
		}
		return shares, nil
	}

	total := decimal.NewFromInt(totalCents)
	var allocated int64
	for _, id := range members[:len(members)-1] {
		share := total.Mul(decimal.NewFromFloat(split[id])).Round(0).IntPart()
		shares[id] = share
		allocated += share
	}
	shares[members[len(members)-1]] = totalCents - allocated

	return shares, nil
}
