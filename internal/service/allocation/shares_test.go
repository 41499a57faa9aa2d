package allocation

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// ids returns n distinct ids in lexicographic order so tests can reason
// about which member is "last".
func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if out[j].String() < out[i].String() {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func TestComputeShares_ThreeWaySplit(t *testing.T) {
	m := ids(3)
	split := map[uuid.UUID]float64{m[0]: 0.5, m[1]: 0.3, m[2]: 0.2}

	shares, err := ComputeShares(1000, split)
	if err != nil {
		t.Fatalf("ComputeShares failed: %v", err)
	}
	if shares[m[0]] != 500 || shares[m[1]] != 300 || shares[m[2]] != 200 {
		t.Errorf("shares = [%d %d %d], want [500 300 200]", shares[m[0]], shares[m[1]], shares[m[2]])
	}
}

func TestComputeShares_Conservation(t *testing.T) {
	m := ids(4)
	splits := []map[uuid.UUID]float64{
		{m[0]: 0.5, m[1]: 0.3, m[2]: 0.2},
		{m[0]: 1.0 / 3, m[1]: 1.0 / 3, m[2]: 1.0 / 3},
		{m[0]: 0.17, m[1]: 0.29, m[2]: 0.54},
		{m[0]: 0.25, m[1]: 0.25, m[2]: 0.25, m[3]: 0.25},
		{m[0]: 1.0},
	}
	totals := []int64{0, 1, 7, 99, 100, 101, 1000, 12345, 999999}

	for _, split := range splits {
		for _, total := range totals {
			shares, err := ComputeShares(total, split)
			if err != nil {
				t.Fatalf("ComputeShares(%d) failed: %v", total, err)
			}
			if len(shares) != len(split) {
				t.Fatalf("expected %d shares, got %d", len(split), len(shares))
			}
			var sum int64
			for _, s := range shares {
				sum += s
			}
			if sum != total {
				t.Errorf("sum(shares) = %d, want %d (split %v)", sum, total, split)
			}
		}
	}
}

func TestComputeShares_RemainderGoesToLastMember(t *testing.T) {
	m := ids(3)
	// 1/3 of 100 rounds to 33 for the first two; the last absorbs 34.
	split := map[uuid.UUID]float64{m[0]: 1.0 / 3, m[1]: 1.0 / 3, m[2]: 1.0 / 3}

	shares, err := ComputeShares(100, split)
	if err != nil {
		t.Fatalf("ComputeShares failed: %v", err)
	}
	if shares[m[0]] != 33 || shares[m[1]] != 33 || shares[m[2]] != 34 {
		t.Errorf("shares = [%d %d %d], want [33 33 34]", shares[m[0]], shares[m[1]], shares[m[2]])
	}
}

func TestComputeShares_ZeroFractionMemberStillListed(t *testing.T) {
	m := ids(3)
	split := map[uuid.UUID]float64{m[0]: 0.6, m[1]: 0.4, m[2]: 0}

	shares, err := ComputeShares(1000, split)
	if err != nil {
		t.Fatalf("ComputeShares failed: %v", err)
	}
	got, ok := shares[m[2]]
	if !ok {
		t.Fatal("zero-fraction member missing from output")
	}
	if got != 0 {
		t.Errorf("zero-fraction share = %d, want 0", got)
	}
}

func TestComputeShares_ZeroTotal(t *testing.T) {
	m := ids(2)
	shares, err := ComputeShares(0, map[uuid.UUID]float64{m[0]: 0.7, m[1]: 0.3})
	if err != nil {
		t.Fatalf("ComputeShares failed: %v", err)
	}
	for id, s := range shares {
		if s != 0 {
			t.Errorf("share for %s = %d, want 0", id, s)
		}
	}
}

func TestComputeShares_Rejections(t *testing.T) {
	m := ids(2)

	if _, err := ComputeShares(-1, map[uuid.UUID]float64{m[0]: 1}); !errors.Is(err, ErrNegativeTotal) {
		t.Errorf("negative total: got %v, want ErrNegativeTotal", err)
	}
	if _, err := ComputeShares(100, nil); !errors.Is(err, ErrEmptySplit) {
		t.Errorf("empty split: got %v, want ErrEmptySplit", err)
	}
	if _, err := ComputeShares(100, map[uuid.UUID]float64{m[0]: 1.2, m[1]: -0.2}); !errors.Is(err, ErrNegativeFraction) {
		t.Errorf("negative fraction: got %v, want ErrNegativeFraction", err)
	}
}
