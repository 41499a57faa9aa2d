package lock

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestKeyBuilders(t *testing.T) {
	id := uuid.MustParse("0198f3a0-0000-7000-8000-000000000001")

	cases := []struct {
		name   string
		key    string
		prefix string
	}{
		{"group", GroupKey(id), "tiplock:group:"},
		{"order", OrderKey(id), "tiplock:order:"},
		{"payment", PaymentKey(id), "tiplock:payment:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.prefix + id.String()
			if tc.key != want {
				t.Fatalf("key = %q, want %q", tc.key, want)
			}
		})
	}
}

func TestKeyBuildersDistinctPerTarget(t *testing.T) {
	id := uuid.New()
	keys := []string{GroupKey(id), OrderKey(id), PaymentKey(id)}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q across target kinds", k)
		}
		if !strings.HasPrefix(k, "tiplock:") {
			t.Fatalf("key %q missing namespace prefix", k)
		}
		seen[k] = true
	}
}
