package chargeback

import "testing"

func TestResolveSettings(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want Settings
	}{
		{
			name: "empty blob falls back to defaults",
			blob: "",
			want: DefaultSettings(),
		},
		{
			name: "malformed json falls back to defaults",
			blob: `{"tips": {`,
			want: DefaultSettings(),
		},
		{
			name: "blob without tips section falls back to defaults",
			blob: `{"receipts": {"footer": "thanks"}}`,
			want: DefaultSettings(),
		},
		{
			name: "full tips section",
			blob: `{"tips": {"chargeback_policy": "EMPLOYEE_CHARGEBACK", "allow_negative_balances": true}}`,
			want: Settings{ChargebackPolicy: PolicyEmployeeChargeback, AllowNegativeBalances: true},
		},
		{
			name: "partial section merges per field",
			blob: `{"tips": {"chargeback_policy": "EMPLOYEE_CHARGEBACK"}}`,
			want: Settings{ChargebackPolicy: PolicyEmployeeChargeback, AllowNegativeBalances: false},
		},
		{
			name: "explicit false is kept, not treated as absent",
			blob: `{"tips": {"chargeback_policy": "EMPLOYEE_CHARGEBACK", "allow_negative_balances": false}}`,
			want: Settings{ChargebackPolicy: PolicyEmployeeChargeback, AllowNegativeBalances: false},
		},
		{
			name: "unknown policy value falls back to default policy",
			blob: `{"tips": {"chargeback_policy": "SPLIT_THE_DIFFERENCE", "allow_negative_balances": true}}`,
			want: Settings{ChargebackPolicy: PolicyBusinessAbsorbs, AllowNegativeBalances: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSettings([]byte(tt.blob))
			if got != tt.want {
				t.Errorf("ResolveSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
