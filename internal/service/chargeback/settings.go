package chargeback

import "encoding/json"

// Policy decides who eats a voided payment's tips.
type Policy string

const (
	// PolicyBusinessAbsorbs: employees keep their credited tips, the
	// business takes the loss. No debit entries, no debts.
	PolicyBusinessAbsorbs Policy = "BUSINESS_ABSORBS"

	// PolicyEmployeeChargeback: credited tips are reversed from the
	// employees, capped by balance unless negative balances are allowed.
	PolicyEmployeeChargeback Policy = "EMPLOYEE_CHARGEBACK"
)

// Settings is the resolved tip section of a location's settings blob.
type Settings struct {
	ChargebackPolicy      Policy `json:"chargeback_policy"`
	AllowNegativeBalances bool   `json:"allow_negative_balances"`
}

// DefaultSettings are applied field-by-field wherever the stored blob is
// missing, malformed, or silent. BUSINESS_ABSORBS is the default because
// an unconfigured location should never debit employees by surprise.
func DefaultSettings() Settings {
	return Settings{
		ChargebackPolicy:      PolicyBusinessAbsorbs,
		AllowNegativeBalances: false,
	}
}

// rawSettings mirrors the admin console's blob shape with pointer fields
// so "absent" is distinguishable from a zero value.
type rawSettings struct {
	Tips *struct {
		ChargebackPolicy      *string `json:"chargeback_policy"`
		AllowNegativeBalances *bool   `json:"allow_negative_balances"`
	} `json:"tips"`
}

// ResolveSettings merges a stored settings blob over the defaults. A nil,
// empty, or unparseable blob resolves to the defaults outright; partial
// blobs override only the fields they carry. An unknown policy string is
// treated as absent. Resolution never fails; settings problems must not
// block a chargeback.
func ResolveSettings(blob []byte) Settings {
	resolved := DefaultSettings()
	if len(blob) == 0 {
		return resolved
	}

	var raw rawSettings
	if err := json.Unmarshal(blob, &raw); err != nil || raw.Tips == nil {
		return resolved
	}

	if raw.Tips.ChargebackPolicy != nil {
		switch Policy(*raw.Tips.ChargebackPolicy) {
		case PolicyBusinessAbsorbs, PolicyEmployeeChargeback:
			resolved.ChargebackPolicy = Policy(*raw.Tips.ChargebackPolicy)
		}
	}
	if raw.Tips.AllowNegativeBalances != nil {
		resolved.AllowNegativeBalances = *raw.Tips.AllowNegativeBalances
	}

	return resolved
}
