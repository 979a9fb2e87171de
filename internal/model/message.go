package model

// Finding is one advisory produced by a triggered rule.
type Finding struct {
	Code    string   `json:"code"`
	Level   Severity `json:"level"`
	Message string   `json:"message"`
}

const (
	CodeLTVAboveCeiling            = "LTV_ABOVE_CEILING"
	CodeLTVAboveStandard           = "LTV_ABOVE_STANDARD"
	CodeDTIExcessive               = "DTI_EXCESSIVE"
	CodeDTIAtLimit                 = "DTI_AT_LIMIT"
	CodeResidualIncomeInsufficient = "RESIDUAL_INCOME_INSUFFICIENT"
	CodeMaturityAgeExceeded        = "MATURITY_AGE_EXCEEDED"
	CodeFixedTermEmployment        = "FIXED_TERM_EMPLOYMENT"
)

// PositiveMessages returns the messages reported when no rule triggers.
func PositiveMessages() []string {
	return []string{"Excellent profile.", "High pre-feasibility."}
}
