package rules

import (
	"fmt"

	"mortgage-engine/internal/format"
	"mortgage-engine/internal/model"
)

// LTVRule checks loan-to-value against the ceiling of the borrower's
// profile. Under-36 borrowers get the guaranteed ceiling.
type LTVRule struct{}

func (LTVRule) Name() string { return "ltv" }

func (LTVRule) Check(a *Assessment) (model.Finding, bool) {
	ceiling := a.Benchmarks.MaxLTVStandard
	if a.Profile.IsUnder36 {
		ceiling = a.Benchmarks.MaxLTVGuaranteed
	}

	if a.LoanToValue > ceiling {
		return model.Finding{
			Code:  model.CodeLTVAboveCeiling,
			Level: model.SeverityCritical,
			Message: fmt.Sprintf("Loan-to-value too high: %s%% (max %s%% for your profile).",
				format.Percent(a.LoanToValue, 1), format.PercentPlain(ceiling)),
		}, true
	}

	if a.LoanToValue > a.Benchmarks.LTVWarning {
		return model.Finding{
			Code:  model.CodeLTVAboveStandard,
			Level: model.SeverityWarning,
			Message: fmt.Sprintf("Loan-to-value above %s%%: underwriting may be stricter.",
				format.PercentPlain(a.Benchmarks.LTVWarning)),
		}, true
	}

	return model.Finding{}, false
}
