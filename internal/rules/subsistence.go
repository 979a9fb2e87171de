package rules

import (
	"fmt"

	"mortgage-engine/internal/format"
	"mortgage-engine/internal/model"
)

type SubsistenceRule struct{}

func (SubsistenceRule) Name() string { return "subsistence" }

func (SubsistenceRule) Check(a *Assessment) (model.Finding, bool) {
	// a NaN residual does not trigger
	if !(a.ResidualIncome < a.RequiredSubsistence) {
		return model.Finding{}, false
	}
	return model.Finding{
		Code:  model.CodeResidualIncomeInsufficient,
		Level: model.SeverityCritical,
		Message: fmt.Sprintf("Insufficient residual income (€%s). Minimum required for the household: €%s.",
			format.Whole(a.ResidualIncome), format.Number(a.RequiredSubsistence)),
	}, true
}

// RequiredSubsistence is the minimum monthly income the household must
// keep. The base covers the applicant plus one dependent; every further
// dependent adds the per-dependent amount.
func RequiredSubsistence(dependents int, b model.BenchmarkConfig) float64 {
	extra := dependents - 1
	if extra < 0 {
		extra = 0
	}
	return b.MinSubsistenceBase + float64(extra)*b.MinSubsistencePerDependent
}
