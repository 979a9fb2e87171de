package rules

import (
	"fmt"

	"mortgage-engine/internal/model"
)

type MaturityRule struct{}

func (MaturityRule) Name() string { return "maturity" }

func (MaturityRule) Check(a *Assessment) (model.Finding, bool) {
	if !a.MaturityAgeExceeded() {
		return model.Finding{}, false
	}
	return model.Finding{
		Code:  model.CodeMaturityAgeExceeded,
		Level: model.SeverityCritical,
		Message: fmt.Sprintf("Loan matures at age %d, beyond the bank limit of %d.",
			a.MaturityAge, a.Benchmarks.MaxMaturityAge),
	}, true
}
