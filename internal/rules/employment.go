package rules

import "mortgage-engine/internal/model"

type EmploymentRule struct{}

func (EmploymentRule) Name() string { return "employment" }

func (EmploymentRule) Check(a *Assessment) (model.Finding, bool) {
	if a.Profile.EmploymentType != model.EmploymentFixedTerm {
		return model.Finding{}, false
	}
	return model.Finding{
		Code:    model.CodeFixedTermEmployment,
		Level:   model.SeverityWarning,
		Message: "A fixed-term contract requires co-signers or additional guarantees.",
	}, true
}
