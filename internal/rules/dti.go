package rules

import (
	"fmt"

	"mortgage-engine/internal/format"
	"mortgage-engine/internal/model"
)

// DTIRule checks debt-to-income. Above CriticalDTI is critical; between
// MaxDTI and CriticalDTI is a warning. The critical message quotes MaxDTI
// as the reference threshold.
type DTIRule struct{}

func (DTIRule) Name() string { return "dti" }

func (DTIRule) Check(a *Assessment) (model.Finding, bool) {
	b := a.Benchmarks

	if a.DebtToIncome > b.CriticalDTI {
		return model.Finding{
			Code:  model.CodeDTIExcessive,
			Level: model.SeverityCritical,
			Message: fmt.Sprintf("Payment-to-income ratio too high: %s%% (maximum threshold %s%%).",
				format.Percent(a.DebtToIncome, 1), format.PercentPlain(b.MaxDTI)),
		}, true
	}

	if a.DebtToIncome > b.MaxDTI {
		return model.Finding{
			Code:  model.CodeDTIAtLimit,
			Level: model.SeverityWarning,
			Message: fmt.Sprintf("Payment-to-income ratio at the limit (%s-%s%%). Solid income required.",
				format.PercentPlain(b.MaxDTI), format.PercentPlain(b.CriticalDTI)),
		}, true
	}

	return model.Finding{}, false
}
