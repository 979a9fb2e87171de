package model

// BenchmarkConfig holds the market and underwriting constants of one
// benchmark regime. Rates and ratios are decimal fractions.
type BenchmarkConfig struct {
	FixedRate                  float64 `json:"fixed_rate" yaml:"fixed_rate"`
	VariableRate               float64 `json:"variable_rate" yaml:"variable_rate"`
	MaxDTI                     float64 `json:"max_dti" yaml:"max_dti"`
	CriticalDTI                float64 `json:"critical_dti" yaml:"critical_dti"`
	MaxLTVStandard             float64 `json:"max_ltv_standard" yaml:"max_ltv_standard"`
	MaxLTVGuaranteed           float64 `json:"max_ltv_guaranteed" yaml:"max_ltv_guaranteed"`
	LTVWarning                 float64 `json:"ltv_warning" yaml:"ltv_warning"`
	MinSubsistenceBase         float64 `json:"min_subsistence_base" yaml:"min_subsistence_base"`
	MinSubsistencePerDependent float64 `json:"min_subsistence_per_dependent" yaml:"min_subsistence_per_dependent"`
	MaxMaturityAge             int     `json:"max_maturity_age" yaml:"max_maturity_age"`
	EffectiveRateMarkup        float64 `json:"effective_rate_markup" yaml:"effective_rate_markup"`
}

// BankProfile is one entry of the comparison roster.
type BankProfile struct {
	Name             string  `json:"name" yaml:"name"`
	SpreadAdjustment float64 `json:"spread_adjustment" yaml:"spread_adjustment"`
	Logo             string  `json:"logo,omitempty" yaml:"logo"`
}
