// Package benchmarks provides the market constants and bank roster the
// evaluator runs against. A regime is an immutable, named snapshot of
// them; new market conditions get a new regime instead of mutating one.
package benchmarks

import (
	"mortgage-engine/internal/model"
	"mortgage-engine/internal/rules"
)

const DefaultRegimeName = "2026"

type Regime struct {
	Name       string
	Benchmarks model.BenchmarkConfig
	Banks      []model.BankProfile
	RuleNames  []string

	ruleSet []rules.Rule
}

// Rules returns the rules evaluated under this regime, in evaluation order.
func (r Regime) Rules() []rules.Rule {
	if len(r.ruleSet) == 0 {
		return rules.Default()
	}
	return append([]rules.Rule(nil), r.ruleSet...)
}

// Roster returns a copy of the bank roster.
func (r Regime) Roster() []model.BankProfile {
	return append([]model.BankProfile(nil), r.Banks...)
}

// Benchmarks2026 returns the 2026 reference values.
func Benchmarks2026() model.BenchmarkConfig {
	return model.BenchmarkConfig{
		FixedRate:                  0.032,
		VariableRate:               0.038,
		MaxDTI:                     0.33,
		CriticalDTI:                0.36,
		MaxLTVStandard:             0.80,
		MaxLTVGuaranteed:           1.00,
		LTVWarning:                 0.80,
		MinSubsistenceBase:         900,
		MinSubsistencePerDependent: 250,
		MaxMaturityAge:             75,
		EffectiveRateMarkup:        0.002,
	}
}

// Banks2026 returns the default comparison roster.
func Banks2026() []model.BankProfile {
	return []model.BankProfile{
		{Name: "Intesa Sanpaolo", SpreadAdjustment: -0.002, Logo: "https://img.icons8.com/color/48/bank.png"},
		{Name: "UniCredit", SpreadAdjustment: -0.001, Logo: "https://img.icons8.com/color/48/bank-building.png"},
		{Name: "Banco BPM", SpreadAdjustment: 0.001, Logo: "https://img.icons8.com/color/48/museum.png"},
		{Name: "BNL BNP Paribas", SpreadAdjustment: 0.002, Logo: "https://img.icons8.com/color/48/office.png"},
	}
}

// Default returns the built-in 2026 regime.
func Default() Regime {
	return Regime{
		Name:       DefaultRegimeName,
		Benchmarks: Benchmarks2026(),
		Banks:      Banks2026(),
		ruleSet:    rules.Default(),
	}
}
