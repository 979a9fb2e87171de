package benchmarks

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mortgage-engine/internal/rules"
)

var ErrInvalidRegime = errors.New("invalid benchmark regime")

type regimeFile struct {
	Regimes []regimeEntry `yaml:"regimes"`
}

type regimeEntry struct {
	Name       string    `yaml:"name"`
	Benchmarks yaml.Node `yaml:"benchmarks"`
	Banks      yaml.Node `yaml:"banks"`
	Rules      []string  `yaml:"rules"`
}

// LoadFile reads regimes from a YAML file.
func LoadFile(path string) ([]Regime, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmarks file: %w", err)
	}
	regimes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return regimes, nil
}

// Parse decodes regimes from YAML. Benchmark fields a regime omits keep
// their 2026 values, and a regime without banks gets the 2026 roster.
func Parse(data []byte) ([]Regime, error) {
	var f regimeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse benchmarks: %w", err)
	}

	seen := make(map[string]bool, len(f.Regimes))
	regimes := make([]Regime, 0, len(f.Regimes))
	for i, e := range f.Regimes {
		r, err := e.toRegime()
		if err != nil {
			return nil, fmt.Errorf("regime %d: %w", i, err)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidRegime, r.Name)
		}
		seen[r.Name] = true
		regimes = append(regimes, r)
	}
	return regimes, nil
}

func (e regimeEntry) toRegime() (Regime, error) {
	r := Regime{
		Name:       e.Name,
		Benchmarks: Benchmarks2026(),
		Banks:      Banks2026(),
		RuleNames:  e.Rules,
	}

	if !e.Benchmarks.IsZero() {
		if err := e.Benchmarks.Decode(&r.Benchmarks); err != nil {
			return Regime{}, fmt.Errorf("benchmarks: %w", err)
		}
	}
	if !e.Banks.IsZero() {
		r.Banks = nil
		if err := e.Banks.Decode(&r.Banks); err != nil {
			return Regime{}, fmt.Errorf("banks: %w", err)
		}
	}

	set, err := rules.Select(e.Rules)
	if err != nil {
		return Regime{}, fmt.Errorf("%w: %v", ErrInvalidRegime, err)
	}
	r.ruleSet = set

	if err := Validate(r); err != nil {
		return Regime{}, err
	}
	return r, nil
}

// Validate checks that a regime can be evaluated against.
func Validate(r Regime) error {
	b := r.Benchmarks
	switch {
	case r.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRegime)
	case b.FixedRate < 0 || b.VariableRate < 0:
		return fmt.Errorf("%w: %s: reference rates must be non-negative", ErrInvalidRegime, r.Name)
	case b.MaxDTI <= 0 || b.CriticalDTI < b.MaxDTI:
		return fmt.Errorf("%w: %s: dti thresholds must satisfy 0 < max_dti <= critical_dti", ErrInvalidRegime, r.Name)
	case b.MaxLTVStandard <= 0 || b.MaxLTVGuaranteed <= 0 || b.LTVWarning <= 0:
		return fmt.Errorf("%w: %s: ltv ceilings must be positive", ErrInvalidRegime, r.Name)
	case b.MinSubsistenceBase < 0 || b.MinSubsistencePerDependent < 0:
		return fmt.Errorf("%w: %s: subsistence amounts must be non-negative", ErrInvalidRegime, r.Name)
	case b.MaxMaturityAge <= 0:
		return fmt.Errorf("%w: %s: max_maturity_age must be positive", ErrInvalidRegime, r.Name)
	case b.EffectiveRateMarkup < 0:
		return fmt.Errorf("%w: %s: effective_rate_markup must be non-negative", ErrInvalidRegime, r.Name)
	}

	for _, bank := range r.Banks {
		if bank.Name == "" {
			return fmt.Errorf("%w: %s: bank name is required", ErrInvalidRegime, r.Name)
		}
		if b.FixedRate+bank.SpreadAdjustment < 0 {
			return fmt.Errorf("%w: %s: %s has a negative nominal rate", ErrInvalidRegime, r.Name, bank.Name)
		}
	}
	return nil
}
