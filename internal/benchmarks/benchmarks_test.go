package benchmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
regimes:
  - name: "2027"
    benchmarks:
      fixed_rate: 0.031
      variable_rate: 0.036
    banks:
      - name: "Credit Agricole"
        spread_adjustment: -0.0015
  - name: "strict"
    benchmarks:
      max_maturity_age: 70
      max_ltv_standard: 0.7
      ltv_warning: 0.7
    rules: [employment, ltv, maturity]
`

func TestDefault(t *testing.T) {
	r := Default()

	assert.Equal(t, "2026", r.Name)
	assert.Equal(t, 0.032, r.Benchmarks.FixedRate)
	assert.Equal(t, 0.33, r.Benchmarks.MaxDTI)
	assert.Equal(t, 75, r.Benchmarks.MaxMaturityAge)
	require.Len(t, r.Banks, 4)
	assert.Equal(t, "Intesa Sanpaolo", r.Banks[0].Name)
	assert.Equal(t, -0.002, r.Banks[0].SpreadAdjustment)
	assert.Len(t, r.Rules(), 5)
	require.NoError(t, Validate(r))
}

func TestRegimeCopies(t *testing.T) {
	r := Default()
	roster := r.Roster()
	roster[0].Name = "changed"
	assert.Equal(t, "Intesa Sanpaolo", r.Banks[0].Name)
}

func TestParse(t *testing.T) {
	regimes, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, regimes, 2)

	r := regimes[0]
	assert.Equal(t, "2027", r.Name)
	assert.Equal(t, 0.031, r.Benchmarks.FixedRate)
	assert.Equal(t, 0.036, r.Benchmarks.VariableRate)
	// omitted fields inherit 2026 values
	assert.Equal(t, 0.33, r.Benchmarks.MaxDTI)
	assert.Equal(t, 0.36, r.Benchmarks.CriticalDTI)
	assert.Equal(t, 900.0, r.Benchmarks.MinSubsistenceBase)
	assert.Equal(t, 0.002, r.Benchmarks.EffectiveRateMarkup)
	require.Len(t, r.Banks, 1)
	assert.Equal(t, "Credit Agricole", r.Banks[0].Name)
	assert.Len(t, r.Rules(), 5)

	strict := regimes[1]
	assert.Equal(t, 70, strict.Benchmarks.MaxMaturityAge)
	assert.Len(t, strict.Banks, 4)
	var names []string
	for _, rule := range strict.Rules() {
		names = append(names, rule.Name())
	}
	assert.Equal(t, []string{"ltv", "maturity", "employment"}, names)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"malformed":       "regimes: [",
		"missing name":    "regimes:\n  - benchmarks: {fixed_rate: 0.03}\n",
		"duplicate":       "regimes:\n  - name: a\n  - name: a\n",
		"negative rate":   "regimes:\n  - name: a\n    benchmarks: {fixed_rate: -0.01}\n",
		"dti order":       "regimes:\n  - name: a\n    benchmarks: {max_dti: 0.4, critical_dti: 0.35}\n",
		"unknown rule":    "regimes:\n  - name: a\n    rules: [credit_score]\n",
		"bank name":       "regimes:\n  - name: a\n    banks: [{spread_adjustment: 0.001}]\n",
		"negative spread": "regimes:\n  - name: a\n    benchmarks: {fixed_rate: 0.001}\n    banks: [{name: x, spread_adjustment: -0.002}]\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_InvalidRegimeIsWrapped(t *testing.T) {
	_, err := Parse([]byte("regimes:\n  - name: a\n  - name: a\n"))
	assert.ErrorIs(t, err, ErrInvalidRegime)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	regimes, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, regimes, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	extra, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	reg, err := NewRegistry("2027", extra...)
	require.NoError(t, err)

	assert.Equal(t, "2027", reg.DefaultName())
	assert.Equal(t, []string{"2026", "2027", "strict"}, reg.Names())

	r, err := reg.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "2027", r.Name)

	r, err = reg.Lookup("2026")
	require.NoError(t, err)
	assert.Equal(t, 0.032, r.Benchmarks.FixedRate)

	_, err = reg.Lookup("1999")
	assert.ErrorIs(t, err, ErrUnknownRegime)
}

func TestRegistry_OverrideBuiltin(t *testing.T) {
	override := Default()
	override.Benchmarks.FixedRate = 0.03

	reg, err := NewRegistry(DefaultRegimeName, override)
	require.NoError(t, err)

	r, err := reg.Lookup(DefaultRegimeName)
	require.NoError(t, err)
	assert.Equal(t, 0.03, r.Benchmarks.FixedRate)
	assert.Equal(t, []string{"2026"}, reg.Names())
}

func TestRegistry_UnknownDefault(t *testing.T) {
	_, err := NewRegistry("2030")
	assert.ErrorIs(t, err, ErrUnknownRegime)
}
