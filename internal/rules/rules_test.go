package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/internal/model"
)

var testBenchmarks = model.BenchmarkConfig{
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

func healthy() *Assessment {
	return &Assessment{
		Profile: model.BorrowerProfile{
			EmploymentType: model.EmploymentPermanent,
			IsUnder36:      false,
		},
		Benchmarks:          testBenchmarks,
		LoanToValue:         0.6,
		DebtToIncome:        0.2,
		ResidualIncome:      2000,
		RequiredSubsistence: 900,
		MaturityAge:         60,
	}
}

func TestDefaultOrder(t *testing.T) {
	var names []string
	for _, r := range Default() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"ltv", "dti", "subsistence", "maturity", "employment"}, names)
}

func TestDefaultReturnsCopy(t *testing.T) {
	rs := Default()
	rs[0] = nil
	assert.NotNil(t, Default()[0])
}

func TestSelect(t *testing.T) {
	rs, err := Select([]string{"employment", "ltv"})
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "ltv", rs[0].Name())
	assert.Equal(t, "employment", rs[1].Name())

	rs, err = Select(nil)
	require.NoError(t, err)
	assert.Len(t, rs, 5)

	_, err = Select([]string{"credit_score"})
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	r, ok := Get("dti")
	require.True(t, ok)
	assert.Equal(t, DTIRule{}, r)

	_, ok = Get("nope")
	assert.False(t, ok)
}

func TestNoRuleTriggersOnHealthyAssessment(t *testing.T) {
	a := healthy()
	for _, r := range Default() {
		_, hit := r.Check(a)
		assert.False(t, hit, r.Name())
	}
}

func TestLTVRule(t *testing.T) {
	cases := []struct {
		name     string
		ltv      float64
		under36  bool
		hit      bool
		code     string
		level    model.Severity
		contains string
	}{
		{"below band", 0.8, false, false, "", 0, ""},
		{"above standard ceiling", 0.85, false, true, model.CodeLTVAboveCeiling, model.SeverityCritical, "85.0% (max 80%"},
		{"guaranteed warning band", 0.933, true, true, model.CodeLTVAboveStandard, model.SeverityWarning, "above 80%"},
		{"guaranteed at ceiling", 1.0, true, true, model.CodeLTVAboveStandard, model.SeverityWarning, ""},
		{"above guaranteed ceiling", 1.05, true, true, model.CodeLTVAboveCeiling, model.SeverityCritical, "(max 100%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := healthy()
			a.LoanToValue = tc.ltv
			a.Profile.IsUnder36 = tc.under36

			f, hit := LTVRule{}.Check(a)
			require.Equal(t, tc.hit, hit)
			if !hit {
				return
			}
			assert.Equal(t, tc.code, f.Code)
			assert.Equal(t, tc.level, f.Level)
			assert.Contains(t, f.Message, tc.contains)
		})
	}
}

func TestDTIRule(t *testing.T) {
	cases := []struct {
		name  string
		dti   float64
		hit   bool
		code  string
		level model.Severity
	}{
		{"at soft ceiling", 0.33, false, "", 0},
		{"warning band", 0.34, true, model.CodeDTIAtLimit, model.SeverityWarning},
		{"at critical threshold", 0.36, true, model.CodeDTIAtLimit, model.SeverityWarning},
		{"critical", 0.404, true, model.CodeDTIExcessive, model.SeverityCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := healthy()
			a.DebtToIncome = tc.dti

			f, hit := DTIRule{}.Check(a)
			require.Equal(t, tc.hit, hit)
			if hit {
				assert.Equal(t, tc.code, f.Code)
				assert.Equal(t, tc.level, f.Level)
			}
		})
	}
}

func TestDTIRule_CriticalMessageQuotesReferenceThreshold(t *testing.T) {
	a := healthy()
	a.DebtToIncome = 0.404

	f, hit := DTIRule{}.Check(a)
	require.True(t, hit)
	assert.Equal(t, "Payment-to-income ratio too high: 40.4% (maximum threshold 33%).", f.Message)
}

func TestSubsistenceRule(t *testing.T) {
	a := healthy()
	a.ResidualIncome = 850.4
	a.RequiredSubsistence = 900

	f, hit := SubsistenceRule{}.Check(a)
	require.True(t, hit)
	assert.Equal(t, model.SeverityCritical, f.Level)
	assert.Equal(t, "Insufficient residual income (€850). Minimum required for the household: €900.", f.Message)

	a.ResidualIncome = 900
	_, hit = SubsistenceRule{}.Check(a)
	assert.False(t, hit)
}

func TestRequiredSubsistence(t *testing.T) {
	cases := map[int]float64{0: 900, 1: 900, 2: 1150, 3: 1400, 5: 1900}
	for dependents, want := range cases {
		assert.Equal(t, want, RequiredSubsistence(dependents, testBenchmarks), "dependents %d", dependents)
	}
}

func TestMaturityRule(t *testing.T) {
	a := healthy()
	a.MaturityAge = 75
	_, hit := MaturityRule{}.Check(a)
	assert.False(t, hit)

	a.MaturityAge = 90
	f, hit := MaturityRule{}.Check(a)
	require.True(t, hit)
	assert.Equal(t, model.CodeMaturityAgeExceeded, f.Code)
	assert.Equal(t, model.SeverityCritical, f.Level)
	assert.Equal(t, "Loan matures at age 90, beyond the bank limit of 75.", f.Message)
	assert.True(t, a.MaturityAgeExceeded())
}

func TestEmploymentRule(t *testing.T) {
	for _, et := range []model.EmploymentType{model.EmploymentPermanent, model.EmploymentSelfEmployed, model.EmploymentRetired} {
		a := healthy()
		a.Profile.EmploymentType = et
		_, hit := EmploymentRule{}.Check(a)
		assert.False(t, hit, string(et))
	}

	a := healthy()
	a.Profile.EmploymentType = model.EmploymentFixedTerm
	f, hit := EmploymentRule{}.Check(a)
	require.True(t, hit)
	assert.Equal(t, model.SeverityWarning, f.Level)
	assert.Equal(t, model.CodeFixedTermEmployment, f.Code)
}
