// Package engine evaluates mortgage feasibility for a borrower profile
// and prices the profile against a bank roster.
package engine

import (
	"math"

	"mortgage-engine/internal/amortization"
	"mortgage-engine/internal/format"
	"mortgage-engine/internal/model"
	"mortgage-engine/internal/rules"
)

// Evaluator applies one benchmark configuration and rule set. It holds no
// mutable state and is safe for concurrent use.
type Evaluator struct {
	benchmarks model.BenchmarkConfig
	rules      []rules.Rule
}

// New returns an evaluator for the given benchmarks. With no rules it
// applies rules.Default().
func New(benchmarks model.BenchmarkConfig, rs ...rules.Rule) *Evaluator {
	if len(rs) == 0 {
		rs = rules.Default()
	}
	return &Evaluator{
		benchmarks: benchmarks,
		rules:      append([]rules.Rule(nil), rs...),
	}
}

// Evaluate runs a one-off evaluation with the default rules.
func Evaluate(profile model.BorrowerProfile, benchmarks model.BenchmarkConfig) model.FeasibilityResult {
	return New(benchmarks).Evaluate(profile)
}

func (e *Evaluator) Benchmarks() model.BenchmarkConfig {
	return e.benchmarks
}

// Assess derives the payment and ratios the rules look at.
func (e *Evaluator) Assess(p model.BorrowerProfile) rules.Assessment {
	payment := amortization.MonthlyPayment(p.LoanAmount, p.AnnualRate(), p.TermYears)

	return rules.Assessment{
		Profile:             p,
		Benchmarks:          e.benchmarks,
		MonthlyPayment:      payment,
		LoanToValue:         p.LoanAmount / p.PropertyPrice,
		DebtToIncome:        (payment + p.OtherMonthlyDebt) / p.MonthlyNetIncome,
		ResidualIncome:      p.MonthlyNetIncome - payment - p.OtherMonthlyDebt,
		RequiredSubsistence: rules.RequiredSubsistence(p.Dependents, e.benchmarks),
		MaturityAge:         p.Age + p.TermYears,
	}
}

// Evaluate folds every rule over the assessment. The score only rises,
// and each triggered rule contributes one message in rule order.
func (e *Evaluator) Evaluate(p model.BorrowerProfile) model.FeasibilityResult {
	a := e.Assess(p)

	score := model.SeverityGood
	findings := []model.Finding{}
	for _, rule := range e.rules {
		f, hit := rule.Check(&a)
		if !hit {
			continue
		}
		findings = append(findings, f)
		score = score.Max(f.Level)
	}

	messages := make([]string, 0, len(findings))
	for _, f := range findings {
		messages = append(messages, f.Message)
	}
	if len(messages) == 0 {
		messages = model.PositiveMessages()
	}

	status := score.Status()
	return model.FeasibilityResult{
		MonthlyPayment:      a.MonthlyPayment,
		LoanToValue:         a.LoanToValue,
		DebtToIncome:        a.DebtToIncome,
		ResidualIncome:      a.ResidualIncome,
		RequiredSubsistence: a.RequiredSubsistence,
		MaturityAge:         a.MaturityAge,
		MaturityAgeExceeded: a.MaturityAgeExceeded(),
		Score:               score,
		Status:              status,
		StatusLabel:         status.Label(),
		Messages:            messages,
		Findings:            findings,
	}
}

// CompareBanks prices the profile's loan at every bank in the roster.
// Each bank's nominal rate is the fixed benchmark rate plus its spread.
func (e *Evaluator) CompareBanks(p model.BorrowerProfile, roster []model.BankProfile) []model.BankOffer {
	offers := make([]model.BankOffer, 0, len(roster))
	installments := float64(p.TermYears * 12)

	for _, bank := range roster {
		nominal := e.benchmarks.FixedRate + bank.SpreadAdjustment
		payment := amortization.MonthlyPayment(p.LoanAmount, nominal, p.TermYears)
		offers = append(offers, model.BankOffer{
			Name:             bank.Name,
			SpreadAdjustment: bank.SpreadAdjustment,
			NominalRate:      nominal,
			EffectiveRate:    nominal + e.benchmarks.EffectiveRateMarkup,
			MonthlyPayment:   payment,
			TotalCost:        payment * installments,
			Logo:             bank.Logo,
		})
	}
	return offers
}

// Breakdown returns the rounded monthly payment, other debt service and
// the income left after both, floored at zero.
func Breakdown(p model.BorrowerProfile, r model.FeasibilityResult) model.Breakdown {
	return model.Breakdown{
		MonthlyPayment: format.Round(r.MonthlyPayment, 0),
		OtherDebt:      p.OtherMonthlyDebt,
		FreeIncome:     math.Max(0, p.MonthlyNetIncome-r.MonthlyPayment-p.OtherMonthlyDebt),
	}
}
