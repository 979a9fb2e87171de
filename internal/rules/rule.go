// Package rules holds the underwriting checks applied by the feasibility
// evaluator. Each rule looks at one aspect of an assessment and reports at
// most one finding.
package rules

import (
	"fmt"

	"mortgage-engine/internal/model"
)

// Assessment is a borrower profile together with the figures derived
// from it under one benchmark regime.
type Assessment struct {
	Profile             model.BorrowerProfile
	Benchmarks          model.BenchmarkConfig
	MonthlyPayment      float64
	LoanToValue         float64
	DebtToIncome        float64
	ResidualIncome      float64
	RequiredSubsistence float64
	MaturityAge         int
}

// MaturityAgeExceeded reports whether the loan outlives the age limit.
func (a *Assessment) MaturityAgeExceeded() bool {
	return a.MaturityAge > a.Benchmarks.MaxMaturityAge
}

// Rule is one independent check. Check returns false when the rule does
// not trigger.
type Rule interface {
	Name() string
	Check(a *Assessment) (model.Finding, bool)
}

// order is the evaluation order. Findings are reported in this order.
var order = []Rule{
	LTVRule{},
	DTIRule{},
	SubsistenceRule{},
	MaturityRule{},
	EmploymentRule{},
}

var registry = func() map[string]Rule {
	m := make(map[string]Rule, len(order))
	for _, r := range order {
		m[r.Name()] = r
	}
	return m
}()

// Default returns every rule in evaluation order.
func Default() []Rule {
	return append([]Rule(nil), order...)
}

func Get(name string) (Rule, bool) {
	r, ok := registry[name]
	return r, ok
}

// Select returns the named rules in evaluation order, regardless of the
// order of names. An empty list selects every rule.
func Select(names []string) ([]Rule, error) {
	if len(names) == 0 {
		return Default(), nil
	}

	enabled := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := registry[n]; !ok {
			return nil, fmt.Errorf("unknown rule %q", n)
		}
		enabled[n] = true
	}

	var selected []Rule
	for _, r := range order {
		if enabled[r.Name()] {
			selected = append(selected, r)
		}
	}
	return selected, nil
}
