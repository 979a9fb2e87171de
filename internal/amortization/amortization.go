// Package amortization computes fixed-rate, equal-installment (French)
// mortgage payments.
package amortization

import (
	"math"

	"mortgage-engine/internal/model"
)

// MonthlyPayment returns the installment that repays principal over
// termYears*12 months at annualRate (a decimal fraction). A zero rate
// degrades to straight-line division. Inputs are not validated.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	r := annualRate / 12
	n := float64(termYears * 12)
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// Summary returns the payment together with the totals paid over the term.
func Summary(principal, annualRate float64, termYears int) model.PaymentSummary {
	payment := MonthlyPayment(principal, annualRate, termYears)
	n := termYears * 12
	total := payment * float64(n)
	return model.PaymentSummary{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		Installments:   n,
	}
}

// Schedule returns the month-by-month amortization table. The last
// installment absorbs rounding residue so the closing balance is zero.
func Schedule(principal, annualRate float64, termYears int) []model.Installment {
	n := termYears * 12
	if n <= 0 {
		return nil
	}

	r := annualRate / 12
	payment := MonthlyPayment(principal, annualRate, termYears)
	balance := principal

	rows := make([]model.Installment, n)
	for i := 0; i < n; i++ {
		interest := balance * r
		capital := payment - interest
		if i == n-1 {
			capital = balance
		}
		balance -= capital
		rows[i] = model.Installment{
			Number:    i + 1,
			Payment:   capital + interest,
			Interest:  interest,
			Principal: capital,
			Balance:   balance,
		}
	}
	rows[n-1].Balance = 0

	return rows
}
