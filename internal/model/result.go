package model

// FeasibilityResult is the outcome of one evaluation.
type FeasibilityResult struct {
	MonthlyPayment      float64   `json:"monthly_payment"`
	LoanToValue         float64   `json:"loan_to_value"`
	DebtToIncome        float64   `json:"debt_to_income"`
	ResidualIncome      float64   `json:"residual_income"`
	RequiredSubsistence float64   `json:"required_subsistence"`
	MaturityAge         int       `json:"maturity_age"`
	MaturityAgeExceeded bool      `json:"maturity_age_exceeded"`
	Score               Severity  `json:"-"`
	Status              Status    `json:"status"`
	StatusLabel         string    `json:"status_label"`
	Messages            []string  `json:"messages"`
	Findings            []Finding `json:"findings"`
}

// BankOffer is one bank product priced for a profile.
type BankOffer struct {
	Name             string  `json:"name"`
	SpreadAdjustment float64 `json:"spread_adjustment"`
	NominalRate      float64 `json:"nominal_rate"`
	EffectiveRate    float64 `json:"effective_rate"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalCost        float64 `json:"total_cost"`
	Logo             string  `json:"logo,omitempty"`
}

// Breakdown splits monthly income into the mortgage payment, other debt
// service and what is left.
type Breakdown struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	OtherDebt      float64 `json:"other_debt"`
	FreeIncome     float64 `json:"free_income"`
}

type Installment struct {
	Number    int     `json:"number"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type PaymentSummary struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Installments   int     `json:"installments"`
}
