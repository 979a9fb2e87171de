package model

type EmploymentType string

const (
	EmploymentPermanent    EmploymentType = "PERMANENT"
	EmploymentFixedTerm    EmploymentType = "FIXED_TERM"
	EmploymentSelfEmployed EmploymentType = "SELF_EMPLOYED"
	EmploymentRetired      EmploymentType = "RETIRED"
)

// BorrowerProfile is the input of one feasibility evaluation.
// AnnualInterestRatePercent is in percent (3.2 means 3.2%).
type BorrowerProfile struct {
	PropertyPrice             float64        `json:"property_price" validate:"gt=0"`
	LoanAmount                float64        `json:"loan_amount" validate:"gt=0,ltefield=PropertyPrice"`
	TermYears                 int            `json:"term_years" validate:"min=1,max=50"`
	MonthlyNetIncome          float64        `json:"monthly_net_income" validate:"gt=0"`
	OtherMonthlyDebt          float64        `json:"other_monthly_debt" validate:"gte=0"`
	Age                       int            `json:"age" validate:"min=18,max=100"`
	Dependents                int            `json:"dependents" validate:"min=0,max=20"`
	EmploymentType            EmploymentType `json:"employment_type" validate:"oneof=PERMANENT FIXED_TERM SELF_EMPLOYED RETIRED"`
	IsUnder36                 bool           `json:"is_under_36"`
	AnnualInterestRatePercent float64        `json:"annual_interest_rate_percent" validate:"gte=0,lte=100"`
}

// AnnualRate returns the interest rate as a decimal fraction.
func (p BorrowerProfile) AnnualRate() float64 {
	return p.AnnualInterestRatePercent / 100
}
