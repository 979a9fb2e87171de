package model

// PaymentRequest asks for an amortization figure. AnnualRate is a fraction.
type PaymentRequest struct {
	Principal  float64 `json:"principal" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0,lte=1"`
	TermYears  int     `json:"term_years" validate:"min=1,max=50"`
}
