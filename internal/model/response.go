package model

type EvaluationMetadata struct {
	EvaluationID string `json:"evaluation_id"`
	Regime       string `json:"regime"`
	StartedAt    string `json:"started_at"`
	CompletedAt  string `json:"completed_at"`
	DurationMs   int64  `json:"duration_ms"`
}

type FeasibilityResponse struct {
	Metadata  EvaluationMetadata `json:"metadata"`
	Result    FeasibilityResult  `json:"result"`
	Breakdown Breakdown          `json:"breakdown"`
	Offers    []BankOffer        `json:"offers"`
}

type OffersResponse struct {
	Metadata EvaluationMetadata `json:"metadata"`
	Offers   []BankOffer        `json:"offers"`
}

type PaymentResponse struct {
	Summary  PaymentSummary `json:"summary"`
	Schedule []Installment  `json:"schedule,omitempty"`
}

type RegimesResponse struct {
	Default string   `json:"default"`
	Regimes []string `json:"regimes"`
}

type ErrorResponse struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
