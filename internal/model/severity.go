package model

import "fmt"

// Severity is the accumulated risk score. Higher is worse.
type Severity int

const (
	SeverityGood Severity = iota
	SeverityWarning
	SeverityCritical
)

type Status string

const (
	StatusGood     Status = "GOOD"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
)

// Status maps a score to its three-level status. Scores above critical
// are treated as critical.
func (s Severity) Status() Status {
	switch {
	case s <= SeverityGood:
		return StatusGood
	case s == SeverityWarning:
		return StatusWarning
	default:
		return StatusCritical
	}
}

func (s Severity) String() string {
	return string(s.Status())
}

// Max returns the worse of two severities.
func (s Severity) Max(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch Status(b) {
	case StatusGood:
		*s = SeverityGood
	case StatusWarning:
		*s = SeverityWarning
	case StatusCritical:
		*s = SeverityCritical
	default:
		return fmt.Errorf("unknown severity %q", string(b))
	}
	return nil
}

// Label is the headline shown next to a status.
func (s Status) Label() string {
	switch s {
	case StatusGood:
		return "Excellent profile"
	case StatusWarning:
		return "Profile to review"
	case StatusCritical:
		return "Critical profile"
	}
	return ""
}
