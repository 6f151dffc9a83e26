package domain

import (
	"strings"
	"time"
)

// RiskLevel is the three-bucket classification derived from a credit score.
type RiskLevel string

const (
	HighRisk   RiskLevel = "HIGH"
	MediumRisk RiskLevel = "MEDIUM"
	LowRisk    RiskLevel = "LOW"
)

const (
	// MinScore is the lowest score a risk bureau can report.
	MinScore = 300
	// MaxScore is the highest score a risk bureau can report.
	MaxScore = 950

	highRiskThreshold   = 500
	mediumRiskThreshold = 700
)

// RiskEvaluation is the immutable record of one risk assessment, obtained
// from the external bureau or the deterministic fallback. Exactly one credit
// application owns it.
type RiskEvaluation struct {
	ID              int       `db:"id"`
	Score           int       `db:"score"`
	RiskLevel       RiskLevel `db:"risk_level"`
	Detail          string    `db:"detail"`
	EvaluatedAt     time.Time `db:"evaluated_at"`
	Approved        bool      `db:"approved"`
	RejectionReason string    `db:"rejection_reason"`
}

// RiskLevelForScore maps a score onto its risk level:
// 300-500 HIGH, 501-700 MEDIUM, 701-950 LOW. Scores outside [300, 950] fail.
func RiskLevelForScore(score int) (RiskLevel, error) {
	if score < MinScore || score > MaxScore {
		return "", newValidationError("score", "must be between 300 and 950")
	}
	switch {
	case score <= highRiskThreshold:
		return HighRisk, nil
	case score <= mediumRiskThreshold:
		return MediumRisk, nil
	default:
		return LowRisk, nil
	}
}

// NewRiskEvaluation validates and builds an evaluation record. An empty level
// is derived from the score; an explicit level must match the score's bucket.
// A not-approved evaluation requires a rejection reason. A zero evaluatedAt
// defaults to now.
func NewRiskEvaluation(id, score int, level RiskLevel, detail string, evaluatedAt time.Time, approved bool, rejectionReason string) (*RiskEvaluation, error) {
	derived, err := RiskLevelForScore(score)
	if err != nil {
		return nil, err
	}
	if level == "" {
		level = derived
	}
	if level != derived {
		return nil, newValidationError("risk_level", "does not match score")
	}
	if evaluatedAt.IsZero() {
		evaluatedAt = time.Now().UTC()
	}
	if evaluatedAt.After(time.Now().UTC()) {
		return nil, newValidationError("evaluated_at", "cannot be in the future")
	}
	if !approved && strings.TrimSpace(rejectionReason) == "" {
		return nil, newValidationError("rejection_reason", "required when not approved")
	}

	return &RiskEvaluation{
		ID:              id,
		Score:           score,
		RiskLevel:       level,
		Detail:          detail,
		EvaluatedAt:     evaluatedAt.UTC(),
		Approved:        approved,
		RejectionReason: rejectionReason,
	}, nil
}

// IsHighRisk reports whether the evaluation landed in the HIGH bucket.
func (e *RiskEvaluation) IsHighRisk() bool {
	return e.RiskLevel == HighRisk
}

// IsAcceptableRisk reports whether the level is LOW or MEDIUM.
func (e *RiskEvaluation) IsAcceptableRisk() bool {
	return e.RiskLevel == LowRisk || e.RiskLevel == MediumRisk
}
