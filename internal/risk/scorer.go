package risk

import (
	"context"
	"time"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scorer.go -destination=scorer_mock.go -package=risk

// Scorer produces a risk evaluation for a document/amount/term triple. For a
// fixed document the returned score must be stable across calls.
type Scorer interface {
	Score(ctx context.Context, document string, amount decimal.Decimal, termMonths int) (*domain.RiskEvaluation, error)
}

// Service is the resilience wrapper around the live bureau client: the call
// runs under a bounded timeout and any transport failure degrades to the
// deterministic fallback, so an evaluation always completes. No retries; the
// fallback already guarantees availability.
type Service struct {
	bureau   Scorer
	fallback Scorer
	timeout  time.Duration
}

func NewService(bureau Scorer, fallback Scorer, timeout time.Duration) *Service {
	return &Service{
		bureau:   bureau,
		fallback: fallback,
		timeout:  timeout,
	}
}

func (s *Service) Score(ctx context.Context, document string, amount decimal.Decimal, termMonths int) (*domain.RiskEvaluation, error) {
	if err := validateInputs(document, amount, termMonths); err != nil {
		return nil, err
	}

	bureauCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	eval, err := s.bureau.Score(bureauCtx, document, amount, termMonths)
	if err == nil {
		return eval, nil
	}
	zap.L().Warn("risk bureau unavailable, using deterministic fallback",
		zap.String("document", document), zap.Error(err))

	return s.fallback.Score(ctx, document, amount, termMonths)
}

// validateInputs fails fast before any network activity.
func validateInputs(document string, amount decimal.Decimal, termMonths int) error {
	if document == "" {
		return &domain.ValidationError{Field: "document", Msg: "cannot be empty"}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return &domain.ValidationError{Field: "requested_amount", Msg: "must be greater than zero"}
	}
	if termMonths <= 0 {
		return &domain.ValidationError{Field: "term_months", Msg: "must be greater than zero"}
	}
	return nil
}

// evaluationFor builds the domain record for a bureau or fallback score:
// HIGH risk is never approved and carries the standard rejection reason.
func evaluationFor(score int, detail string) (*domain.RiskEvaluation, error) {
	level, err := domain.RiskLevelForScore(score)
	if err != nil {
		return nil, err
	}
	highRisk := level == domain.HighRisk
	rejectionReason := ""
	if highRisk {
		rejectionReason = "High risk level from credit bureau"
	}
	return domain.NewRiskEvaluation(0, score, level, detail, time.Now().UTC(), !highRisk, rejectionReason)
}
