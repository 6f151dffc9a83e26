package evaluationservice

import (
	"context"
	"fmt"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=evaluationservice.go -destination=evaluationservice_mock.go -package=evaluationservice

type ApplicationRepo interface {
	FindByID(ctx context.Context, id int) (*domain.CreditApplication, error)
	UpdateDecision(ctx context.Context, app *domain.CreditApplication) error
}

// Scorer is the risk-scoring port. Implementations own transport and
// fallback concerns; the orchestrator never branches on them.
type Scorer interface {
	Score(ctx context.Context, document string, amount decimal.Decimal, termMonths int) (*domain.RiskEvaluation, error)
}

// Result is what callers of an evaluation receive: the decided application
// with its attached risk evaluation, plus the decision itself.
type Result struct {
	Application *domain.CreditApplication
	Approved    bool
	Reason      string
}

type Service struct {
	appRepo ApplicationRepo
	scorer  Scorer
}

func New(appRepo ApplicationRepo, scorer Scorer) *Service {
	return &Service{
		appRepo: appRepo,
		scorer:  scorer,
	}
}

// Evaluate runs the full decision flow for one PENDING application: load,
// score through the risk port, apply the rejection rules in strict order, and
// persist the terminal state with a conditional write. A lost race against a
// concurrent evaluation surfaces domain.ErrEvaluationConflict; the caller may
// retry, the core never does.
func (s *Service) Evaluate(ctx context.Context, applicationID int) (*Result, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	if !app.CanBeEvaluated() {
		zap.L().Info("application not evaluable",
			zap.Int("applicationID", applicationID),
			zap.String("status", app.Status),
			zap.Bool("affiliateEligible", app.Affiliate.CanApplyForCredit()))
		return nil, domain.ErrNotEvaluable
	}

	eval, err := s.scorer.Score(ctx, app.Affiliate.Document, app.RequestedAmount, app.TermMonths)
	if err != nil {
		zap.L().Error("risk scoring failed", zap.Error(err))
		return nil, fmt.Errorf("can't score application %d: %w", applicationID, err)
	}

	approved, reason := decide(app, eval)

	decided, err := app.Decide(approved, eval, reason)
	if err != nil {
		return nil, err
	}
	if err := s.appRepo.UpdateDecision(ctx, decided); err != nil {
		return nil, err
	}

	zap.L().Info("application evaluated",
		zap.Int("applicationID", decided.ID),
		zap.String("status", decided.Status),
		zap.Int("score", eval.Score),
		zap.String("riskLevel", string(eval.RiskLevel)))

	return &Result{
		Application: decided,
		Approved:    approved,
		Reason:      reason,
	}, nil
}

// decide applies the rejection rules in strict order, short-circuiting at the
// first failure. Only HIGH risk rejects unconditionally; MEDIUM and LOW are
// subject to the same eligibility, ratio, and amount checks.
func decide(app *domain.CreditApplication, eval *domain.RiskEvaluation) (bool, string) {
	if eval.IsHighRisk() {
		return false, fmt.Sprintf("High risk level detected (score: %d)", eval.Score)
	}
	// eligibility could have changed between load and decision
	if !app.Affiliate.CanApplyForCredit() {
		return false, "Affiliate does not meet eligibility requirements"
	}
	if !app.HasAcceptablePaymentToIncomeRatio() {
		return false, fmt.Sprintf("Payment-to-income ratio (%s%%) exceeds maximum (40%%)", ratioPercent(app))
	}
	if !app.HasAcceptableAmount() {
		return false, "Requested amount exceeds maximum allowed (10x monthly salary)"
	}
	return true, fmt.Sprintf("Approved - Risk level: %s, Score: %d, Payment ratio: %s%%",
		eval.RiskLevel, eval.Score, ratioPercent(app))
}

func ratioPercent(app *domain.CreditApplication) string {
	return app.PaymentToIncomeRatio().Mul(decimal.NewFromInt(100)).StringFixed(2)
}
