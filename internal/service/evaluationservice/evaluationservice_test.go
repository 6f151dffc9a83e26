package evaluationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockApplicationRepo, *MockScorer) {
	ctrl := gomock.NewController(t)
	repo := NewMockApplicationRepo(ctrl)
	scorer := NewMockScorer(ctrl)
	service := New(repo, scorer)
	defer ctrl.Finish()
	return service, repo, scorer
}

func eligibleAffiliate(t *testing.T, salary string) *domain.Affiliate {
	t.Helper()
	affiliate, err := domain.NewAffiliate(1, "1030657890", "Maria Rodriguez",
		decimal.RequireFromString(salary), time.Now().UTC().AddDate(-2, 0, 0), domain.ActiveStatus)
	assert.NoError(t, err)
	return affiliate
}

func pendingApplication(t *testing.T, affiliate *domain.Affiliate, amount string, termMonths int) *domain.CreditApplication {
	t.Helper()
	app, err := domain.NewCreditApplication(1, affiliate, decimal.RequireFromString(amount), termMonths,
		decimal.RequireFromString("12.5"), time.Now().UTC().Add(-time.Hour), domain.PendingStatus, nil, "")
	assert.NoError(t, err)
	return app
}

func evaluation(t *testing.T, score int) *domain.RiskEvaluation {
	t.Helper()
	level, err := domain.RiskLevelForScore(score)
	assert.NoError(t, err)

	approved := level != domain.HighRisk
	rejectionReason := ""
	if !approved {
		rejectionReason = "High risk level from credit bureau"
	}
	eval, err := domain.NewRiskEvaluation(0, score, level, "test evaluation", time.Now().UTC(), approved, rejectionReason)
	assert.NoError(t, err)
	return eval
}

func TestEvaluate(t *testing.T) {
	affiliate := eligibleAffiliate(t, "3500000")

	tests := []struct {
		name           string
		application    *domain.CreditApplication
		score          int
		expectedStatus string
		expectApproved bool
		reasonContains string
	}{
		{
			name:           "Low risk application is approved",
			application:    pendingApplication(t, affiliate, "5000000", 36),
			score:          720,
			expectedStatus: domain.ApprovedStatus,
			expectApproved: true,
			reasonContains: "Approved - Risk level: LOW, Score: 720",
		},
		{
			name:           "Medium risk application is approved",
			application:    pendingApplication(t, affiliate, "5000000", 36),
			score:          600,
			expectedStatus: domain.ApprovedStatus,
			expectApproved: true,
			reasonContains: "Approved - Risk level: MEDIUM, Score: 600",
		},
		{
			name:           "High risk application is rejected",
			application:    pendingApplication(t, affiliate, "5000000", 36),
			score:          420,
			expectedStatus: domain.RejectedStatus,
			expectApproved: false,
			reasonContains: "High risk level detected (score: 420)",
		},
		{
			name:           "Payment ratio above 40 percent is rejected",
			application:    pendingApplication(t, affiliate, "30000000", 12),
			score:          720,
			expectedStatus: domain.RejectedStatus,
			expectApproved: false,
			reasonContains: "Payment-to-income ratio",
		},
		{
			name:           "Amount above 10x salary is rejected",
			application:    pendingApplication(t, affiliate, "36000000", 360),
			score:          720,
			expectedStatus: domain.RejectedStatus,
			expectApproved: false,
			reasonContains: "Requested amount exceeds maximum allowed (10x monthly salary)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, scorer := NewMock(t)

			repo.EXPECT().FindByID(gomock.Any(), 1).Return(tt.application, nil)
			scorer.EXPECT().Score(gomock.Any(), "1030657890", tt.application.RequestedAmount, tt.application.TermMonths).
				Return(evaluation(t, tt.score), nil)
			repo.EXPECT().UpdateDecision(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, app *domain.CreditApplication) error {
					assert.Equal(t, tt.expectedStatus, app.Status)
					assert.NotNil(t, app.RiskEvaluation)
					return nil
				})

			result, err := service.Evaluate(context.Background(), 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectApproved, result.Approved)
			assert.Contains(t, result.Reason, tt.reasonContains)
			assert.Equal(t, tt.expectedStatus, result.Application.Status)
			assert.Equal(t, tt.score, result.Application.RiskEvaluation.Score)
		})
	}
}

func TestEvaluate_ApplicationNotFound(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)

	result, err := service.Evaluate(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	assert.Nil(t, result)
}

func TestEvaluate_AlreadyDecided(t *testing.T) {
	service, repo, _ := NewMock(t)
	affiliate := eligibleAffiliate(t, "3500000")

	decided, err := domain.NewCreditApplication(1, affiliate, decimal.RequireFromString("5000000"), 36,
		decimal.RequireFromString("12.5"), time.Now().UTC().Add(-time.Hour), domain.ApprovedStatus, nil, "Approved")
	assert.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(decided, nil)

	result, err := service.Evaluate(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotEvaluable)
	assert.Nil(t, result)
}

func TestEvaluate_ScorerFailure(t *testing.T) {
	service, repo, scorer := NewMock(t)
	affiliate := eligibleAffiliate(t, "3500000")
	app := pendingApplication(t, affiliate, "5000000", 36)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(app, nil)
	scorer.EXPECT().Score(gomock.Any(), "1030657890", app.RequestedAmount, 36).
		Return(nil, errors.New("scoring backend unavailable"))

	result, err := service.Evaluate(context.Background(), 1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "can't score application 1")
	assert.Nil(t, result)
}

func TestEvaluate_ConcurrentDecisionLosesRace(t *testing.T) {
	service, repo, scorer := NewMock(t)
	affiliate := eligibleAffiliate(t, "3500000")
	app := pendingApplication(t, affiliate, "5000000", 36)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(app, nil)
	scorer.EXPECT().Score(gomock.Any(), "1030657890", app.RequestedAmount, 36).
		Return(evaluation(t, 720), nil)
	repo.EXPECT().UpdateDecision(gomock.Any(), gomock.Any()).Return(domain.ErrEvaluationConflict)

	result, err := service.Evaluate(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrEvaluationConflict)
	assert.Nil(t, result)
}

func TestEvaluate_HighRiskShortCircuitsOtherRules(t *testing.T) {
	service, repo, scorer := NewMock(t)
	affiliate := eligibleAffiliate(t, "3500000")
	// would also fail the amount cap, but the high risk reason must win
	app := pendingApplication(t, affiliate, "36000000", 360)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(app, nil)
	scorer.EXPECT().Score(gomock.Any(), "1030657890", app.RequestedAmount, 360).
		Return(evaluation(t, 350), nil)
	repo.EXPECT().UpdateDecision(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Evaluate(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, "High risk level detected (score: 350)", result.Reason)
}
