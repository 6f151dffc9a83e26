package risk

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

func newServiceMock(t *testing.T) (*Service, *MockScorer, *MockScorer) {
	ctrl := gomock.NewController(t)
	bureau := NewMockScorer(ctrl)
	fallback := NewMockScorer(ctrl)
	service := NewService(bureau, fallback, 5*time.Second)
	defer ctrl.Finish()
	return service, bureau, fallback
}

func bureauEvaluation(t *testing.T, score int) *domain.RiskEvaluation {
	t.Helper()
	eval, err := evaluationFor(score, "test detail")
	assert.NoError(t, err)
	return eval
}

func TestScore_BureauSuccess(t *testing.T) {
	service, bureau, _ := newServiceMock(t)
	amount := decimal.RequireFromString("5000000")

	bureau.EXPECT().Score(gomock.Any(), "1030657890", amount, 36).Return(bureauEvaluation(t, 720), nil)

	eval, err := service.Score(context.Background(), "1030657890", amount, 36)

	assert.NoError(t, err)
	assert.Equal(t, 720, eval.Score)
	assert.Equal(t, domain.LowRisk, eval.RiskLevel)
}

func TestScore_FallsBackOnBureauError(t *testing.T) {
	service, bureau, fallback := newServiceMock(t)
	amount := decimal.RequireFromString("5000000")

	bureau.EXPECT().Score(gomock.Any(), "1030657890", amount, 36).
		Return(nil, errors.New("connection refused"))
	fallback.EXPECT().Score(gomock.Any(), "1030657890", amount, 36).Return(bureauEvaluation(t, 505), nil)

	eval, err := service.Score(context.Background(), "1030657890", amount, 36)

	assert.NoError(t, err)
	assert.Equal(t, 505, eval.Score)
	assert.Equal(t, domain.MediumRisk, eval.RiskLevel)
}

func TestScore_InvalidInputsFailBeforeAnyCall(t *testing.T) {
	tests := []struct {
		name       string
		document   string
		amount     string
		termMonths int
	}{
		{name: "Empty document", document: "", amount: "5000000", termMonths: 36},
		{name: "Zero amount", document: "1030657890", amount: "0", termMonths: 36},
		{name: "Negative amount", document: "1030657890", amount: "-100", termMonths: 36},
		{name: "Zero term", document: "1030657890", amount: "5000000", termMonths: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newServiceMock(t)

			eval, err := service.Score(context.Background(), tt.document, decimal.RequireFromString(tt.amount), tt.termMonths)

			assert.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Nil(t, eval)
		})
	}
}

func TestScore_BureauTimeoutDegradesToFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	bureau := NewMockScorer(ctrl)
	service := NewService(bureau, NewFallbackScorer(), 10*time.Millisecond)
	defer ctrl.Finish()

	amount := decimal.RequireFromString("5000000")
	bureau.EXPECT().Score(gomock.Any(), "1030657890", amount, 36).
		DoAndReturn(func(ctx context.Context, _ string, _ decimal.Decimal, _ int) (*domain.RiskEvaluation, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	eval, err := service.Score(context.Background(), "1030657890", amount, 36)

	assert.NoError(t, err)
	assert.Equal(t, 505, eval.Score)
}
