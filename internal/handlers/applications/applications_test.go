package applications

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/dto"
)

func NewMock(t *testing.T) (*ApplicationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func pendingApplication() *domain.CreditApplication {
	return &domain.CreditApplication{
		ID: 7,
		Affiliate: &domain.Affiliate{
			ID:              1,
			Document:        "1030657890",
			Name:            "Maria Rodriguez",
			Salary:          decimal.RequireFromString("3500000"),
			AffiliationDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:          "ACTIVE",
		},
		RequestedAmount: decimal.RequireFromString("5000000"),
		TermMonths:      36,
		InterestRate:    decimal.RequireFromString("12.5"),
		ApplicationDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:          domain.PendingStatus,
	}
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	amount := decimal.RequireFromString("5000000")
	rate := decimal.RequireFromString("12.5")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful submission",
			body: `{"affiliateId":1,"requestedAmount":"5000000","termMonths":36,"interestRate":"12.5"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, amount, 36, rate).
					Return(pendingApplication(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unknown affiliate",
			body: `{"affiliateId":99,"requestedAmount":"5000000","termMonths":36,"interestRate":"12.5"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 99, amount, 36, rate).
					Return(nil, domain.ErrAffiliateNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrAffiliateNotFound.Error(),
		},
		{
			name: "Affiliate not eligible",
			body: `{"affiliateId":1,"requestedAmount":"5000000","termMonths":36,"interestRate":"12.5"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, amount, 36, rate).
					Return(nil, domain.ErrAffiliateNotEligible)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrAffiliateNotEligible.Error(),
		},
		{
			name: "Term out of range",
			body: `{"affiliateId":1,"requestedAmount":"5000000","termMonths":0,"interestRate":"12.5"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, amount, 0, rate).
					Return(nil, &domain.ValidationError{Field: "term_months", Msg: "must be between 1 and 360"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "term_months",
		},
		{
			name: "Internal server error",
			body: `{"affiliateId":1,"requestedAmount":"5000000","termMonths":36,"interestRate":"12.5"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, amount, 36, rate).
					Return(nil, assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.ApplicationResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 7, body.ID)
				assert.Equal(t, domain.PendingStatus, body.Status)
				assert.True(t, decimal.RequireFromString("167269.09").Equal(body.MonthlyPayment))
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Application found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 7).Return(pendingApplication(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid id",
			id:            "seven",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid application id",
		},
		{
			name: "Application not found",
			id:   "404",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 404).Return(nil, domain.ErrApplicationNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrApplicationNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/applications/"+tt.id, nil)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListByAffiliateHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Applications are listed", func(t *testing.T) {
		service.EXPECT().
			ListByAffiliate(gomock.Any(), 1).
			Return([]domain.CreditApplication{*pendingApplication()}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/applications/affiliate/1", nil)
		r = withURLParam(r, "affiliateID", "1")
		w := httptest.NewRecorder()

		handler.ListByAffiliate(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ApplicationResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
	})

	t.Run("Invalid affiliate id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/applications/affiliate/one", nil)
		r = withURLParam(r, "affiliateID", "one")
		w := httptest.NewRecorder()

		handler.ListByAffiliate(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown affiliate", func(t *testing.T) {
		service.EXPECT().
			ListByAffiliate(gomock.Any(), 99).
			Return(nil, domain.ErrAffiliateNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/applications/affiliate/99", nil)
		r = withURLParam(r, "affiliateID", "99")
		w := httptest.NewRecorder()

		handler.ListByAffiliate(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListByStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Applications are listed", func(t *testing.T) {
		service.EXPECT().
			ListByStatus(gomock.Any(), domain.PendingStatus).
			Return([]domain.CreditApplication{*pendingApplication()}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/applications/status/PENDING", nil)
		r = withURLParam(r, "status", "PENDING")
		w := httptest.NewRecorder()

		handler.ListByStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		service.EXPECT().
			ListByStatus(gomock.Any(), "SHIPPED").
			Return(nil, &domain.ValidationError{Field: "status", Msg: "must be one of PENDING, APPROVED, REJECTED, CANCELLED"})

		r := httptest.NewRequest(http.MethodGet, "/api/applications/status/SHIPPED", nil)
		r = withURLParam(r, "status", "SHIPPED")
		w := httptest.NewRecorder()

		handler.ListByStatus(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "status")
	})
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Applications are listed", func(t *testing.T) {
		service.EXPECT().
			ListAll(gomock.Any()).
			Return([]domain.CreditApplication{*pendingApplication()}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().ListAll(gomock.Any()).Return(nil, assert.AnError)

		r := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Application is cancelled",
			id:   "7",
			prepareMock: func() {
				cancelled := pendingApplication()
				cancelled.Status = domain.CancelledStatus
				cancelled.DecisionReason = "Cancelled by administrator"
				service.EXPECT().
					Cancel(gomock.Any(), 7, "").
					Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid id",
			id:            "seven",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid application id",
		},
		{
			name: "Application not found",
			id:   "404",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 404, "").
					Return(nil, domain.ErrApplicationNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrApplicationNotFound.Error(),
		},
		{
			name: "Application already decided",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 7, "").
					Return(nil, domain.ErrNotEvaluable)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrNotEvaluable.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodDelete, "/api/applications/"+tt.id, nil)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.Cancel(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.name == "Application is cancelled" {
				assert.Contains(t, w.Body.String(), domain.CancelledStatus)
			}
		})
	}
}
