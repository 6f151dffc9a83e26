package applicationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=applicationservice.go -destination=applicationservice_mock.go -package=applicationservice

type ApplicationRepo interface {
	Save(ctx context.Context, app *domain.CreditApplication) error
	FindByID(ctx context.Context, id int) (*domain.CreditApplication, error)
	FindByAffiliateID(ctx context.Context, affiliateID int) ([]domain.CreditApplication, error)
	FindByStatus(ctx context.Context, status string) ([]domain.CreditApplication, error)
	FindAll(ctx context.Context) ([]domain.CreditApplication, error)
	UpdateDecision(ctx context.Context, app *domain.CreditApplication) error
}

type AffiliateRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Affiliate, error)
}

type Service struct {
	appRepo       ApplicationRepo
	affiliateRepo AffiliateRepo
}

func New(appRepo ApplicationRepo, affiliateRepo AffiliateRepo) *Service {
	return &Service{
		appRepo:       appRepo,
		affiliateRepo: affiliateRepo,
	}
}

// Submit registers a new PENDING application. Eligibility (ACTIVE, six months
// of seniority) and affordability (payment-to-income ratio, amount cap) are
// enforced here, at submission time, so clearly hopeless requests never enter
// the evaluation queue.
func (s *Service) Submit(ctx context.Context, affiliateID int, amount decimal.Decimal, termMonths int, interestRate decimal.Decimal) (*domain.CreditApplication, error) {
	affiliate, err := s.affiliateRepo.FindByID(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	if !affiliate.IsActive() || !affiliate.HasMinimumSeniority() {
		zap.L().Info("ineligible affiliate submitted an application",
			zap.Int("affiliateID", affiliateID),
			zap.String("status", affiliate.Status),
			zap.Int("seniorityMonths", affiliate.MonthsSinceAffiliation()))
		return nil, domain.ErrAffiliateNotEligible
	}

	app, err := domain.NewCreditApplication(0, affiliate, amount, termMonths, interestRate, time.Time{}, domain.PendingStatus, nil, "")
	if err != nil {
		return nil, err
	}

	if !app.HasAcceptablePaymentToIncomeRatio() {
		return nil, &domain.ValidationError{
			Field: "requested_amount",
			Msg: fmt.Sprintf("payment-to-income ratio (%s%%) exceeds maximum allowed (40%%)",
				app.PaymentToIncomeRatio().Mul(decimal.NewFromInt(100)).StringFixed(2)),
		}
	}
	if !app.HasAcceptableAmount() {
		return nil, &domain.ValidationError{
			Field: "requested_amount",
			Msg:   fmt.Sprintf("exceeds maximum allowed (10x salary: %s)", affiliate.MaxCreditAmount(10).StringFixed(2)),
		}
	}

	if err := s.appRepo.Save(ctx, app); err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.CreditApplication, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

func (s *Service) ListByAffiliate(ctx context.Context, affiliateID int) ([]domain.CreditApplication, error) {
	return s.appRepo.FindByAffiliateID(ctx, affiliateID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.CreditApplication, error) {
	switch status {
	case domain.PendingStatus, domain.ApprovedStatus, domain.RejectedStatus, domain.CancelledStatus:
	default:
		return nil, &domain.ValidationError{Field: "status", Msg: "unknown application status"}
	}
	return s.appRepo.FindByStatus(ctx, status)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.CreditApplication, error) {
	return s.appRepo.FindAll(ctx)
}

// Cancel withdraws a PENDING application through the administrative path.
// The underlying write is conditional on the PENDING status, so a cancel
// racing an evaluation can not overwrite a decision.
func (s *Service) Cancel(ctx context.Context, id int, reason string) (*domain.CreditApplication, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.IsPending() {
		return nil, domain.ErrNotEvaluable
	}
	if reason == "" {
		reason = "Cancelled by administrator"
	}

	cancelled, err := domain.NewCreditApplication(app.ID, app.Affiliate, app.RequestedAmount, app.TermMonths,
		app.InterestRate, app.ApplicationDate, domain.CancelledStatus, nil, reason)
	if err != nil {
		return nil, err
	}
	if err := s.appRepo.UpdateDecision(ctx, cancelled); err != nil {
		return nil, err
	}
	return cancelled, nil
}
