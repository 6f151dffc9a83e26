package affiliateservice

import (
	"context"
	"time"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=affiliateservice.go -destination=affiliateservice_mock.go -package=affiliateservice

type Repo interface {
	Save(ctx context.Context, affiliate *domain.Affiliate) error
	Update(ctx context.Context, affiliate *domain.Affiliate) error
	FindByID(ctx context.Context, id int) (*domain.Affiliate, error)
	FindByDocument(ctx context.Context, document string) (*domain.Affiliate, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
	FindAll(ctx context.Context) ([]domain.Affiliate, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Register creates a new affiliate after checking document uniqueness. The
// affiliation date defaults to today and the status to ACTIVE when omitted.
func (s *Service) Register(ctx context.Context, document, name string, salary decimal.Decimal, affiliationDate time.Time, status string) (*domain.Affiliate, error) {
	affiliate, err := domain.NewAffiliate(0, document, name, salary, affiliationDate, status)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByDocument(ctx, affiliate.Document)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Info("affiliate document already registered", zap.String("document", affiliate.Document))
		return nil, domain.ErrDocumentTaken
	}

	if err := s.repo.Save(ctx, affiliate); err != nil {
		zap.L().Error("can't save affiliate", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Affiliate, error) {
	affiliate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	return affiliate, nil
}

func (s *Service) GetByDocument(ctx context.Context, document string) (*domain.Affiliate, error) {
	affiliate, err := s.repo.FindByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	return affiliate, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Affiliate, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces the stored affiliate with a freshly validated instance;
// the document is immutable and kept from the stored row.
func (s *Service) Update(ctx context.Context, id int, name string, salary decimal.Decimal, status string) (*domain.Affiliate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := domain.NewAffiliate(existing.ID, existing.Document, name, salary, existing.AffiliationDate, status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		zap.L().Error("can't update affiliate", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
