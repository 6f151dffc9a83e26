package service

import (
	"github.com/coopcredit/coopcredit/internal/config"
	"github.com/coopcredit/coopcredit/internal/handlers/affiliates"
	"github.com/coopcredit/coopcredit/internal/handlers/applications"
	"github.com/coopcredit/coopcredit/internal/handlers/auth"
	"github.com/coopcredit/coopcredit/internal/handlers/evaluations"

	pkgauth "github.com/coopcredit/coopcredit/pkg/auth"
	"github.com/coopcredit/coopcredit/pkg/clients"

	"github.com/coopcredit/coopcredit/internal/repo"
	"github.com/coopcredit/coopcredit/internal/risk"
	affiliateservice "github.com/coopcredit/coopcredit/internal/service/affiliateservice"
	applicationservice "github.com/coopcredit/coopcredit/internal/service/applicationservice"
	authservice "github.com/coopcredit/coopcredit/internal/service/authservice"
	evaluationservice "github.com/coopcredit/coopcredit/internal/service/evaluationservice"
)

type Services struct {
	AuthService        auth.Service
	AffiliateService   affiliates.Service
	ApplicationService applications.Service
	EvaluationService  evaluations.Service
}

func New(cfg *config.Config, repo *repo.Repositories, httpClient clients.HTTPClientI) *Services {
	bureau := risk.NewBureauClient(cfg.RiskAddress, httpClient)
	scorer := risk.NewService(bureau, risk.NewFallbackScorer(), cfg.RiskTimeout)

	affiliateService := affiliateservice.New(repo.AffiliateRepo)
	applicationService := applicationservice.New(repo.ApplicationRepo, repo.AffiliateRepo)
	evaluationService := evaluationservice.New(repo.ApplicationRepo, scorer)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		AffiliateService:   affiliateService,
		ApplicationService: applicationService,
		EvaluationService:  evaluationService,
	}
}
