package handlers

import (
	"net/http"

	_ "github.com/coopcredit/coopcredit/docs"
	"github.com/coopcredit/coopcredit/internal/domain"
	affiliatehandlers "github.com/coopcredit/coopcredit/internal/handlers/affiliates"
	applicationhandlers "github.com/coopcredit/coopcredit/internal/handlers/applications"
	authhandlers "github.com/coopcredit/coopcredit/internal/handlers/auth"
	evaluationhandlers "github.com/coopcredit/coopcredit/internal/handlers/evaluations"
	"github.com/coopcredit/coopcredit/internal/service"
	"github.com/coopcredit/coopcredit/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AffiliateHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByDocument(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByAffiliate(w http.ResponseWriter, r *http.Request)
	ListByStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type EvaluationHandler interface {
	Evaluate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	AffiliateHandler   AffiliateHandler
	ApplicationHandler ApplicationHandler
	EvaluationHandler  EvaluationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		AffiliateHandler:   affiliatehandlers.New(s.AffiliateService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		EvaluationHandler:  evaluationhandlers.New(s.EvaluationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/affiliates", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin, domain.RoleAnalyst))
				r.Post("/", h.AffiliateHandler.Register)
				r.Get("/", h.AffiliateHandler.List)
				r.Get("/{id}", h.AffiliateHandler.Get)
				r.Get("/document/{document}", h.AffiliateHandler.GetByDocument)
				r.Put("/{id}", h.AffiliateHandler.Update)
				r.With(auth.RequireRole(domain.RoleAdmin)).Delete("/{id}", h.AffiliateHandler.Delete)
			})

			r.Route("/applications", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleAffiliate, domain.RoleAdmin)).Post("/", h.ApplicationHandler.Submit)
				r.With(auth.RequireRole(domain.RoleAdmin, domain.RoleAnalyst)).Get("/", h.ApplicationHandler.List)
				r.Get("/{id}", h.ApplicationHandler.Get)
				r.Get("/affiliate/{affiliateID}", h.ApplicationHandler.ListByAffiliate)
				r.With(auth.RequireRole(domain.RoleAdmin, domain.RoleAnalyst)).Get("/status/{status}", h.ApplicationHandler.ListByStatus)
				r.With(auth.RequireRole(domain.RoleAdmin)).Delete("/{id}", h.ApplicationHandler.Cancel)
			})

			r.With(auth.RequireRole(domain.RoleAdmin, domain.RoleAnalyst)).
				Post("/evaluations/{applicationID}", h.EvaluationHandler.Evaluate)
		})
	})

	return r
}
