package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/dto"
	"github.com/coopcredit/coopcredit/pkg/utils"
)

//go:generate mockgen -source=applications.go -destination=applications_mock.go -package=applications

type Service interface {
	Submit(ctx context.Context, affiliateID int, amount decimal.Decimal, termMonths int, interestRate decimal.Decimal) (*domain.CreditApplication, error)
	Get(ctx context.Context, id int) (*domain.CreditApplication, error)
	ListByAffiliate(ctx context.Context, affiliateID int) ([]domain.CreditApplication, error)
	ListByStatus(ctx context.Context, status string) ([]domain.CreditApplication, error)
	ListAll(ctx context.Context) ([]domain.CreditApplication, error)
	Cancel(ctx context.Context, id int, reason string) (*domain.CreditApplication, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Submit godoc
//
//	@Summary		Submit a credit application
//	@Description	Submit a new credit application for an eligible affiliate; it stays PENDING until evaluated
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateApplicationRequestDTO	true	"Application data"
//	@Success		201		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		422		{object}	utils.Response	"Affiliate not eligible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	app, err := h.applicationService.Submit(r.Context(), req.AffiliateID, req.RequestedAmount, req.TermMonths, req.InterestRate)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(app))
}

// Get godoc
//
//	@Summary		Get a credit application by id
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Router			/api/applications/{id} [get]
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	app, err := h.applicationService.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(app))
}

// ListByAffiliate godoc
//
//	@Summary		List applications of one affiliate
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Param			affiliateID	path		int	true	"Affiliate ID"
//	@Success		200			{array}		dto.ApplicationResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid id"
//	@Failure		404			{object}	utils.Response	"Affiliate not found"
//	@Router			/api/applications/affiliate/{affiliateID} [get]
func (h *ApplicationHandler) ListByAffiliate(w http.ResponseWriter, r *http.Request) {
	affiliateID, err := strconv.Atoi(chi.URLParam(r, "affiliateID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid affiliate id")
		return
	}
	apps, err := h.applicationService.ListByAffiliate(r.Context(), affiliateID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(apps))
}

// ListByStatus godoc
//
//	@Summary		List applications in a given status
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	path		string	true	"Application status"	Enums(PENDING, APPROVED, REJECTED, CANCELLED)
//	@Success		200		{array}		dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Router			/api/applications/status/{status} [get]
func (h *ApplicationHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")
	apps, err := h.applicationService.ListByStatus(r.Context(), status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(apps))
}

// List godoc
//
//	@Summary		List all credit applications
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ApplicationResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications [get]
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListAll(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(apps))
}

// Cancel godoc
//
//	@Summary		Cancel a pending application
//	@Description	Move a PENDING application to CANCELLED; decided applications cannot be cancelled
//	@Tags			Applications
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Application already decided"
//	@Router			/api/applications/{id} [delete]
func (h *ApplicationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	app, err := h.applicationService.Cancel(r.Context(), id, "")
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(app))
}

func toDTO(app *domain.CreditApplication) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:                app.ID,
		AffiliateID:       app.Affiliate.ID,
		AffiliateDocument: app.Affiliate.Document,
		AffiliateName:     app.Affiliate.Name,
		RequestedAmount:   app.RequestedAmount,
		TermMonths:        app.TermMonths,
		InterestRate:      app.InterestRate,
		MonthlyPayment:    app.MonthlyPayment(),
		ApplicationDate:   app.ApplicationDate,
		Status:            app.Status,
		DecisionReason:    app.DecisionReason,
	}
}

func toDTOs(apps []domain.CreditApplication) []dto.ApplicationResponseDTO {
	response := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		response = append(response, toDTO(&apps[i]))
	}
	return response
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAffiliateNotFound), errors.Is(err, domain.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAffiliateNotEligible):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotEvaluable), errors.Is(err, domain.ErrEvaluationConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
