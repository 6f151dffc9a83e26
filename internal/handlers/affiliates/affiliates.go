package affiliates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/dto"
	"github.com/coopcredit/coopcredit/pkg/utils"
)

//go:generate mockgen -source=affiliates.go -destination=affiliates_mock.go -package=affiliates

const dateLayout = "2006-01-02"

type Service interface {
	Register(ctx context.Context, document, name string, salary decimal.Decimal, affiliationDate time.Time, status string) (*domain.Affiliate, error)
	Get(ctx context.Context, id int) (*domain.Affiliate, error)
	GetByDocument(ctx context.Context, document string) (*domain.Affiliate, error)
	List(ctx context.Context) ([]domain.Affiliate, error)
	Update(ctx context.Context, id int, name string, salary decimal.Decimal, status string) (*domain.Affiliate, error)
	Delete(ctx context.Context, id int) error
}

type AffiliateHandler struct {
	affiliateService Service
}

func New(affiliateService Service) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService: affiliateService,
	}
}

// Register godoc
//
//	@Summary		Register an affiliate
//	@Description	Register a new cooperative member eligible to apply for credit
//	@Tags			Affiliates
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.RegisterAffiliateRequestDTO	true	"Affiliate data"
//	@Success		201		{object}	dto.AffiliateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Document already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates [post]
func (h *AffiliateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAffiliateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var affiliationDate time.Time
	if req.AffiliationDate != "" {
		parsed, err := time.Parse(dateLayout, req.AffiliationDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid affiliation date, expected YYYY-MM-DD")
			return
		}
		affiliationDate = parsed
	}

	affiliate, err := h.affiliateService.Register(r.Context(), req.Document, req.Name, req.Salary, affiliationDate, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(affiliate))
}

// Get godoc
//
//	@Summary		Get an affiliate by id
//	@Tags			Affiliates
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Affiliate ID"
//	@Success		200	{object}	dto.AffiliateResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Affiliate not found"
//	@Router			/api/affiliates/{id} [get]
func (h *AffiliateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid affiliate id")
		return
	}
	affiliate, err := h.affiliateService.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(affiliate))
}

// GetByDocument godoc
//
//	@Summary		Get an affiliate by document
//	@Tags			Affiliates
//	@Produce		json
//	@Security		BearerAuth
//	@Param			document	path		string	true	"Affiliate document"
//	@Success		200			{object}	dto.AffiliateResponseDTO
//	@Failure		404			{object}	utils.Response	"Affiliate not found"
//	@Router			/api/affiliates/document/{document} [get]
func (h *AffiliateHandler) GetByDocument(w http.ResponseWriter, r *http.Request) {
	document := chi.URLParam(r, "document")
	affiliate, err := h.affiliateService.GetByDocument(r.Context(), document)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(affiliate))
}

// List godoc
//
//	@Summary		List all affiliates
//	@Tags			Affiliates
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AffiliateResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates [get]
func (h *AffiliateHandler) List(w http.ResponseWriter, r *http.Request) {
	affiliates, err := h.affiliateService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.AffiliateResponseDTO, 0, len(affiliates))
	for i := range affiliates {
		response = append(response, toDTO(&affiliates[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Update godoc
//
//	@Summary		Update an affiliate
//	@Description	Replace the mutable attributes of an affiliate; the document is immutable
//	@Tags			Affiliates
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Affiliate ID"
//	@Param			request	body		dto.UpdateAffiliateRequestDTO	true	"Affiliate data"
//	@Success		200		{object}	dto.AffiliateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Router			/api/affiliates/{id} [put]
func (h *AffiliateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid affiliate id")
		return
	}
	var req dto.UpdateAffiliateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	affiliate, err := h.affiliateService.Update(r.Context(), id, req.Name, req.Salary, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(affiliate))
}

// Delete godoc
//
//	@Summary		Delete an affiliate
//	@Tags			Affiliates
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Affiliate ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Affiliate not found"
//	@Router			/api/affiliates/{id} [delete]
func (h *AffiliateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid affiliate id")
		return
	}
	if err := h.affiliateService.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func toDTO(a *domain.Affiliate) dto.AffiliateResponseDTO {
	return dto.AffiliateResponseDTO{
		ID:              a.ID,
		Document:        a.Document,
		Name:            a.Name,
		Salary:          a.Salary,
		AffiliationDate: a.AffiliationDate.Format(dateLayout),
		Status:          a.Status,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAffiliateNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDocumentTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
