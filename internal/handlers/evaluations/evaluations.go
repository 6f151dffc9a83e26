package evaluations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/dto"
	"github.com/coopcredit/coopcredit/internal/service/evaluationservice"
	"github.com/coopcredit/coopcredit/pkg/utils"
)

//go:generate mockgen -source=evaluations.go -destination=evaluations_mock.go -package=evaluations

type Service interface {
	Evaluate(ctx context.Context, applicationID int) (*evaluationservice.Result, error)
}

type EvaluationHandler struct {
	evaluationService Service
}

func New(evaluationService Service) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
	}
}

// Evaluate godoc
//
//	@Summary		Evaluate a pending credit application
//	@Description	Score the application through the risk bureau (with deterministic fallback) and decide it atomically
//	@Tags			Evaluations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			applicationID	path		int	true	"Application ID"
//	@Success		200				{object}	dto.EvaluationResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid id"
//	@Failure		404				{object}	utils.Response	"Application not found"
//	@Failure		409				{object}	utils.Response	"Application already decided"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/evaluations/{applicationID} [post]
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	applicationID, err := strconv.Atoi(chi.URLParam(r, "applicationID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	result, err := h.evaluationService.Evaluate(r.Context(), applicationID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotEvaluable), errors.Is(err, domain.ErrEvaluationConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toDTO(result))
}

func toDTO(result *evaluationservice.Result) dto.EvaluationResponseDTO {
	app := result.Application
	eval := app.RiskEvaluation

	return dto.EvaluationResponseDTO{
		ApplicationID:        app.ID,
		AffiliateDocument:    app.Affiliate.Document,
		AffiliateName:        app.Affiliate.Name,
		RequestedAmount:      app.RequestedAmount,
		TermMonths:           app.TermMonths,
		MonthlyPayment:       app.MonthlyPayment(),
		Status:               app.Status,
		Approved:             result.Approved,
		DecisionReason:       result.Reason,
		RiskScore:            eval.Score,
		RiskLevel:            string(eval.RiskLevel),
		RiskDetail:           eval.Detail,
		PaymentToIncomeRatio: app.PaymentToIncomeRatio(),
		EvaluatedAt:          eval.EvaluatedAt,
	}
}
