package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type EvaluationResponseDTO struct {
	ApplicationID        int             `json:"applicationId" example:"1"`
	AffiliateDocument    string          `json:"affiliateDocument" example:"1030657890"`
	AffiliateName        string          `json:"affiliateName" example:"Maria Rodriguez"`
	RequestedAmount      decimal.Decimal `json:"requestedAmount" example:"5000000"`
	TermMonths           int             `json:"termMonths" example:"36"`
	MonthlyPayment       decimal.Decimal `json:"monthlyPayment" example:"167269.09"`
	Status               string          `json:"status" example:"APPROVED"`
	Approved             bool            `json:"approved" example:"true"`
	DecisionReason       string          `json:"decisionReason"`
	RiskScore            int             `json:"riskScore" example:"720"`
	RiskLevel            string          `json:"riskLevel" example:"LOW"`
	RiskDetail           string          `json:"riskDetail,omitempty"`
	PaymentToIncomeRatio decimal.Decimal `json:"paymentToIncomeRatio" example:"0.0478"`
	EvaluatedAt          time.Time       `json:"evaluatedAt" example:"2024-03-01T10:00:05Z"`
}
