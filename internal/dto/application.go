package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateApplicationRequestDTO struct {
	AffiliateID     int             `json:"affiliateId" example:"1"`
	RequestedAmount decimal.Decimal `json:"requestedAmount" example:"5000000"`
	TermMonths      int             `json:"termMonths" example:"36"`
	InterestRate    decimal.Decimal `json:"interestRate" example:"12.5"`
}

type ApplicationResponseDTO struct {
	ID                int             `json:"id" example:"1"`
	AffiliateID       int             `json:"affiliateId" example:"1"`
	AffiliateDocument string          `json:"affiliateDocument" example:"1030657890"`
	AffiliateName     string          `json:"affiliateName" example:"Maria Rodriguez"`
	RequestedAmount   decimal.Decimal `json:"requestedAmount" example:"5000000"`
	TermMonths        int             `json:"termMonths" example:"36"`
	InterestRate      decimal.Decimal `json:"interestRate" example:"12.5"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment" example:"167269.09"`
	ApplicationDate   time.Time       `json:"applicationDate" example:"2024-03-01T10:00:00Z"`
	Status            string          `json:"status" example:"PENDING"`
	DecisionReason    string          `json:"decisionReason,omitempty"`
}
