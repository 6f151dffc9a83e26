package dto

import "github.com/shopspring/decimal"

type RegisterAffiliateRequestDTO struct {
	Document        string          `json:"document" example:"1030657890"`
	Name            string          `json:"name" example:"Maria Rodriguez"`
	Salary          decimal.Decimal `json:"salary" example:"3500000"`
	AffiliationDate string          `json:"affiliationDate,omitempty" example:"2023-01-15"`
	Status          string          `json:"status,omitempty" example:"ACTIVE"`
}

type UpdateAffiliateRequestDTO struct {
	Name   string          `json:"name" example:"Maria Rodriguez"`
	Salary decimal.Decimal `json:"salary" example:"3800000"`
	Status string          `json:"status" example:"ACTIVE"`
}

type AffiliateResponseDTO struct {
	ID              int             `json:"id" example:"1"`
	Document        string          `json:"document" example:"1030657890"`
	Name            string          `json:"name" example:"Maria Rodriguez"`
	Salary          decimal.Decimal `json:"salary" example:"3500000"`
	AffiliationDate string          `json:"affiliationDate" example:"2023-01-15"`
	Status          string          `json:"status" example:"ACTIVE"`
}
