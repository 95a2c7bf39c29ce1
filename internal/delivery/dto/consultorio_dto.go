package dto

import "github.com/shopspring/decimal"

// Request DTOs

type ConsultorioInput struct {
	ID     int             `json:"id" validate:"required,min=1"`
	Name   string          `json:"name" validate:"required,max=100"`
	Active bool            `json:"active"`
	Fee    decimal.Decimal `json:"fee"`
}

type UpdateConsultoriosRequest struct {
	Consultorios []ConsultorioInput `json:"consultorios" validate:"required,min=1,dive"`
}

// Response DTOs

type ConsultorioResponse struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Active bool            `json:"active"`
	Fee    decimal.Decimal `json:"fee"`
}

type ConsultorioListResponse struct {
	Consultorios []ConsultorioResponse `json:"consultorios"`
	Total        int                   `json:"total"`
}
