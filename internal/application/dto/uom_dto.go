package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUOMRequest entrada para dar de alta una unidad en el catálogo.
type CreateUOMRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=20"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	ClassCode   string `json:"class_code" validate:"required"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateUOMRequest patch parcial de una unidad; el código no cambia.
type UpdateUOMRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	Active      *bool   `json:"active"`
}

// UOMResponse salida de una unidad del catálogo.
type UOMResponse struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ClassCode   string    `json:"class_code"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UOMListResponse catálogo completo ordenado por sort_order.
type UOMListResponse struct {
	Items []UOMResponse `json:"items"`
}

// UOMClassResponse clase de magnitud.
type UOMClassResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ClassBaseResponse resultado de llevar una cantidad a la base de su clase.
type ClassBaseResponse struct {
	UnitCode  string          `json:"unit_code"`
	ClassCode string          `json:"class_code"`
	Quantity  decimal.Decimal `json:"quantity"`
	BaseValue decimal.Decimal `json:"base_value"`
}
