package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOverrideRequest entrada para registrar una unidad no-base en un Item o SKU.
type CreateOverrideRequest struct {
	UnitCode             string          `json:"unit_code" validate:"required,min=1,max=20"`
	Factor               decimal.Decimal `json:"factor" validate:"required"`
	Precision            *int32          `json:"precision" validate:"omitempty,min=0"`
	Description          string          `json:"description"`
	IsDefaultTransaction bool            `json:"is_default_transaction"`
	IsPurchasing         bool            `json:"is_purchasing"`
	IsSales              bool            `json:"is_sales"`
	IsManufacturing      bool            `json:"is_manufacturing"`
}

// UpdateOverrideRequest patch parcial de un override; la clave (owner, unidad) no cambia.
type UpdateOverrideRequest struct {
	Factor               *decimal.Decimal `json:"factor"`
	Precision            *int32           `json:"precision" validate:"omitempty,min=0"`
	Description          *string          `json:"description"`
	IsDefaultTransaction *bool            `json:"is_default_transaction"`
	IsPurchasing         *bool            `json:"is_purchasing"`
	IsSales              *bool            `json:"is_sales"`
	IsManufacturing      *bool            `json:"is_manufacturing"`
	Active               *bool            `json:"active"`
}

// OverrideResponse salida de un override de unidad.
type OverrideResponse struct {
	ID                   string          `json:"id"`
	Scope                string          `json:"scope"`
	OwnerID              string          `json:"owner_id"`
	UnitCode             string          `json:"unit_code"`
	Factor               decimal.Decimal `json:"factor"`
	Precision            int32           `json:"precision"`
	Description          string          `json:"description"`
	IsDefaultTransaction bool            `json:"is_default_transaction"`
	IsPurchasing         bool            `json:"is_purchasing"`
	IsSales              bool            `json:"is_sales"`
	IsManufacturing      bool            `json:"is_manufacturing"`
	Active               bool            `json:"active"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// OverrideListResponse overrides de un propietario, unidad más pequeña primero.
type OverrideListResponse struct {
	OwnerID string             `json:"owner_id"`
	Items   []OverrideResponse `json:"items"`
}
