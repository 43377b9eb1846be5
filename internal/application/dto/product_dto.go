package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cadastro de item do catálogo.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Active      *bool           `json:"active"` // nil = ativo
	Category    string          `json:"category"`
}

// UpdateProductRequest edição de item do catálogo.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Active      *bool           `json:"active"`
	Category    string          `json:"category"`
}

// ProductResponse representação de produto na API.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Active      bool            `json:"active"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
