package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest cadastro de despesa.
type CreateExpenseRequest struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Recurrent   bool            `json:"recurrent"`
}

// UpdateExpenseRequest edição de despesa.
type UpdateExpenseRequest struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Recurrent   bool            `json:"recurrent"`
}

// ExpenseResponse representação de despesa na API.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Recurrent   bool            `json:"recurrent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
