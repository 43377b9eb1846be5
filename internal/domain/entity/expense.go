package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategories sugestões de categoria exibidas no cadastro.
// A categoria é texto livre; esta lista não restringe o valor gravado.
var ExpenseCategories = []string{
	"Tráfego Pago", "Internet/Tel", "Embalagem", "Fornecedor",
	"Aluguel", "Impostos", "Outros",
}

// Expense é uma despesa operacional do workspace.
// Recurrent é apenas informativo: nunca gera lançamentos automáticos.
type Expense struct {
	ID          string
	WorkspaceID string
	Date        time.Time // dia calendário
	Category    string
	Description string
	Amount      decimal.Decimal // >= 0
	Recurrent   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
