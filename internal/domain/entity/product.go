package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item do catálogo. Price e Cost são sugeridos ao montar
// um pedido; a linha do pedido guarda a própria cópia e não acompanha
// alterações posteriores do catálogo.
type Product struct {
	ID          string
	WorkspaceID string
	Name        string
	Code        string // código interno / SKU (opcional)
	ImageURL    string
	Description string
	Unit        string // UN, M2, KG...
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Active      bool
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
