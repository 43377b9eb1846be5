package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um pedido. Enumeração plana: qualquer status pode
// suceder qualquer outro (não há workflow com transições obrigatórias).
const (
	StatusDraft        = "DRAFT"         // Rascunho
	StatusQuote        = "QUOTE"         // Orçamento
	StatusApproved     = "APPROVED"      // Aprovado
	StatusInProduction = "IN_PRODUCTION" // Em Produção
	StatusReady        = "READY"         // Pronto
	StatusDelivered    = "DELIVERED"     // Entregue
	StatusCanceled     = "CANCELED"      // Cancelado
)

// AllStatuses lista os status válidos, na ordem do fluxo típico.
var AllStatuses = []string{
	StatusDraft, StatusQuote, StatusApproved, StatusInProduction,
	StatusReady, StatusDelivered, StatusCanceled,
}

// StatusLabels rótulos pt-BR para exibição (PDFs e listagens).
var StatusLabels = map[string]string{
	StatusDraft:        "Rascunho",
	StatusQuote:        "Orçamento",
	StatusApproved:     "Aprovado",
	StatusInProduction: "Em Produção",
	StatusReady:        "Pronto",
	StatusDelivered:    "Entregue",
	StatusCanceled:     "Cancelado",
}

// IsValidStatus verifica se s é um status conhecido.
func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Tipos de desconto de um pedido.
const (
	DiscountMoney      = "money"      // valor absoluto em R$
	DiscountPercentage = "percentage" // percentual 0..100 sobre o subtotal dos itens
)

// Modos de precificação de um item.
const (
	PricingUnit = "unit" // preço unitário informado diretamente
	PricingArea = "area" // preço derivado de largura x altura (m²) no cadastro
)

// OrderItem é uma linha do pedido. UnitPrice já chega resolvido: quando o
// modo é "area", a derivação por m² acontece uma única vez no cadastro do
// item (ver pricing.ResolveAreaUnitPrice); os campos de área ficam guardados
// apenas como memória de cálculo.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string // vazio para item avulso
	Name        string
	Unit        string // unidade de exibição (UN, KG, M2...)
	Description string
	Quantity    decimal.Decimal // > 0, fracionário permitido
	UnitPrice   decimal.Decimal // preço de venda unitário final
	UnitCost    decimal.Decimal // custo unitário

	PricingMode    string          // unit | area (vazio = unit)
	Width          decimal.Decimal // na unidade de MeasureUnit
	Height         decimal.Decimal
	MeasureUnit    string          // mm | cm | m
	AreaPrice      decimal.Decimal // preço do m²
	FinishingPrice decimal.Decimal // acabamento (acréscimo fixo por unidade)
}

// Order é a raiz do agregado de pedidos/orçamentos.
//
// Frete: FreightChargedToCustomer define de forma exclusiva o tratamento —
// cobrado do cliente vira receita (somada após o desconto), não cobrado vira
// custo. Desconto percentual incide somente sobre o subtotal dos itens, nunca
// sobre o frete.
type Order struct {
	ID          string
	WorkspaceID string
	Number      string // sequencial por workspace, formatado com 4 dígitos ("0042")
	ClientID    string
	Date        time.Time // dia calendário, sem componente de hora
	Status      string
	Items       []OrderItem

	FreightPrice             decimal.Decimal // custo real do frete, >= 0
	FreightChargedToCustomer bool
	Discount                 decimal.Decimal // >= 0; interpretação depende de DiscountType
	DiscountType             string          // money | percentage

	PaymentMethod string
	Notes         string

	// Metadados pós-criação, sem papel em nenhum cálculo.
	ExternalProductionLink string
	TrackingCode           string
	TrackingURL            string

	CreatedAt time.Time
	UpdatedAt time.Time
}
