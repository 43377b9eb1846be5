package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest linha de pedido recebida no cadastro/edição.
// Com pricing_mode "area" o preço unitário é derivado de largura x altura e
// preço do m² no momento do cadastro; com "unit" (ou vazio) vale unit_price.
type OrderItemRequest struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`

	PricingMode    string          `json:"pricing_mode"` // unit | area
	Width          decimal.Decimal `json:"width"`
	Height         decimal.Decimal `json:"height"`
	MeasureUnit    string          `json:"measure_unit"` // mm | cm | m
	AreaPrice      decimal.Decimal `json:"area_price"`
	FinishingPrice decimal.Decimal `json:"finishing_price"`
}

// CreateOrderRequest cadastro de pedido/orçamento.
type CreateOrderRequest struct {
	ClientID string             `json:"client_id"`
	Date     string             `json:"date"` // YYYY-MM-DD
	Status   string             `json:"status"`
	Items    []OrderItemRequest `json:"items"`

	FreightPrice             decimal.Decimal `json:"freight_price"`
	FreightChargedToCustomer bool            `json:"freight_charged_to_customer"`
	Discount                 decimal.Decimal `json:"discount"`
	DiscountType             string          `json:"discount_type"` // money | percentage

	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

// UpdateOrderRequest edição de pedido. Os itens substituem o conjunto inteiro.
type UpdateOrderRequest struct {
	ClientID string             `json:"client_id"`
	Date     string             `json:"date"`
	Status   string             `json:"status"`
	Items    []OrderItemRequest `json:"items"`

	FreightPrice             decimal.Decimal `json:"freight_price"`
	FreightChargedToCustomer bool            `json:"freight_charged_to_customer"`
	Discount                 decimal.Decimal `json:"discount"`
	DiscountType             string          `json:"discount_type"`

	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`

	ExternalProductionLink string `json:"external_production_link"`
	TrackingCode           string `json:"tracking_code"`
	TrackingURL            string `json:"tracking_url"`
}

// OrderItemResponse linha de pedido na API.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Total       decimal.Decimal `json:"total"` // quantity * unit_price

	PricingMode    string          `json:"pricing_mode,omitempty"`
	Width          decimal.Decimal `json:"width,omitempty"`
	Height         decimal.Decimal `json:"height,omitempty"`
	MeasureUnit    string          `json:"measure_unit,omitempty"`
	AreaPrice      decimal.Decimal `json:"area_price,omitempty"`
	FinishingPrice decimal.Decimal `json:"finishing_price,omitempty"`
}

// OrderTotalsResponse totais derivados do pedido. Nunca são persistidos:
// o servidor recalcula a partir das linhas a cada leitura.
type OrderTotalsResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	FreightPrice  decimal.Decimal `json:"freight_price"`
	Total         decimal.Decimal `json:"total"` // receita: subtotal - desconto (+ frete se cobrado)
	TotalCost     decimal.Decimal `json:"total_cost"`
	Profit        decimal.Decimal `json:"profit"`
}

// OrderResponse representação completa do pedido na API.
type OrderResponse struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	ClientID    string              `json:"client_id"`
	ClientName  string              `json:"client_name,omitempty"`
	Date        string              `json:"date"` // YYYY-MM-DD
	Status      string              `json:"status"`
	StatusLabel string              `json:"status_label"`
	Items       []OrderItemResponse `json:"items"`

	FreightPrice             decimal.Decimal `json:"freight_price"`
	FreightChargedToCustomer bool            `json:"freight_charged_to_customer"`
	Discount                 decimal.Decimal `json:"discount"`
	DiscountType             string          `json:"discount_type"`

	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`

	ExternalProductionLink string `json:"external_production_link,omitempty"`
	TrackingCode           string `json:"tracking_code,omitempty"`
	TrackingURL            string `json:"tracking_url,omitempty"`

	Totals OrderTotalsResponse `json:"totals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateOrderStatusRequest troca apenas o status do pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// PublicOrderItemResponse linha do pedido na área pública: somente o que o
// cliente final precisa conferir (o que é, quanto).
type PublicOrderItemResponse struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// PublicOrderResponse é a visão do pedido na área pública de acompanhamento
// (link compartilhado com o cliente, sem login). Nenhum valor financeiro sai
// por aqui: preço, custo e desconto são assunto do workspace, não do link.
type PublicOrderResponse struct {
	Number      string `json:"number"`
	Date        string `json:"date"` // YYYY-MM-DD
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`

	ClientName      string `json:"client_name"`
	ClientFirstName string `json:"client_first_name"`

	TrackingCode string `json:"tracking_code,omitempty"`
	TrackingURL  string `json:"tracking_url,omitempty"`

	Items []PublicOrderItemResponse `json:"items"`
}
