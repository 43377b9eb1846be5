package entity

import "time"

// Settings é a configuração do workspace, consumida pelos documentos
// impressos e pelo agregador financeiro.
//
// StatusesConsideredSale define quais status contam como venda para fins de
// faturamento. Pedidos cancelados ficam SEMPRE fora dos totais, mesmo que
// CANCELED apareça neste conjunto. Conjunto vazio significa que nenhum pedido
// conta como venda (padrão conservador, não é erro).
type Settings struct {
	WorkspaceID string

	CompanyName    string
	CompanyDoc     string // CNPJ/CPF exibido nos documentos
	CompanyAddress string
	CompanyContact string
	LogoURL        string

	QuoteValidityDays int
	QuoteTerms        string

	StatusesConsideredSale []string
	NextOrderNumber        int
	PaymentMethods         []string

	// ClampDiscount limita o desconto ao subtotal dos itens. Desligado por
	// padrão: desconto maior que o subtotal produz receita negativa, que é
	// sinalizada na interface como possível erro de digitação.
	ClampDiscount bool

	UpdatedAt time.Time
}

// DefaultSettings devolve a configuração inicial de um workspace recém-criado.
func DefaultSettings(workspaceID string) *Settings {
	return &Settings{
		WorkspaceID:       workspaceID,
		CompanyName:       "Minha Empresa",
		QuoteValidityDays: 15,
		QuoteTerms:        "Pagamento: 50% na aprovação e 50% na entrega.\nPrazo de entrega a combinar.",
		StatusesConsideredSale: []string{
			StatusDelivered, StatusApproved, StatusReady, StatusInProduction,
		},
		NextOrderNumber: 1,
		PaymentMethods:  []string{"Pix", "Cartão de Crédito (Link)"},
	}
}
