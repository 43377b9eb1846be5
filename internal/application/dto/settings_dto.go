package dto

import "time"

// UpdateSettingsRequest grava a configuração do workspace. Campos nil mantêm
// o valor atual (atualização parcial).
type UpdateSettingsRequest struct {
	CompanyName    *string `json:"company_name"`
	CompanyDoc     *string `json:"company_doc"`
	CompanyAddress *string `json:"company_address"`
	CompanyContact *string `json:"company_contact"`
	LogoURL        *string `json:"logo_url"`

	QuoteValidityDays *int    `json:"quote_validity_days"`
	QuoteTerms        *string `json:"quote_terms"`

	StatusesConsideredSale *[]string `json:"statuses_considered_sale"`
	PaymentMethods         *[]string `json:"payment_methods"`
	ClampDiscount          *bool     `json:"clamp_discount"`
}

// SettingsResponse representação da configuração na API.
type SettingsResponse struct {
	CompanyName    string `json:"company_name"`
	CompanyDoc     string `json:"company_doc"`
	CompanyAddress string `json:"company_address"`
	CompanyContact string `json:"company_contact"`
	LogoURL        string `json:"logo_url"`

	QuoteValidityDays int    `json:"quote_validity_days"`
	QuoteTerms        string `json:"quote_terms"`

	StatusesConsideredSale []string `json:"statuses_considered_sale"`
	NextOrderNumber        int      `json:"next_order_number"`
	PaymentMethods         []string `json:"payment_methods"`
	ClampDiscount          bool     `json:"clamp_discount"`

	UpdatedAt time.Time `json:"updated_at"`
}
