package dto

import "time"

// CreateClientRequest cadastro de cliente.
type CreateClientRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Doc      string `json:"doc"` // CPF ou CNPJ
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// UpdateClientRequest edição de cliente (substituição completa dos campos).
type UpdateClientRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Doc      string `json:"doc"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// ClientResponse representação de cliente na API.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WhatsApp  string    `json:"whatsapp"`
	Email     string    `json:"email"`
	Doc       string    `json:"doc"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
