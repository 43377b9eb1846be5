package entity

import "time"

// Client representa um cliente do workspace.
type Client struct {
	ID          string
	WorkspaceID string
	Name        string
	WhatsApp    string
	Email       string
	Doc         string // CPF ou CNPJ
	Address     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
