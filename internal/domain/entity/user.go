package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

// User representa um usuário do sistema (pertence a um Workspace).
type User struct {
	ID           string
	WorkspaceID  string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro após persistir
	Name         string
	Role         string // admin, operador
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
