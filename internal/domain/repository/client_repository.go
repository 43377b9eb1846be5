package repository

import "github.com/gestorpro/gestorpro-api/internal/domain/entity"

// ClientRepository porta de persistência de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListByWorkspace(workspaceID string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
