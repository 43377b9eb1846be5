package repository

import "github.com/gestorpro/gestorpro-api/internal/domain/entity"

// ProductRepository porta de persistência do catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByWorkspace(workspaceID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
