package repository

import (
	"time"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
)

// OrderRepository porta de persistência de pedidos (cabeçalho + itens).
// GetByID e as listagens devolvem o pedido já com os itens carregados.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	Update(order *entity.Order) error
	// ReplaceItems substitui todas as linhas do pedido (edição regrava o
	// conjunto inteiro, como no formulário).
	ReplaceItems(orderID string, items []entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ListByWorkspace(workspaceID string, limit, offset int) ([]*entity.Order, error)
	// ListByPeriod devolve os pedidos com data em [from, to] (datas de dia
	// calendário, inclusivas), sem paginação — uso do agregador mensal.
	ListByPeriod(workspaceID string, from, to time.Time) ([]*entity.Order, error)
	Delete(id string) error
}
