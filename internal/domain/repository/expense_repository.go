package repository

import (
	"time"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
)

// ExpenseRepository porta de persistência de despesas.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	Update(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	ListByWorkspace(workspaceID string, limit, offset int) ([]*entity.Expense, error)
	ListByPeriod(workspaceID string, from, to time.Time) ([]*entity.Expense, error)
	Delete(id string) error
}
