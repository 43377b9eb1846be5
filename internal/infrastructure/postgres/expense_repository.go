package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementação de ExpenseRepository (usável com pool ou tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste uma despesa nova.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, workspace_id, date, category, description, amount, recurrent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.WorkspaceID, expense.Date, expense.Category,
		expense.Description, expense.Amount, expense.Recurrent, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert despesa: %w", err)
	}
	return nil
}

// Update atualiza uma despesa.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET date = $2, category = $3, description = $4, amount = $5, recurrent = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Date, expense.Category, expense.Description,
		expense.Amount, expense.Recurrent, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update despesa: %w", err)
	}
	return nil
}

// GetByID busca uma despesa por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `
		SELECT id, workspace_id, date, category, description, amount, recurrent, created_at, updated_at
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.WorkspaceID, &e.Date, &e.Category, &e.Description,
		&e.Amount, &e.Recurrent, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get despesa: %w", err)
	}
	return &e, nil
}

// ListByWorkspace lista despesas do workspace, mais recentes primeiro.
func (r *ExpenseRepo) ListByWorkspace(workspaceID string, limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, workspace_id, date, category, description, amount, recurrent, created_at, updated_at
		FROM expenses WHERE workspace_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, workspaceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list despesas: %w", err)
	}
	return collectExpenses(rows)
}

// ListByPeriod devolve as despesas com data em [from, to], sem paginação.
func (r *ExpenseRepo) ListByPeriod(workspaceID string, from, to time.Time) ([]*entity.Expense, error) {
	query := `
		SELECT id, workspace_id, date, category, description, amount, recurrent, created_at, updated_at
		FROM expenses WHERE workspace_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list despesas por período: %w", err)
	}
	return collectExpenses(rows)
}

// Delete remove uma despesa por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete despesa: %w", err)
	}
	return nil
}

func collectExpenses(rows pgx.Rows) ([]*entity.Expense, error) {
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.WorkspaceID, &e.Date, &e.Category, &e.Description,
			&e.Amount, &e.Recurrent, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan despesa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
