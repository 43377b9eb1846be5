package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

// dateLayout formato de data de dia calendário usado pela API.
const dateLayout = "2006-01-02"

// ExpenseUseCase CRUD de despesas operacionais.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
}

// NewExpenseUseCase injeta o repositório de despesas.
func NewExpenseUseCase(expenses repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

// Create cadastra uma despesa.
func (uc *ExpenseUseCase) Create(workspaceID string, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: valor não pode ser negativo", domain.ErrInvalidInput)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: categoria é obrigatória", domain.ErrInvalidInput)
	}

	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Recurrent:   req.Recurrent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenses.Create(expense); err != nil {
		return nil, fmt.Errorf("criando despesa: %w", err)
	}
	return toExpenseResponse(expense), nil
}

// Update edita uma despesa do workspace.
func (uc *ExpenseUseCase) Update(workspaceID, id string, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: valor não pode ser negativo", domain.ErrInvalidInput)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: categoria é obrigatória", domain.ErrInvalidInput)
	}

	expense.Date = date
	expense.Category = req.Category
	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.Recurrent = req.Recurrent
	expense.UpdatedAt = time.Now()

	if err := uc.expenses.Update(expense); err != nil {
		return nil, fmt.Errorf("atualizando despesa: %w", err)
	}
	return toExpenseResponse(expense), nil
}

// GetByID devolve uma despesa do workspace.
func (uc *ExpenseUseCase) GetByID(workspaceID, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista as despesas do workspace com paginação.
func (uc *ExpenseUseCase) List(workspaceID string, page dto.PageRequest) ([]*dto.ExpenseResponse, error) {
	page.Normalize()
	expenses, err := uc.expenses.ListByWorkspace(workspaceID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando despesas: %w", err)
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Delete remove uma despesa do workspace.
func (uc *ExpenseUseCase) Delete(workspaceID, id string) error {
	if _, err := uc.getOwned(workspaceID, id); err != nil {
		return err
	}
	if err := uc.expenses.Delete(id); err != nil {
		return fmt.Errorf("removendo despesa: %w", err)
	}
	return nil
}

func (uc *ExpenseUseCase) getOwned(workspaceID, id string) (*entity.Expense, error) {
	expense, err := uc.expenses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	return expense, nil
}

// parseDay interpreta uma data de dia calendário (YYYY-MM-DD) em UTC.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: data é obrigatória", domain.ErrInvalidInput)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data inválida %q (esperado YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format(dateLayout),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Recurrent:   e.Recurrent,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
