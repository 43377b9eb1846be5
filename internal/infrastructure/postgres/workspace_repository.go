package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

var _ repository.WorkspaceRepository = (*WorkspaceRepo)(nil)

// WorkspaceRepo implementação de WorkspaceRepository (usável com pool ou tx).
type WorkspaceRepo struct {
	q Querier
}

// NewWorkspaceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWorkspaceRepository(q Querier) *WorkspaceRepo {
	return &WorkspaceRepo{q: q}
}

// Create persiste um workspace novo.
func (r *WorkspaceRepo) Create(workspace *entity.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, access_key, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		workspace.ID, workspace.Name, workspace.AccessKey, workspace.Status,
		workspace.CreatedAt, workspace.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert workspace: %w", err)
	}
	return nil
}

// GetByID busca um workspace por ID.
func (r *WorkspaceRepo) GetByID(id string) (*entity.Workspace, error) {
	return r.scanOne(`SELECT id, name, access_key, status, created_at, updated_at FROM workspaces WHERE id = $1`, id)
}

// GetByAccessKey busca um workspace pela chave de acesso.
func (r *WorkspaceRepo) GetByAccessKey(accessKey string) (*entity.Workspace, error) {
	return r.scanOne(`SELECT id, name, access_key, status, created_at, updated_at FROM workspaces WHERE access_key = $1`, accessKey)
}

func (r *WorkspaceRepo) scanOne(query string, arg any) (*entity.Workspace, error) {
	var w entity.Workspace
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&w.ID, &w.Name, &w.AccessKey, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return &w, nil
}
