package repository

import "github.com/gestorpro/gestorpro-api/internal/domain/entity"

// WorkspaceRepository porta de persistência de workspaces (tenants).
type WorkspaceRepository interface {
	Create(workspace *entity.Workspace) error
	GetByID(id string) (*entity.Workspace, error)
	GetByAccessKey(accessKey string) (*entity.Workspace, error)
}
