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

// ClientUseCase CRUD de clientes do workspace.
type ClientUseCase struct {
	clients repository.ClientRepository
}

// NewClientUseCase injeta o repositório de clientes.
func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

// Create cadastra um cliente no workspace.
func (uc *ClientUseCase) Create(workspaceID string, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}

	now := time.Now()
	client := &entity.Client{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		WhatsApp:    req.WhatsApp,
		Email:       req.Email,
		Doc:         req.Doc,
		Address:     req.Address,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, fmt.Errorf("criando cliente: %w", err)
	}
	return toClientResponse(client), nil
}

// Update edita um cliente do workspace.
func (uc *ClientUseCase) Update(workspaceID, id string, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}

	client.Name = req.Name
	client.WhatsApp = req.WhatsApp
	client.Email = req.Email
	client.Doc = req.Doc
	client.Address = req.Address
	client.Notes = req.Notes
	client.UpdatedAt = time.Now()

	if err := uc.clients.Update(client); err != nil {
		return nil, fmt.Errorf("atualizando cliente: %w", err)
	}
	return toClientResponse(client), nil
}

// GetByID devolve um cliente do workspace.
func (uc *ClientUseCase) GetByID(workspaceID, id string) (*dto.ClientResponse, error) {
	client, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista os clientes do workspace com paginação.
func (uc *ClientUseCase) List(workspaceID string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.Normalize()
	clients, err := uc.clients.ListByWorkspace(workspaceID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando clientes: %w", err)
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Delete remove um cliente do workspace.
func (uc *ClientUseCase) Delete(workspaceID, id string) error {
	if _, err := uc.getOwned(workspaceID, id); err != nil {
		return err
	}
	if err := uc.clients.Delete(id); err != nil {
		return fmt.Errorf("removendo cliente: %w", err)
	}
	return nil
}

// getOwned carrega o cliente garantindo o escopo de workspace. Registro de
// outro tenant responde como inexistente, nunca como proibido.
func (uc *ClientUseCase) getOwned(workspaceID, id string) (*entity.Client, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		WhatsApp:  c.WhatsApp,
		Email:     c.Email,
		Doc:       c.Doc,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
