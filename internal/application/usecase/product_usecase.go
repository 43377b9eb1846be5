package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

// ProductUseCase CRUD do catálogo de produtos.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase injeta o repositório de produtos.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create cadastra um produto no catálogo.
func (uc *ProductUseCase) Create(workspaceID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(req.Name, req.Price, req.Cost); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Code:        req.Code,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Unit:        req.Unit,
		Price:       req.Price,
		Cost:        req.Cost,
		Active:      active,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, fmt.Errorf("criando produto: %w", err)
	}
	return toProductResponse(product), nil
}

// Update edita um produto do catálogo. A cópia de preço/custo já gravada nas
// linhas de pedidos existentes não é tocada.
func (uc *ProductUseCase) Update(workspaceID, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(req.Name, req.Price, req.Cost); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Code = req.Code
	product.ImageURL = req.ImageURL
	product.Description = req.Description
	product.Unit = req.Unit
	product.Price = req.Price
	product.Cost = req.Cost
	if req.Active != nil {
		product.Active = *req.Active
	}
	product.Category = req.Category
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(product); err != nil {
		return nil, fmt.Errorf("atualizando produto: %w", err)
	}
	return toProductResponse(product), nil
}

// GetByID devolve um produto do workspace.
func (uc *ProductUseCase) GetByID(workspaceID, id string) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista os produtos do workspace com paginação.
func (uc *ProductUseCase) List(workspaceID string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.Normalize()
	products, err := uc.products.ListByWorkspace(workspaceID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando produtos: %w", err)
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete remove um produto do catálogo. Linhas de pedido que o referenciam
// permanecem intactas (guardam a própria cópia de nome e valores).
func (uc *ProductUseCase) Delete(workspaceID, id string) error {
	if _, err := uc.getOwned(workspaceID, id); err != nil {
		return err
	}
	if err := uc.products.Delete(id); err != nil {
		return fmt.Errorf("removendo produto: %w", err)
	}
	return nil
}

func (uc *ProductUseCase) getOwned(workspaceID, id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func validateProduct(name string, price, cost decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}
	if price.IsNegative() || cost.IsNegative() {
		return fmt.Errorf("%w: preço e custo não podem ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Unit:        p.Unit,
		Price:       p.Price,
		Cost:        p.Cost,
		Active:      p.Active,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
