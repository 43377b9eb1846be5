package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/application/orders"
	"github.com/gestorpro/gestorpro-api/internal/infrastructure/pdf"
)

// OrderHandler rotas de pedidos/orçamentos (protegido).
type OrderHandler struct {
	uc     *orders.UseCase
	pdfGen *pdf.OrderGenerator
}

// NewOrderHandler constrói o handler de pedidos.
func NewOrderHandler(uc *orders.UseCase, pdfGen *pdf.OrderGenerator) *OrderHandler {
	return &OrderHandler{uc: uc, pdfGen: pdfGen}
}

// Create godoc
// @Summary      Cadastrar pedido/orçamento
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOrderRequest  true  "dados do pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetWorkspaceID(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos (mais recentes primeiro)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de registros (padrão 50)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(GetWorkspaceID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar pedido com itens e totais
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetWorkspaceID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar pedido (itens substituem o conjunto inteiro)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID do pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "dados do pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetWorkspaceID(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Trocar o status do pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                        true  "ID do pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "novo status"
// @Success      200  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(GetWorkspaceID(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Documento do pedido em PDF
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	order, client, settings, totals, err := h.uc.PrintData(GetWorkspaceID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.pdfGen.Generate(order, client, settings, totals)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="pedido-%s.pdf"`, order.Number))
	return c.Send(doc)
}

// PublicStatus godoc
// @Summary      Acompanhamento público do pedido (link do cliente, sem login)
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  dto.PublicOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/orders/{id} [get]
func (h *OrderHandler) PublicStatus(c *fiber.Ctx) error {
	out, err := h.uc.PublicStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover pedido
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetWorkspaceID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido removido"})
}
