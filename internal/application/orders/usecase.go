package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/pricing"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
	"github.com/gestorpro/gestorpro-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// UseCase ciclo de vida de pedidos/orçamentos.
type UseCase struct {
	tx       TxRunner
	orders   repository.OrderRepository
	clients  repository.ClientRepository
	settings repository.SettingsRepository
	log      *logger.Logger
}

// NewUseCase injeta as dependências do caso de uso de pedidos.
func NewUseCase(
	tx TxRunner,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	settings repository.SettingsRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{tx: tx, orders: orders, clients: clients, settings: settings, log: log}
}

// Create cadastra um pedido. O número sequencial do workspace é consumido e o
// pedido gravado (cabeçalho + itens) dentro de uma única transação.
func (uc *UseCase) Create(workspaceID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.StatusQuote
	}
	if !entity.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status desconhecido %q", domain.ErrInvalidStatus, req.Status)
	}
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: cliente é obrigatório", domain.ErrInvalidInput)
	}
	if _, err := uc.ownedClient(workspaceID, req.ClientID); err != nil {
		return nil, err
	}
	if err := validateMoney(req.FreightPrice, req.Discount, req.DiscountType); err != nil {
		return nil, err
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		ClientID:    req.ClientID,
		Date:        date,
		Status:      status,
		Items:       items,

		FreightPrice:             req.FreightPrice,
		FreightChargedToCustomer: req.FreightChargedToCustomer,
		Discount:                 req.Discount,
		DiscountType:             normalizeDiscountType(req.DiscountType),

		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.RunInTx(func(r TxRepos) error {
		n, err := r.Settings.NextOrderNumber(workspaceID)
		if err != nil {
			return fmt.Errorf("consumindo número de pedido: %w", err)
		}
		order.Number = fmt.Sprintf("%04d", n)

		if err := r.Orders.Create(order); err != nil {
			return fmt.Errorf("criando pedido: %w", err)
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := r.Orders.CreateItem(&order.Items[i]); err != nil {
				return fmt.Errorf("criando item do pedido: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("workspace_id", workspaceID).
		Str("order_id", order.ID).
		Str("number", order.Number).
		Msg("pedido criado")

	return uc.respond(workspaceID, order)
}

// Update edita um pedido. Os itens recebidos substituem o conjunto inteiro,
// na mesma transação da atualização do cabeçalho.
func (uc *UseCase) Update(workspaceID, id string, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidStatus(req.Status) {
		return nil, fmt.Errorf("%w: status desconhecido %q", domain.ErrInvalidStatus, req.Status)
	}
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: cliente é obrigatório", domain.ErrInvalidInput)
	}
	if _, err := uc.ownedClient(workspaceID, req.ClientID); err != nil {
		return nil, err
	}
	if err := validateMoney(req.FreightPrice, req.Discount, req.DiscountType); err != nil {
		return nil, err
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}

	order.ClientID = req.ClientID
	order.Date = date
	order.Status = req.Status
	order.Items = items
	order.FreightPrice = req.FreightPrice
	order.FreightChargedToCustomer = req.FreightChargedToCustomer
	order.Discount = req.Discount
	order.DiscountType = normalizeDiscountType(req.DiscountType)
	order.PaymentMethod = req.PaymentMethod
	order.Notes = req.Notes
	order.ExternalProductionLink = req.ExternalProductionLink
	order.TrackingCode = req.TrackingCode
	order.TrackingURL = req.TrackingURL
	order.UpdatedAt = time.Now()

	err = uc.tx.RunInTx(func(r TxRepos) error {
		if err := r.Orders.Update(order); err != nil {
			return fmt.Errorf("atualizando pedido: %w", err)
		}
		if err := r.Orders.ReplaceItems(order.ID, order.Items); err != nil {
			return fmt.Errorf("regravando itens: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.respond(workspaceID, order)
}

// UpdateStatus troca somente o status do pedido. Não há workflow: qualquer
// status válido pode suceder qualquer outro.
func (uc *UseCase) UpdateStatus(workspaceID, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.IsValidStatus(req.Status) {
		return nil, fmt.Errorf("%w: status desconhecido %q", domain.ErrInvalidStatus, req.Status)
	}
	order, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	order.Status = req.Status
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(order); err != nil {
		return nil, fmt.Errorf("atualizando status: %w", err)
	}
	return uc.respond(workspaceID, order)
}

// GetByID devolve um pedido do workspace, com itens e totais calculados.
func (uc *UseCase) GetByID(workspaceID, id string) (*dto.OrderResponse, error) {
	order, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, err
	}
	return uc.respond(workspaceID, order)
}

// PublicStatus monta a visão de acompanhamento do pedido para o link
// compartilhado com o cliente final. Não há autenticação nem escopo de
// workspace: o UUID do pedido é o próprio segredo do link. A resposta carrega
// status, rastreio e itens (nome e quantidade) e nunca valores financeiros.
func (uc *UseCase) PublicStatus(id string) (*dto.PublicOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	clientName := ""
	if client, err := uc.clients.GetByID(order.ClientID); err == nil {
		clientName = client.Name
	}
	firstName := clientName
	if parts := strings.Fields(clientName); len(parts) > 0 {
		firstName = parts[0]
	}

	items := make([]dto.PublicOrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.PublicOrderItemResponse{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
		})
	}

	return &dto.PublicOrderResponse{
		Number:      order.Number,
		Date:        order.Date.Format(dateLayout),
		Status:      order.Status,
		StatusLabel: entity.StatusLabels[order.Status],

		ClientName:      clientName,
		ClientFirstName: firstName,

		TrackingCode: order.TrackingCode,
		TrackingURL:  order.TrackingURL,

		Items: items,
	}, nil
}

// PrintData reúne tudo que o documento impresso precisa: pedido, cliente,
// configurações e totais já calculados pelo motor de preços.
func (uc *UseCase) PrintData(workspaceID, id string) (*entity.Order, *entity.Client, *entity.Settings, pricing.OrderTotals, error) {
	order, err := uc.getOwned(workspaceID, id)
	if err != nil {
		return nil, nil, nil, pricing.OrderTotals{}, err
	}
	client, err := uc.ownedClient(workspaceID, order.ClientID)
	if err != nil {
		return nil, nil, nil, pricing.OrderTotals{}, err
	}
	settings, err := uc.settings.Get(workspaceID)
	if err != nil {
		return nil, nil, nil, pricing.OrderTotals{}, fmt.Errorf("consultando configurações: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultSettings(workspaceID)
	}
	totals := pricing.ComputeOrderTotals(order, pricing.Options{ClampDiscount: settings.ClampDiscount})
	return order, client, settings, totals, nil
}

// List lista os pedidos do workspace, mais recentes primeiro, com totais.
func (uc *UseCase) List(workspaceID string, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.Normalize()
	list, err := uc.orders.ListByWorkspace(workspaceID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listando pedidos: %w", err)
	}
	opts, err := uc.pricingOptions(workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, "", opts))
	}
	return out, nil
}

// Delete remove um pedido (itens caem em cascata no banco).
func (uc *UseCase) Delete(workspaceID, id string) error {
	if _, err := uc.getOwned(workspaceID, id); err != nil {
		return err
	}
	if err := uc.orders.Delete(id); err != nil {
		return fmt.Errorf("removendo pedido: %w", err)
	}
	return nil
}

// ── internos ────────────────────────────────────────────────────────────────

func (uc *UseCase) getOwned(workspaceID, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *UseCase) ownedClient(workspaceID, clientID string) (*entity.Client, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (uc *UseCase) pricingOptions(workspaceID string) (pricing.Options, error) {
	s, err := uc.settings.Get(workspaceID)
	if err != nil {
		return pricing.Options{}, fmt.Errorf("consultando configurações: %w", err)
	}
	if s == nil {
		return pricing.Options{}, nil
	}
	return pricing.Options{ClampDiscount: s.ClampDiscount}, nil
}

func (uc *UseCase) respond(workspaceID string, order *entity.Order) (*dto.OrderResponse, error) {
	opts, err := uc.pricingOptions(workspaceID)
	if err != nil {
		return nil, err
	}
	clientName := ""
	if client, err := uc.clients.GetByID(order.ClientID); err == nil {
		clientName = client.Name
	}
	return toOrderResponse(order, clientName, opts), nil
}

// buildItems valida as linhas e resolve o preço unitário dos itens
// precificados por área. Depois daqui, o motor de cálculo só enxerga
// quantidade, preço e custo.
func buildItems(reqs []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: pedido precisa de pelo menos um item", domain.ErrInvalidInput)
	}
	items := make([]entity.OrderItem, 0, len(reqs))
	for i, r := range reqs {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: item %d sem nome", domain.ErrInvalidInput, i+1)
		}
		if !r.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: item %q com quantidade não positiva", domain.ErrInvalidInput, r.Name)
		}
		if r.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: item %q com custo negativo", domain.ErrInvalidInput, r.Name)
		}

		item := entity.OrderItem{
			ID:          uuid.NewString(),
			ProductID:   r.ProductID,
			Name:        r.Name,
			Unit:        r.Unit,
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			UnitCost:    r.UnitCost,
			PricingMode: r.PricingMode,
		}

		if r.PricingMode == entity.PricingArea {
			price, err := pricing.ResolveAreaUnitPrice(r.Width, r.Height, r.MeasureUnit, r.AreaPrice, r.FinishingPrice)
			if err != nil {
				return nil, fmt.Errorf("%w: item %q: %v", domain.ErrInvalidInput, r.Name, err)
			}
			item.UnitPrice = price
			item.Width = r.Width
			item.Height = r.Height
			item.MeasureUnit = r.MeasureUnit
			item.AreaPrice = r.AreaPrice
			item.FinishingPrice = r.FinishingPrice
		}

		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %q com preço negativo", domain.ErrInvalidInput, r.Name)
		}
		items = append(items, item)
	}
	return items, nil
}

func validateMoney(freight, discount decimal.Decimal, discountType string) error {
	if freight.IsNegative() {
		return fmt.Errorf("%w: frete não pode ser negativo", domain.ErrInvalidInput)
	}
	if discount.IsNegative() {
		return fmt.Errorf("%w: desconto não pode ser negativo", domain.ErrInvalidInput)
	}
	switch discountType {
	case "", entity.DiscountMoney, entity.DiscountPercentage:
		return nil
	}
	return fmt.Errorf("%w: tipo de desconto desconhecido %q", domain.ErrInvalidInput, discountType)
}

func normalizeDiscountType(t string) string {
	if t == "" {
		return entity.DiscountMoney
	}
	return t
}

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

func toOrderResponse(o *entity.Order, clientName string, opts pricing.Options) *dto.OrderResponse {
	totals := pricing.ComputeOrderTotals(o, opts)

	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Name:        it.Name,
			Unit:        it.Unit,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Total:       it.UnitPrice.Mul(it.Quantity),

			PricingMode:    it.PricingMode,
			Width:          it.Width,
			Height:         it.Height,
			MeasureUnit:    it.MeasureUnit,
			AreaPrice:      it.AreaPrice,
			FinishingPrice: it.FinishingPrice,
		})
	}

	return &dto.OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		ClientID:    o.ClientID,
		ClientName:  clientName,
		Date:        o.Date.Format(dateLayout),
		Status:      o.Status,
		StatusLabel: entity.StatusLabels[o.Status],
		Items:       items,

		FreightPrice:             o.FreightPrice,
		FreightChargedToCustomer: o.FreightChargedToCustomer,
		Discount:                 o.Discount,
		DiscountType:             o.DiscountType,

		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,

		ExternalProductionLink: o.ExternalProductionLink,
		TrackingCode:           o.TrackingCode,
		TrackingURL:            o.TrackingURL,

		Totals: dto.OrderTotalsResponse{
			Subtotal:      totals.Subtotal,
			DiscountValue: totals.DiscountValue,
			FreightPrice:  o.FreightPrice,
			Total:         totals.TotalRevenue,
			TotalCost:     totals.TotalCost,
			Profit:        totals.Profit,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
