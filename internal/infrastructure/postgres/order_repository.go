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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação de OrderRepository (usável com pool ou tx).
// Cabeçalho em orders, linhas em order_items com FK ON DELETE CASCADE.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, workspace_id, number, client_id, date, status,
	freight_price, freight_charged_to_customer, discount, discount_type,
	payment_method, notes, external_production_link, tracking_code, tracking_url,
	created_at, updated_at`

// Create persiste o cabeçalho do pedido. Os itens são gravados por CreateItem
// (na mesma transação, via TxRunner).
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.WorkspaceID, order.Number, order.ClientID, order.Date, order.Status,
		order.FreightPrice, order.FreightChargedToCustomer, order.Discount, order.DiscountType,
		order.PaymentMethod, order.Notes, order.ExternalProductionLink, order.TrackingCode, order.TrackingURL,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, name, unit, description, quantity, unit_price, unit_cost,
			pricing_mode, width, height, measure_unit, area_price, finishing_price)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Name, item.Unit, item.Description,
		item.Quantity, item.UnitPrice, item.UnitCost,
		item.PricingMode, item.Width, item.Height, item.MeasureUnit, item.AreaPrice, item.FinishingPrice,
	)
	if err != nil {
		return fmt.Errorf("insert item de pedido: %w", err)
	}
	return nil
}

// Update atualiza o cabeçalho do pedido. Number nunca muda em edição.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET client_id = $2, date = $3, status = $4,
			freight_price = $5, freight_charged_to_customer = $6, discount = $7, discount_type = $8,
			payment_method = $9, notes = $10, external_production_link = $11,
			tracking_code = $12, tracking_url = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.Date, order.Status,
		order.FreightPrice, order.FreightChargedToCustomer, order.Discount, order.DiscountType,
		order.PaymentMethod, order.Notes, order.ExternalProductionLink,
		order.TrackingCode, order.TrackingURL, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// ReplaceItems apaga e regrava todas as linhas do pedido.
func (r *OrderRepo) ReplaceItems(orderID string, items []entity.OrderItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("limpando itens do pedido: %w", err)
	}
	for i := range items {
		items[i].OrderID = orderID
		if err := r.CreateItem(&items[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID busca um pedido por ID, com itens carregados.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.WorkspaceID, &o.Number, &o.ClientID, &o.Date, &o.Status,
		&o.FreightPrice, &o.FreightChargedToCustomer, &o.Discount, &o.DiscountType,
		&o.PaymentMethod, &o.Notes, &o.ExternalProductionLink, &o.TrackingCode, &o.TrackingURL,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}

	itemsByOrder, err := r.loadItems([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]
	return &o, nil
}

// ListByWorkspace lista pedidos do workspace, mais recentes primeiro, com
// itens carregados em uma única consulta adicional.
func (r *OrderRepo) ListByWorkspace(workspaceID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders WHERE workspace_id = $1
		ORDER BY date DESC, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, workspaceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return r.collect(rows)
}

// ListByPeriod devolve os pedidos com data em [from, to], sem paginação.
// Alimenta o agregador mensal, que precisa do mês inteiro de uma vez.
func (r *OrderRepo) ListByPeriod(workspaceID string, from, to time.Time) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders WHERE workspace_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, number`
	rows, err := r.q.Query(context.Background(), query, workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por período: %w", err)
	}
	return r.collect(rows)
}

// Delete remove um pedido; as linhas caem por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}

func (r *OrderRepo) collect(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.WorkspaceID, &o.Number, &o.ClientID, &o.Date, &o.Status,
			&o.FreightPrice, &o.FreightChargedToCustomer, &o.Discount, &o.DiscountType,
			&o.PaymentMethod, &o.Notes, &o.ExternalProductionLink, &o.TrackingCode, &o.TrackingURL,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemsByOrder, err := r.loadItems(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = itemsByOrder[o.ID]
	}
	return list, nil
}

func (r *OrderRepo) loadItems(orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, COALESCE(product_id::text, ''), name, unit, description, quantity, unit_price, unit_cost,
			pricing_mode, width, height, measure_unit, area_price, finishing_price
		FROM order_items WHERE order_id = ANY($1) ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list itens de pedidos: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Unit, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.UnitCost,
			&it.PricingMode, &it.Width, &it.Height, &it.MeasureUnit, &it.AreaPrice, &it.FinishingPrice,
		); err != nil {
			return nil, fmt.Errorf("scan item de pedido: %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}
