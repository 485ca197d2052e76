package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// store_id es una referencia consultiva: el esquema no declara la FK.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// List devuelve todos los pedidos ordenados por id ascendente.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `
		SELECT id, name, date, pickup, store_id, shipping_address, city, total
		FROM orders ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Date, &o.Pickup, &o.StoreID,
			&o.ShippingAddress, &o.City, &o.Total); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Create persiste un nuevo pedido; el id lo asigna la base.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (name, date, pickup, store_id, shipping_address, city, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.Name, order.Date, order.Pickup, order.StoreID,
		order.ShippingAddress, order.City, order.Total,
	).Scan(&order.ID)
	if err != nil {
		if isDataViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
