package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.DetailRepository = (*DetailRepo)(nil)

// DetailRepo implementación del puerto DetailRepository sobre PostgreSQL
// (usable con pool o tx).
type DetailRepo struct {
	q Querier
}

// NewDetailRepository construye el adaptador de persistencia para detalles.
// Pasar pool o tx (Querier).
func NewDetailRepository(q Querier) *DetailRepo {
	return &DetailRepo{q: q}
}

// List devuelve todos los renglones ordenados por id ascendente.
func (r *DetailRepo) List() ([]*entity.Detail, error) {
	query := `
		SELECT id, order_id, product_id, quantity, subtotal
		FROM order_details ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list details: %w", err)
	}
	defer rows.Close()
	var list []*entity.Detail
	for rows.Next() {
		var d entity.Detail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CreateBatch inserta los renglones en el orden recibido y asigna a cada uno
// el id devuelto por la base. Se envía como un solo batch de pgx; para que el
// lote sea todo-o-nada debe correr dentro de una transacción (TxRunner).
func (r *DetailRepo) CreateBatch(details []*entity.Detail) error {
	if len(details) == 0 {
		return nil
	}
	query := `
		INSERT INTO order_details (order_id, product_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	batch := &pgx.Batch{}
	for _, d := range details {
		batch.Queue(query, d.OrderID, d.ProductID, d.Quantity, d.Subtotal)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for idx, d := range details {
		if err := results.QueryRow().Scan(&d.ID); err != nil {
			if isDataViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert detail %d: %w", idx, err)
		}
	}
	return nil
}
