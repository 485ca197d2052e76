package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos ordenados por id ascendente.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, description, stock
		FROM products ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, price, description, stock
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto; el id lo asigna la base (BIGSERIAL).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, description, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Price, product.Description, product.Stock,
	).Scan(&product.ID)
	if err != nil {
		if isDataViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// DecrementStock descuenta stock en una sola sentencia condicionada a que la
// fila exista; el row-locking del servidor serializa descuentos concurrentes
// sobre el mismo producto. No impide que el stock quede negativo.
func (r *ProductRepo) DecrementStock(id int64, quantity int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}
