package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// List devuelve todas las tiendas ordenadas por id ascendente.
func (r *StoreRepo) List() ([]*entity.Store, error) {
	query := `
		SELECT id, name, address, city, opening_hours
		FROM stores ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.City, &s.OpeningHours); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create persiste una nueva tienda; el id lo asigna la base.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (name, address, city, opening_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		store.Name, store.Address, store.City, store.OpeningHours,
	).Scan(&store.ID)
	if err != nil {
		if isDataViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}
