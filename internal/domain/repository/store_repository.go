package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	List() ([]*entity.Store, error)
	Create(store *entity.Store) error
}
