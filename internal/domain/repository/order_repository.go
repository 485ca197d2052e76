package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	List() ([]*entity.Order, error)
	Create(order *entity.Order) error
}
