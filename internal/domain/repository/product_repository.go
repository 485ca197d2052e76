package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve todos los productos, ascendente por id.
	List() ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si el id no existe.
	GetByID(id int64) (*entity.Product, error)
	// Create persiste el producto y asigna product.ID.
	Create(product *entity.Product) error
	// DecrementStock descuenta quantity en una sola sentencia condicionada a
	// que la fila exista. Devuelve true si afectó exactamente una fila.
	DecrementStock(id int64, quantity int) (bool, error)
}
