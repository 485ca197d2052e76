package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// DetailRepository define el puerto de persistencia para Detail (DIP).
type DetailRepository interface {
	List() ([]*entity.Detail, error)
	// CreateBatch inserta los detalles en el orden recibido y asigna los ids.
	// Para que el lote sea todo-o-nada debe correr dentro de una transacción
	// (ver el TxRunner de infraestructura).
	CreateBatch(details []*entity.Detail) error
}
