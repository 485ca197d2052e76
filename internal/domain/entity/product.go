package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Price se persiste como NUMERIC; toda lectura lo entrega ya como decimal
// (nunca como texto) gracias al codec registrado en el pool.
type Product struct {
	ID          int64 // asignado por la base (BIGSERIAL), inmutable
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       int
}
