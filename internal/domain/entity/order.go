package entity

import "github.com/shopspring/decimal"

// Order representa un pedido. StoreID referencia a Store.ID solo de forma
// consultiva: el esquema no valida ni cascadea la referencia.
type Order struct {
	ID              int64
	Name            string
	Date            string // texto libre, la base no lo valida como fecha
	Pickup          bool
	StoreID         int64
	ShippingAddress string
	City            string
	Total           decimal.Decimal
}
