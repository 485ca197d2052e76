package entity

import "github.com/shopspring/decimal"

// Detail es un renglón de un pedido: referencia un Order y un Product por id.
// Las referencias son consultivas; un id colgante es representable.
type Detail struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Subtotal  decimal.Decimal
}
