package dto

// CreateDetailRequest un renglón del lote de detalles de un pedido.
type CreateDetailRequest struct {
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// DetailResponse salida de un renglón. Subtotal viaja como número.
type DetailResponse struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
