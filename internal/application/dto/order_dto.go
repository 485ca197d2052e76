package dto

// CreateOrderRequest entrada para registrar un pedido. StoreID es una
// referencia consultiva: no se valida contra las tiendas existentes.
type CreateOrderRequest struct {
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	Pickup          bool    `json:"pickup"`
	StoreID         int64   `json:"storeId"`
	ShippingAddress string  `json:"shippingAddress"`
	City            string  `json:"city"`
	Total           float64 `json:"total"`
}

// OrderResponse salida de un pedido. Total viaja como número.
type OrderResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	Pickup          bool    `json:"pickup"`
	StoreID         int64   `json:"storeId"`
	ShippingAddress string  `json:"shippingAddress"`
	City            string  `json:"city"`
	Total           float64 `json:"total"`
}
