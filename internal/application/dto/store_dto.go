package dto

// CreateStoreRequest entrada para registrar una tienda.
type CreateStoreRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	OpeningHours string `json:"openingHours"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	OpeningHours string `json:"openingHours"`
}
