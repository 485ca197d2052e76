package dto

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// ProductResponse salida de un producto. Price viaja siempre como número,
// sin importar que la columna NUMERIC se almacene como texto.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}
