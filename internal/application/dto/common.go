package dto

// ErrorResponse cuerpo de error HTTP. Conserva las claves del servicio
// original (codigo numérico + mensaje en "error").
type ErrorResponse struct {
	Codigo int    `json:"codigo"`
	Error  string `json:"error"`
}
