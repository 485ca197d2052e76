package entity

// Store representa una tienda física donde se puede recoger un pedido.
type Store struct {
	ID           int64
	Name         string
	Address      string
	City         string
	OpeningHours string
}
