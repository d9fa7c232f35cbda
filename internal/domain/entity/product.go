package entity

import "time"

// Product representa un artículo del inventario.
// Name es único en todo el sistema (constraint en DB, sensible a mayúsculas).
// Stock es la cantidad entera disponible; cada cambio genera un StockChange.
type Product struct {
	ID        string
	Name      string
	Unit      string // unidad de medida libre ("kg", "caja", ...)
	Category  string
	Brand     string
	Stock     int // siempre >= 0
	Status    string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
