package entity

import "time"

// StockChange representa una transición de stock de un producto (histórico append-only).
// ProductID es referencia débil: el producto puede borrarse después y la app
// elimina su histórico como efecto secundario best-effort.
type StockChange struct {
	ID          string
	ProductID   string
	OldQuantity int
	NewQuantity int
	ChangedAt   time.Time
	Actor       string // identificador libre de quién hizo el cambio
}
