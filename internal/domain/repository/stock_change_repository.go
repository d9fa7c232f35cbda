package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockChangeRepository define el puerto de persistencia para el histórico de stock.
// Los registros nunca se mutan: solo insert, listado y borrado en cascada por producto.
type StockChangeRepository interface {
	Create(change *entity.StockChange) error
	// ListByProduct devuelve el histórico ordenado por changed_at descendente.
	ListByProduct(productID string) ([]*entity.StockChange, error)
	DeleteByProduct(productID string) error
}
