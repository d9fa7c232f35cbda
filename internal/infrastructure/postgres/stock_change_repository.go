package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockChangeRepository = (*StockChangeRepo)(nil)

// StockChangeRepo implementación del puerto StockChangeRepository sobre PostgreSQL (usable con pool o tx).
type StockChangeRepo struct {
	q Querier
}

// NewStockChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockChangeRepository(q Querier) *StockChangeRepo {
	return &StockChangeRepo{q: q}
}

// Create persiste un registro de cambio de stock. Las cantidades deben ser no negativas.
func (r *StockChangeRepo) Create(change *entity.StockChange) error {
	if change.OldQuantity < 0 || change.NewQuantity < 0 {
		return domain.ErrInvalidInput
	}
	if change.ID == "" {
		change.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_changes (id, product_id, old_quantity, new_quantity, changed_at, actor)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		change.ID, change.ProductID, change.OldQuantity, change.NewQuantity,
		change.ChangedAt, change.Actor,
	)
	if err != nil {
		return fmt.Errorf("insert stock change: %w", err)
	}
	return nil
}

// ListByProduct lista el histórico de un producto ordenado por fecha descendente.
func (r *StockChangeRepo) ListByProduct(productID string) ([]*entity.StockChange, error) {
	query := `
		SELECT id, product_id, old_quantity, new_quantity, changed_at, actor
		FROM stock_changes WHERE product_id = $1 ORDER BY changed_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock changes: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockChange
	for rows.Next() {
		var c entity.StockChange
		if err := rows.Scan(&c.ID, &c.ProductID, &c.OldQuantity, &c.NewQuantity, &c.ChangedAt, &c.Actor); err != nil {
			return nil, fmt.Errorf("scan stock change: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteByProduct elimina todo el histórico de un producto (cascada tras borrar el producto).
func (r *StockChangeRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_changes WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock changes: %w", err)
	}
	return nil
}
