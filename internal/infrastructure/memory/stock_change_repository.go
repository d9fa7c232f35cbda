package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockChangeRepository = (*StockChangeRepo)(nil)

// StockChangeRepo implementación en memoria del puerto StockChangeRepository.
type StockChangeRepo struct {
	mu sync.RWMutex
	m  []entity.StockChange
}

// NewStockChangeRepository construye el repositorio vacío.
func NewStockChangeRepository() *StockChangeRepo {
	return &StockChangeRepo{}
}

// Create registra un evento de cambio de stock.
func (r *StockChangeRepo) Create(change *entity.StockChange) error {
	if change.OldQuantity < 0 || change.NewQuantity < 0 {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if change.ID == "" {
		change.ID = uuid.NewString()
	}
	r.m = append(r.m, *change)
	return nil
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *StockChangeRepo) ListByProduct(productID string) ([]*entity.StockChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.StockChange
	for i := range r.m {
		if r.m[i].ProductID == productID {
			cp := r.m[i]
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangedAt.After(out[j].ChangedAt)
	})
	return out, nil
}

// DeleteByProduct elimina todos los eventos de un producto.
func (r *StockChangeRepo) DeleteByProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.m[:0]
	for _, c := range r.m {
		if c.ProductID != productID {
			kept = append(kept, c)
		}
	}
	r.m = kept
	return nil
}
