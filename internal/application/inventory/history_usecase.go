package inventory

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// HistoryUseCase consulta del histórico de stock de un producto.
type HistoryUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockChangeRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(productRepo repository.ProductRepository, stockRepo repository.StockChangeRepository) *HistoryUseCase {
	return &HistoryUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// History devuelve el histórico de un producto ordenado por fecha descendente.
// La existencia del producto se verifica aparte: un producto sin cambios
// devuelve lista vacía, no error; un producto inexistente devuelve ErrNotFound.
func (uc *HistoryUseCase) History(productID string) (*dto.HistoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	changes, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	history := make([]dto.StockChangeResponse, 0, len(changes))
	for _, c := range changes {
		history = append(history, dto.FromStockChange(c))
	}
	return &dto.HistoryResponse{
		Product: dto.FromProduct(product),
		History: history,
		Count:   len(history),
	}, nil
}
