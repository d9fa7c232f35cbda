package bulk

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ImportUseCase importa productos desde filas CSV ya decodificadas.
type ImportUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.ProductRepository, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{repo: repo, log: log}
}

// Import procesa las filas de forma independiente y commitea cada inserción al
// momento (sin transacción todo-o-nada). Devuelve ErrInvalidInput solo cuando
// no hay filas; después de eso el lote nunca falla completo: una fila sin name
// o sin columna stock se salta, un nombre ya existente (insensible a
// mayúsculas) se registra como duplicado, y cualquier error de inserción se
// absorbe en el contador de saltadas.
func (uc *ImportUseCase) Import(rows []Row) (*dto.ImportResultResponse, error) {
	if len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	result := &dto.ImportResultResponse{
		Duplicates: []dto.DuplicateEntry{},
	}
	for _, row := range rows {
		if row.Name == "" || row.Stock == nil {
			result.Skipped++
			continue
		}
		existing, err := uc.repo.GetByNameInsensitive(row.Name)
		if err != nil {
			uc.log.Warn().Err(err).Str("name", row.Name).Msg("import: fallo el chequeo de duplicado")
			result.Skipped++
			continue
		}
		if existing != nil {
			result.Duplicates = append(result.Duplicates, dto.DuplicateEntry{
				Name:       row.Name,
				ExistingID: existing.ID,
			})
			result.Skipped++
			continue
		}
		// Mismo camino de inserción que el create normal; los opcionales
		// faltantes quedan en "" y un stock no numérico se convierte en 0.
		stock, err := strconv.Atoi(strings.TrimSpace(*row.Stock))
		if err != nil {
			stock = 0
		}
		now := time.Now()
		product := &entity.Product{
			ID:        uuid.New().String(),
			Name:      row.Name,
			Unit:      row.Unit,
			Category:  row.Category,
			Brand:     row.Brand,
			Stock:     stock,
			Status:    row.Status,
			Image:     row.Image,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(product); err != nil {
			uc.log.Warn().Err(err).Str("name", row.Name).Msg("import: fallo la inserción")
			result.Skipped++
			continue
		}
		result.Added++
	}
	return result, nil
}
