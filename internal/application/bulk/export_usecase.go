package bulk

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Cabecera fija del export. El orden y los nombres son contrato de
// compatibilidad con el import y con otras herramientas: no cambiar.
var exportHeader = []string{"id", "name", "unit", "category", "brand", "stock", "status", "image"}

// ExportUseCase exporta el inventario completo como documento CSV.
type ExportUseCase struct {
	repo repository.ProductRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.ProductRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// Export devuelve el CSV: línea de cabecera más una línea por producto,
// ordenado por id. Los valores con coma o comilla van entre comillas con las
// comillas internas duplicadas (encoding/csv lo hace tal cual).
func (uc *ExportUseCase) Export() ([]byte, error) {
	list, err := uc.repo.List(repository.ProductFilter{Sort: "id"})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, p := range list {
		record := []string{
			p.ID, p.Name, p.Unit, p.Category, p.Brand,
			strconv.Itoa(p.Stock), p.Status, p.Image,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
