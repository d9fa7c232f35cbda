package http

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/bulk"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// BulkHandler maneja import y export CSV del inventario.
type BulkHandler struct {
	importUC  *bulk.ImportUseCase
	exportUC  *bulk.ExportUseCase
	uploadDir string
}

// NewBulkHandler construye el handler. uploadDir es el directorio temporal
// donde se guarda el CSV subido mientras se procesa.
func NewBulkHandler(importUC *bulk.ImportUseCase, exportUC *bulk.ExportUseCase, uploadDir string) *BulkHandler {
	return &BulkHandler{importUC: importUC, exportUC: exportUC, uploadDir: uploadDir}
}

// Import godoc
// @Summary      Importar productos desde CSV
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        csvFile  formData  file  true  "Archivo CSV con cabecera"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *BulkHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No file uploaded"})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return internalError(c, err)
	}
	path := filepath.Join(h.uploadDir, uuid.New().String()+".csv")
	if err := c.SaveFile(fileHeader, path); err != nil {
		return internalError(c, err)
	}
	// El artefacto subido se borra en todos los caminos de salida
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		return internalError(c, err)
	}
	defer f.Close()

	rows, err := bulk.ParseCSV(f)
	if err != nil {
		return internalError(c, err)
	}
	out, err := h.importUC.Import(rows)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_FILE", Message: "CSV file is empty"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar productos como CSV
// @Tags         products
// @Produce      text/csv
// @Success      200  {string}  string  "CSV con cabecera id,name,unit,category,brand,stock,status,image"
// @Router       /api/products/export [get]
func (h *BulkHandler) Export(c *fiber.Ctx) error {
	data, err := h.exportUC.Export()
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Send(data)
}
