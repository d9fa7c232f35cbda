package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// HistoryHandler maneja la consulta del histórico de stock.
type HistoryHandler struct {
	uc *inventory.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *inventory.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// History godoc
// @Summary      Histórico de stock de un producto (más reciente primero)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *HistoryHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return productNotFound(c)
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
