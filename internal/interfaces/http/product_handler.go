package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        page      query  int     false  "Página (1-based; requiere limit)"
// @Param        limit     query  int     false  "Tamaño de página"
// @Param        sort      query  string  false  "Campo de orden: id,name,category,brand,stock,status"
// @Param        order     query  string  false  "asc o desc"
// @Param        category  query  string  false  "Filtro exacto por categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
	}
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 0)
	// Solo se pagina cuando vienen ambos parámetros; una página fuera de
	// rango devuelve lista vacía, no error.
	if page > 0 && limit > 0 {
		filter.Limit = limit
		filter.Offset = (page - 1) * limit
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Tags         products
// @Produce      json
// @Param        name  query  string  true  "Subcadena del nombre (insensible a mayúsculas)"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	out, err := h.uc.Search(name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Search query is required"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  map[string]dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return productNotFound(c)
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"product": out})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductInput  true  "Datos del producto"
// @Success      201  {object}  dto.ProductMessageResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			// Conflicto de unicidad responde 400, no 409: contrato original de la API
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Product name already exists"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: in.Validate()})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductMessageResponse{
		Message: "Product created successfully",
		Product: *out,
	})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del producto"
// @Param        body  body  dto.ProductInput  true  "Datos del producto"
// @Success      200  {object}  dto.ProductMessageResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return productNotFound(c)
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Product name already exists"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: in.Validate()})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.ProductMessageResponse{
		Message: "Product updated successfully",
		Product: *out,
	})
}

// Delete godoc
// @Summary      Eliminar producto (y su histórico de stock)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return productNotFound(c)
		}
		return internalError(c, err)
	}
	return c.JSON(dto.ProductDeleteResponse{
		Message:        "Product deleted successfully",
		DeletedProduct: *out,
	})
}

func productNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Product not found"})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
