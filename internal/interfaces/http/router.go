package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/bulk"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	HistoryUC *inventory.HistoryUseCase
	ImportUC  *bulk.ImportUseCase
	ExportUC  *bulk.ExportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	UploadDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health)

	api := app.Group("/api")
	api.Get("/health", Health)

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Products (público, como en el sistema anterior; el frontend solo
	// protege la sesión, no el catálogo)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	bulkHandler := NewBulkHandler(deps.ImportUC, deps.ExportUC, deps.UploadDir)

	// Las rutas fijas van antes que /:id para que Fiber no las capture como parámetro
	products.Get("/search", productHandler.Search)
	products.Get("/export", bulkHandler.Export)
	products.Post("/import", bulkHandler.Import)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id/history", historyHandler.History)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
