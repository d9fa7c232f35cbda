package dto

import "time"

// ProductInput entrada para crear o actualizar un producto (mismo cuerpo en ambos casos).
// Stock es puntero para distinguir "ausente" de cero: ausente es error de validación.
type ProductInput struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    *int   `json:"stock"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

// Validate devuelve los errores de validación por campo (vacío = válido).
func (in ProductInput) Validate() []FieldError {
	var errs []FieldError
	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if in.Stock == nil || *in.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "Stock must be a number >= 0"})
	}
	return errs
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Stock     int       `json:"stock"`
	Status    string    `json:"status"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductListResponse lista de productos con su conteo.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

// ProductMessageResponse producto acompañado de mensaje (create/update).
type ProductMessageResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// ProductDeleteResponse confirmación de borrado con el producto eliminado.
type ProductDeleteResponse struct {
	Message        string          `json:"message"`
	DeletedProduct ProductResponse `json:"deletedProduct"`
}

// StockChangeResponse un registro del histórico de stock.
type StockChangeResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	OldQuantity int       `json:"oldQuantity"`
	NewQuantity int       `json:"newQuantity"`
	ChangedAt   time.Time `json:"changedAt"`
	Actor       string    `json:"actor"`
}

// HistoryResponse histórico de stock de un producto.
type HistoryResponse struct {
	Product ProductResponse       `json:"product"`
	History []StockChangeResponse `json:"history"`
	Count   int                   `json:"count"`
}
