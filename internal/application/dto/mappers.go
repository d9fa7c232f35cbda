package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// FromProduct convierte la entidad de dominio a su DTO de salida.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Category:  p.Category,
		Brand:     p.Brand,
		Stock:     p.Stock,
		Status:    p.Status,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromProducts convierte una lista de entidades. Siempre devuelve slice no nil
// para que el JSON serialice [] y no null.
func FromProducts(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, FromProduct(p))
	}
	return items
}

// FromStockChange convierte un registro del histórico a su DTO de salida.
func FromStockChange(c *entity.StockChange) StockChangeResponse {
	return StockChangeResponse{
		ID:          c.ID,
		ProductID:   c.ProductID,
		OldQuantity: c.OldQuantity,
		NewQuantity: c.NewQuantity,
		ChangedAt:   c.ChangedAt,
		Actor:       c.Actor,
	}
}

// FromUser convierte la entidad de usuario a su DTO público.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
