package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Campos de ordenamiento aceptados por List. Cualquier otro valor cae a "id".
var ValidSortFields = map[string]bool{
	"id":       true,
	"name":     true,
	"category": true,
	"brand":    true,
	"stock":    true,
	"status":   true,
}

// ProductFilter filtro opcional para listados de productos.
type ProductFilter struct {
	Category string // match exacto; vacío = sin filtro
	Sort     string // campo de ValidSortFields; otro valor cae a "id"
	Order    string // "desc" para descendente; cualquier otro valor asciende
	Limit    int    // 0 = sin paginación
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName busca por nombre exacto (sensible a mayúsculas).
	GetByName(name string) (*entity.Product, error)
	// GetByNameInsensitive busca por nombre ignorando mayúsculas (detección de duplicados en import).
	GetByNameInsensitive(name string) (*entity.Product, error)
	// GetByNameExcluding busca por nombre exacto excluyendo un ID (chequeo de conflicto en update).
	GetByNameExcluding(name, excludeID string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(filter ProductFilter) ([]*entity.Product, error)
	// SearchByName busca por subcadena del nombre, insensible a mayúsculas.
	SearchByName(namePart string) ([]*entity.Product, error)
}
