// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos con mutex. Se usa en tests y para levantar la API sin
// PostgreSQL; replica la semántica de los adaptadores de postgres (nil, nil
// cuando no hay fila, ErrDuplicate en colisión de unicidad, orden del listado).
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	mu sync.RWMutex
	m  map[string]entity.Product
	// orden de inserción, para que "sort por id" sea estable y predecible
	order []string
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{m: make(map[string]entity.Product)}
}

// Create inserta un producto. Devuelve ErrDuplicate si el nombre ya existe (match exacto).
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.m {
		if p.Name == product.Name {
			return domain.ErrDuplicate
		}
	}
	r.m[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.m[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// GetByName busca por nombre exacto (sensible a mayúsculas).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.find(func(p entity.Product) bool { return p.Name == name })
}

// GetByNameInsensitive busca por nombre ignorando mayúsculas.
func (r *ProductRepo) GetByNameInsensitive(name string) (*entity.Product, error) {
	return r.find(func(p entity.Product) bool { return strings.EqualFold(p.Name, name) })
}

// GetByNameExcluding busca por nombre exacto excluyendo un ID.
func (r *ProductRepo) GetByNameExcluding(name, excludeID string) (*entity.Product, error) {
	return r.find(func(p entity.Product) bool { return p.Name == name && p.ID != excludeID })
}

func (r *ProductRepo) find(match func(entity.Product) bool) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p, ok := r.m[id]; ok && match(p) {
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.m {
		if p.Name == product.Name && id != product.ID {
			return domain.ErrDuplicate
		}
	}
	r.m[product.ID] = *product
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List lista con la misma semántica que el adaptador de postgres: filtro
// exacto por categoría, whitelist de campos de orden (otro valor cae a id,
// que aquí es orden de inserción) y paginación por limit/offset.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.RLock()
	list := make([]entity.Product, 0, len(r.m))
	for _, id := range r.order {
		p := r.m[id]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		list = append(list, p)
	}
	r.mu.RUnlock()

	sortField := filter.Sort
	if !repository.ValidSortFields[sortField] {
		sortField = "id"
	}
	less := func(a, b entity.Product) bool {
		switch sortField {
		case "name":
			return a.Name < b.Name
		case "category":
			return a.Category < b.Category
		case "brand":
			return a.Brand < b.Brand
		case "stock":
			return a.Stock < b.Stock
		case "status":
			return a.Status < b.Status
		default:
			return false // id: se mantiene el orden de inserción
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if filter.Order == "desc" {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})

	if filter.Limit > 0 {
		if filter.Offset >= len(list) {
			list = nil
		} else {
			end := filter.Offset + filter.Limit
			if end > len(list) {
				end = len(list)
			}
			list = list[filter.Offset:end]
		}
	}

	out := make([]*entity.Product, 0, len(list))
	for i := range list {
		p := list[i]
		out = append(out, &p)
	}
	return out, nil
}

// SearchByName busca por subcadena del nombre, insensible a mayúsculas.
func (r *ProductRepo) SearchByName(namePart string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(namePart)
	var out []*entity.Product
	for _, id := range r.order {
		p := r.m[id]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}
