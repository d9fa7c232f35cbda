package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// psql builder con placeholders $1, $2, ... de PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const productColumns = "id, name, unit, category, brand, stock, status, image, created_at, updated_at"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Devuelve ErrDuplicate si el nombre ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, unit, category, brand, stock, status, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Unit, product.Category, product.Brand,
		product.Stock, product.Status, product.Image, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByName obtiene un producto por nombre exacto (sensible a mayúsculas).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

// GetByNameInsensitive obtiene un producto por nombre ignorando mayúsculas.
// Es el chequeo de duplicados del import; create/update usan el match exacto.
func (r *ProductRepo) GetByNameInsensitive(name string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE LOWER(name) = LOWER($1) LIMIT 1`, name)
}

// GetByNameExcluding obtiene un producto por nombre exacto con ID distinto al dado.
func (r *ProductRepo) GetByNameExcluding(name, excludeID string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE name = $1 AND id != $2`, name, excludeID)
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Unit, &p.Category, &p.Brand, &p.Stock, &p.Status, &p.Image,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza todos los campos editables de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, unit = $3, category = $4, brand = $5, stock = $6, status = $7, image = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Unit, product.Category, product.Brand,
		product.Stock, product.Status, product.Image, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos con filtro de categoría, ordenamiento y paginación opcionales.
// Un campo de orden fuera de la whitelist cae silenciosamente a "id".
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	builder := psql.Select(productColumns).From("products")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	sortField := filter.Sort
	if !repository.ValidSortFields[sortField] {
		sortField = "id"
	}
	direction := "ASC"
	if filter.Order == "desc" {
		direction = "DESC"
	}
	builder = builder.OrderBy(sortField + " " + direction)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	return r.list(query, args...)
}

// SearchByName busca productos cuyo nombre contenga la subcadena, insensible a mayúsculas.
func (r *ProductRepo) SearchByName(namePart string) ([]*entity.Product, error) {
	query, args, err := psql.Select(productColumns).
		From("products").
		Where(sq.ILike{"name": "%" + namePart + "%"}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}
	return r.list(query, args...)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.Category, &p.Brand, &p.Stock, &p.Status, &p.Image,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
