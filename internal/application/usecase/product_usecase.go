package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Actor registrado en el histórico de stock.
// TODO: tomar la identidad del usuario autenticado cuando las rutas de
// productos pasen detrás del middleware de auth; hoy es un placeholder fijo,
// igual que en el sistema anterior.
const auditActor = "admin"

// ProductUseCase casos de uso CRUD para productos. Los cambios de stock en
// update generan un registro en el histórico (escritura best-effort).
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockChangeRepository
	log       *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockChangeRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, log: log}
}

// List lista productos con filtro de categoría, ordenamiento y paginación opcionales.
// Una página fuera de rango devuelve lista vacía, no error.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := dto.FromProducts(list)
	return &dto.ProductListResponse{Products: items, Count: len(items)}, nil
}

// Search busca por subcadena del nombre, insensible a mayúsculas.
// Devuelve ErrInvalidInput si la subcadena es vacía.
func (uc *ProductUseCase) Search(namePart string) (*dto.ProductListResponse, error) {
	if namePart == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.SearchByName(namePart)
	if err != nil {
		return nil, err
	}
	items := dto.FromProducts(list)
	return &dto.ProductListResponse{Products: items, Count: len(items)}, nil
}

// GetByID obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Create valida y persiste un producto nuevo.
// Devuelve ErrInvalidInput si name o stock no pasan validación y ErrDuplicate
// si ya existe un producto con el mismo nombre (match exacto).
func (uc *ProductUseCase) Create(in dto.ProductInput) (*dto.ProductResponse, error) {
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Unit:      in.Unit,
		Category:  in.Category,
		Brand:     in.Brand,
		Stock:     *in.Stock,
		Status:    in.Status,
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Sin transacción entre el chequeo y el insert: dos creates concurrentes con
	// el mismo nombre pueden pasar ambos el chequeo; el constraint único de la
	// tabla resuelve la carrera y también se reporta como ErrDuplicate.
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Update valida y actualiza un producto existente. Si el stock cambió, agrega
// un registro al histórico con las cantidades anterior y nueva; el fallo de esa
// escritura solo se loguea y no hace fallar el update (auditoría best-effort).
func (uc *ProductUseCase) Update(id string, in dto.ProductInput) (*dto.ProductResponse, error) {
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	conflict, err := uc.repo.GetByNameExcluding(in.Name, id)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, domain.ErrDuplicate
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	oldStock := product.Stock
	product.Name = in.Name
	product.Unit = in.Unit
	product.Category = in.Category
	product.Brand = in.Brand
	product.Stock = *in.Stock
	product.Status = in.Status
	product.Image = in.Image
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	if oldStock != product.Stock {
		change := &entity.StockChange{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			OldQuantity: oldStock,
			NewQuantity: product.Stock,
			ChangedAt:   time.Now(),
			Actor:       auditActor,
		}
		if err := uc.stockRepo.Create(change); err != nil {
			uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("no se pudo registrar el cambio de stock")
		}
	}

	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina un producto y su histórico de stock. Devuelve el producto
// eliminado como confirmación. El borrado del histórico es best-effort: si
// falla se loguea y el delete del producto sigue siendo exitoso.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	if err := uc.stockRepo.DeleteByProduct(id); err != nil {
		uc.log.Error().Err(err).Str("product_id", id).Msg("no se pudo eliminar el histórico de stock")
	}
	out := dto.FromProduct(product)
	return &out, nil
}
