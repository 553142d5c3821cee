package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/analytics"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. StockStatus nunca se
// recibe del cliente: siempre se deriva de la cantidad con
// entity.StatusFromQuantity; los cambios de cantidad van por el ajuste
// de stock, no por Update.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Precio debe ser positivo y stock no negativo;
// el estado inicial se deriva del stock.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Stock:       in.Stock,
		StockStatus: entity.StatusFromQuantity(in.Stock),
		Price:       in.Price,
		Supplier:    in.Supplier,
		CreatedAt:   time.Now(),
		Reviews:     in.Reviews,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos descriptivos de un producto. No permite
// modificar Stock ni StockStatus (se manejan vía ajuste de stock).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Reviews != nil {
		product.Reviews = *in.Reviews
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo ordenado por urgencia de stock:
// agotados primero, luego stock bajo, luego sanos.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	ranked := analytics.RankProducts(products)
	items := make([]dto.ProductResponse, 0, len(ranked))
	for _, p := range ranked {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Total: len(items), Items: items}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Stock:       p.Stock,
		StockStatus: p.StockStatus,
		Price:       p.Price,
		Supplier:    p.Supplier,
		CreatedAt:   p.CreatedAt,
		Reviews:     p.Reviews,
	}
}
