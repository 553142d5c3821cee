package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/usecase"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// fakeProductRepo implementación en memoria del puerto de productos.
// Conserva el orden de inserción para las aserciones de listado.
type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) GetAll() ([]*entity.Product, error)              { return r.products, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                  { return nil }
func (r *fakeProductRepo) UpdateStock(id string, qty int, status string) error {
	p, _ := r.GetByID(id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock = qty
	p.StockStatus = status
	return nil
}
func (r *fakeProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DerivaElEstadoDelStock(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:  "Widget",
		Stock: 5,
		Price: decimal.NewFromFloat(19.99),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "debe asignarse un ID")
	assert.Equal(t, entity.StatusLowStock, out.StockStatus, "5 unidades es stock bajo")
	assert.Equal(t, 5, out.Stock)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre requerido")

	_, err = uc.Create(dto.CreateProductRequest{Name: "W", Stock: -1, Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")

	_, err = uc.Create(dto.CreateProductRequest{Name: "W", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio debe ser positivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloCamposDescriptivos(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Widget", Stock: 7, StockStatus: entity.StatusLowStock, Price: decimal.NewFromInt(10)},
	}}
	uc := usecase.NewProductUseCase(repo)

	name := "Widget Pro"
	price := decimal.NewFromInt(15)
	out, err := uc.Update("p1", dto.UpdateProductRequest{Name: &name, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", out.Name)
	assert.True(t, out.Price.Equal(price))
	assert.Equal(t, 7, out.Stock, "el stock no se toca por Update")
	assert.Equal(t, entity.StatusLowStock, out.StockStatus)
}

func TestUpdate_PrecioNoPositivo(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{{ID: "p1", Name: "W"}}}
	uc := usecase.NewProductUseCase(repo)

	bad := decimal.NewFromInt(-5)
	_, err := uc.Update("p1", dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	out, err := uc.Update("nope", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out, "inexistente devuelve nil para que el handler responda 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

// El listado sale ordenado por urgencia: agotados, bajos, sanos.
func TestList_OrdenadoPorUrgenciaDeStock(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "sano", Name: "A", Stock: 25},
		{ID: "agotado", Name: "B", Stock: 0},
		{ID: "bajo", Name: "C", Stock: 4},
	}}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List()

	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, "agotado", out.Items[0].ID)
	assert.Equal(t, "bajo", out.Items[1].ID)
	assert.Equal(t, "sano", out.Items[2].ID)
}
