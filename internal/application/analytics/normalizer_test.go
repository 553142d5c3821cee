package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/analytics"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Normalize — clave de cruce por nombre
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_MinusculasYAlfanumerico(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café Móka", "cafemoka"},
		{"cafe moka", "cafemoka"},
		{"  Wireless Mouse! ", "wirelessmouse"},
		{"USB-C Cable 2m", "usbccable2m"},
		{"ñandú", "nandu"},
		{"***", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, analytics.Normalize(tc.in), "entrada: %q", tc.in)
	}
}

// Variantes con acento y mayúsculas deben producir la misma clave.
func TestNormalize_VariantesCruzanIgual(t *testing.T) {
	assert.Equal(t,
		analytics.Normalize("Café Móka"),
		analytics.Normalize("CAFE MOKA"),
		"variantes con diacríticos y mayúsculas deben cruzar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductIndex
// ──────────────────────────────────────────────────────────────────────────────

func TestProductIndex_BuscaPorClaveYPorID(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Café Móka"},
		{ID: "p2", Name: "Teclado"},
	}
	idx := analytics.NewProductIndex(products)

	assert.Equal(t, "p1", idx.ByName("cafemoka").ID)
	assert.Equal(t, "p2", idx.ByID("p2").ID)
	assert.Nil(t, idx.ByName("noexiste"))
	assert.Nil(t, idx.ByID("p9"))
}

// Producto sin nombre: fuera del índice por nombre, dentro del índice por ID.
func TestProductIndex_SinNombreSoloIndexaPorID(t *testing.T) {
	products := []*entity.Product{{ID: "p1", Name: ""}}
	idx := analytics.NewProductIndex(products)

	assert.Nil(t, idx.ByName(""))
	assert.NotNil(t, idx.ByID("p1"))
}

// Dos productos que normalizan a la misma clave: gana el último indexado.
func TestProductIndex_ColisionGanaElUltimo(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Cafe Moka"},
		{ID: "p2", Name: "café móka"},
	}
	idx := analytics.NewProductIndex(products)

	assert.Equal(t, "p2", idx.ByName("cafemoka").ID,
		"en colisión de clave el último producto indexado pisa al anterior")
}
