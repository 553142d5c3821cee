package analytics

import (
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// ProductIndex índice de lectura O(1) sobre la colección de productos,
// por clave normalizada de nombre y por ID. Se construye una vez por
// snapshot y no se comparte entre llamadas.
type ProductIndex struct {
	byName map[string]*entity.Product
	byID   map[string]*entity.Product
}

// NewProductIndex construye el índice. Los productos sin nombre quedan
// fuera del índice por nombre (no hay clave con qué cruzarlos) pero sí
// entran al índice por ID. Si dos productos normalizan a la misma clave,
// el último indexado pisa al anterior (ambigüedad documentada del cruce
// por texto libre).
func NewProductIndex(products []*entity.Product) *ProductIndex {
	idx := &ProductIndex{
		byName: make(map[string]*entity.Product, len(products)),
		byID:   make(map[string]*entity.Product, len(products)),
	}
	for _, p := range products {
		idx.byID[p.ID] = p
		if key := Normalize(p.Name); key != "" {
			idx.byName[key] = p
		}
	}
	return idx
}

// ByName busca un producto por clave normalizada. nil si no cruza.
func (idx *ProductIndex) ByName(key string) *entity.Product {
	return idx.byName[key]
}

// ByID busca un producto por identificador. nil si no existe.
func (idx *ProductIndex) ByID(id string) *entity.Product {
	return idx.byID[id]
}
