package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/inventory"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/usecase"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
)

// InventoryHandler maneja el ajuste de stock y el listado de inventario
// ordenado por urgencia (protegido).
type InventoryHandler struct {
	adjustStock *inventory.AdjustStockUseCase
	productUC   *usecase.ProductUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustStock *inventory.AdjustStockUseCase, productUC *usecase.ProductUseCase) *InventoryHandler {
	return &InventoryHandler{adjustStock: adjustStock, productUC: productUC}
}

// AdjustStock aplica un delta con signo al stock de un producto.
// PATCH /api/products/:id/stock
//
// Cuerpo: {"delta": n} con n != 0. Un delta que dejaría el stock en
// negativo se rechaza con 400 sin tocar el registro.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.adjustStock.AdjustStock(c.Context(), id, in.Delta)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta inválido: debe ser distinto de 0 y no dejar el stock en negativo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "escritura concurrente rechazada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// ListInventory devuelve el catálogo completo ordenado por urgencia de
// stock (agotados, bajos, sanos).
// GET /api/inventory/products
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	out, err := h.productUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
