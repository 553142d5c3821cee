package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/analytics"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el snapshot completo del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: dto.DashboardSnapshot (metrics, monthly_sales[12],
// top_products[5], stock_alerts, recent_purchases[5]).
// Se recalcula completo en cada llamada; no hay agregados cacheados.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	snapshot, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(snapshot)
}
