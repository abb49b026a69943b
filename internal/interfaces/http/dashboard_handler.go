package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
)

// DashboardHandler lecturas del panel principal.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Revenue godoc
// @Summary      Gráfico de ingresos mensuales
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.RevenueDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.Revenue(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// LatestInvoices godoc
// @Summary      Últimas 5 facturas
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.LatestInvoiceDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/latest-invoices [get]
func (h *DashboardHandler) LatestInvoices(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.LatestInvoices(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Cards godoc
// @Summary      Agregados de las tarjetas del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.CardDataDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/cards [get]
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.CardData(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
