package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/customers"
)

// CustomerHandler lecturas de clientes.
type CustomerHandler struct {
	uc *customers.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *customers.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Clientes (id + nombre) para el selector del formulario
// @Tags         customers
// @Produce      json
// @Success      200  {array}   dto.CustomerFieldDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Table godoc
// @Summary      Tabla de clientes filtrada con totales por estado
// @Tags         customers
// @Produce      json
// @Param        query  query  string  false  "substring de nombre o email"
// @Success      200  {array}   dto.CustomerSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/table [get]
func (h *CustomerHandler) Table(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.Filtered(c.UserContext(), c.Query("query"))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
