package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/invoices"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// invoiceListPath destino del redirect tras crear o editar una factura.
const invoiceListPath = "/dashboard/invoices"

// InvoiceHandler CRUD de facturas del panel.
type InvoiceHandler struct {
	uc *invoices.InvoiceUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(uc *invoices.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Listado paginado de facturas filtradas por cliente
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "substring de nombre o email del cliente"
// @Param        page   query  int     false  "página 1-based (6 filas por página)"
// @Success      200  {array}   dto.InvoiceRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.Filtered(c.UserContext(), c.Query("query"), c.QueryInt("page", 1))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Pages godoc
// @Summary      Total de páginas del listado filtrado
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "substring de nombre o email del cliente"
// @Success      200  {object}  dto.InvoicePagesDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/pages [get]
func (h *InvoiceHandler) Pages(c *fiber.Ctx) error {
	noStore(c)
	total, err := h.uc.Pages(c.UserContext(), c.Query("query"))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(dto.InvoicePagesDTO{TotalPages: total})
}

// GetByID godoc
// @Summary      Factura por ID para el formulario de edición
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceFormDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	noStore(c)
	out, err := h.uc.ByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no existe"})
		}
		return internalError(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Param        customerId  formData  string  true  "ID del cliente"
// @Param        amount      formData  string  true  "monto en unidades de moneda"
// @Param        status      formData  string  true  "pending | paid"
// @Success      303  "redirect al listado de facturas"
// @Failure      422  {object}  dto.ValidationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var form dto.InvoiceForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Create(c.UserContext(), form); err != nil {
		return h.mutationError(c, err)
	}
	return c.Redirect(invoiceListPath, fiber.StatusSeeOther)
}

// Update godoc
// @Summary      Editar factura (cliente, monto y estado; fecha e id inmutables)
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Param        id          path      string  true  "ID de la factura"
// @Param        customerId  formData  string  true  "ID del cliente"
// @Param        amount      formData  string  true  "monto en unidades de moneda"
// @Param        status      formData  string  true  "pending | paid"
// @Success      303  "redirect al listado de facturas"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var form dto.InvoiceForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), c.Params("id"), form); err != nil {
		return h.mutationError(c, err)
	}
	return c.Redirect(invoiceListPath, fiber.StatusSeeOther)
}

// Delete godoc
// @Summary      Eliminar factura (sin redirect: la fila desaparece in-place)
// @Tags         invoices
// @Param        id  path  string  true  "ID de la factura"
// @Success      204  "factura eliminada (o inexistente: idempotente)"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReceiptPDF godoc
// @Summary      Comprobante PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) ReceiptPDF(c *fiber.Ctx) error {
	noStore(c)
	data, err := h.uc.ReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no existe"})
		}
		return internalError(c)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}

// mutationError mapea los errores de crear/editar al status HTTP.
func (h *InvoiceHandler) mutationError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationResponse{
			Code:    "VALIDATION",
			Message: "formulario inválido",
			Fields:  verr.Fields,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no existe"})
	}
	return internalError(c)
}
