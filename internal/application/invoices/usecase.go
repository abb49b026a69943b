package invoices

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// PageSize facturas por página del listado filtrado.
const PageSize = 6

const isoDate = "2006-01-02"

var cien = decimal.NewFromInt(100)

// InvoiceUseCase consultas y mutaciones de facturas.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	views        ViewInvalidator
	receipts     ReceiptGenerator
	log          *logger.Logger

	// now se reemplaza en tests para fijar la fecha de creación.
	now func() time.Time
}

// NewInvoiceUseCase construye el caso de uso de facturas.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	views ViewInvalidator,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		views:        views,
		receipts:     receipts,
		log:          log,
		now:          time.Now,
	}
}

// Filtered devuelve la página `page` (1-based) de facturas cuyo cliente
// coincide por nombre o email. Página fija de 6 filas.
func (uc *InvoiceUseCase) Filtered(ctx context.Context, query string, page int) ([]dto.InvoiceRowDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize
	rows, err := uc.invoiceRepo.ListFiltered(ctx, query, PageSize, offset)
	if err != nil {
		return nil, uc.dataErr("invoices.Filtered", err)
	}
	list := make([]dto.InvoiceRowDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, dto.InvoiceRowDTO{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Name:       row.CustomerName,
			Email:      row.Email,
			ImageURL:   row.ImageURL,
			Date:       row.Date.Format(isoDate),
			Amount:     row.Amount,
			Status:     row.Status,
		})
	}
	return list, nil
}

// Pages devuelve el total de páginas del listado filtrado: ceil(filas / 6).
func (uc *InvoiceUseCase) Pages(ctx context.Context, query string) (int64, error) {
	count, err := uc.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return 0, uc.dataErr("invoices.Pages", err)
	}
	return (count + PageSize - 1) / PageSize, nil
}

// ByID devuelve la factura lista para el formulario de edición, con el monto
// en unidades de moneda (centavos / 100).
func (uc *InvoiceUseCase) ByID(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.dataErr("invoices.ByID", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceFormDTO{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     decimal.New(inv.Amount, -2),
		Status:     inv.Status,
	}, nil
}

// Create valida el formulario, convierte el monto a centavos, fija la fecha al
// día calendario actual (UTC) y persiste. Invalida la vista del listado antes
// de retornar.
func (uc *InvoiceUseCase) Create(ctx context.Context, form dto.InvoiceForm) (*entity.Invoice, error) {
	cents, verr := validateForm(form)
	if verr != nil {
		return nil, verr
	}
	now := uc.now().UTC()
	inv := &entity.Invoice{
		CustomerID: form.CustomerID,
		Amount:     cents,
		Status:     form.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, uc.dataErr("invoices.Create", err)
	}
	if err := uc.invalidate(ctx); err != nil {
		return nil, err
	}
	return inv, nil
}

// Update valida el formulario y modifica cliente, monto y estado de la factura.
// id y date no se modifican. Factura inexistente -> domain.ErrNotFound.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, form dto.InvoiceForm) error {
	cents, verr := validateForm(form)
	if verr != nil {
		return verr
	}
	inv := &entity.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     cents,
		Status:     form.Status,
	}
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		if err == domain.ErrNotFound {
			return err
		}
		return uc.dataErr("invoices.Update", err)
	}
	return uc.invalidate(ctx)
}

// Delete elimina la factura. Borrar un id inexistente es éxito idempotente.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.invoiceRepo.Delete(ctx, id); err != nil {
		return uc.dataErr("invoices.Delete", err)
	}
	return uc.invalidate(ctx)
}

// ReceiptPDF genera el comprobante PDF de la factura.
func (uc *InvoiceUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.dataErr("invoices.ReceiptPDF", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, uc.dataErr("invoices.ReceiptPDF", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateReceipt(inv, customer)
}

// validateForm valida la forma del formulario y devuelve el monto en centavos.
// Acumula todos los campos inválidos para que el formulario se re-pinte completo.
func validateForm(form dto.InvoiceForm) (int64, error) {
	verr := domain.NewValidationError()
	if form.CustomerID == "" {
		verr.Add("customerId", "seleccione un cliente")
	}
	if !entity.ValidInvoiceStatus(form.Status) {
		verr.Add("status", "el estado debe ser pending o paid")
	}

	var cents int64
	amount, err := decimal.NewFromString(form.Amount)
	switch {
	case form.Amount == "" || err != nil:
		verr.Add("amount", "el monto debe ser numérico")
	case amount.IsNegative():
		verr.Add("amount", "el monto no puede ser negativo")
	default:
		// amount * 100 exacto, sin aritmética flotante
		c := amount.Mul(cien)
		if !c.IsInteger() {
			verr.Add("amount", "máximo dos decimales")
		} else {
			cents = c.IntPart()
		}
	}

	if verr.HasErrors() {
		return 0, verr
	}
	return cents, nil
}

// invalidate emite la señal de vista obsoleta. Es parte del contrato de cada
// mutación: si la señal falla, la mutación reporta el fallo.
func (uc *InvoiceUseCase) invalidate(ctx context.Context) error {
	if err := uc.views.Invalidate(ctx, ViewInvoices); err != nil {
		uc.log.Error().Err(err).Str("view", ViewInvoices).Msg("fallo invalidando vista")
		return err
	}
	return nil
}

func (uc *InvoiceUseCase) dataErr(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("error de base de datos")
	return domain.ErrDataAccess
}
