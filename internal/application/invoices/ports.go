package invoices

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// Nombre de la vista de listado de facturas. Toda mutación la invalida antes
// de retornar, para que la siguiente lectura observe el cambio.
const ViewInvoices = "dashboard/invoices"

// ViewInvalidator señala que la representación cacheada de una vista quedó
// obsoleta. La capa de presentación decide qué hacer con la señal.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, view string) error
}

// ReceiptGenerator genera el comprobante PDF de una factura.
type ReceiptGenerator interface {
	GenerateReceipt(invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
