package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// InvoiceWithCustomer resultado crudo del JOIN factura + cliente.
// Lo produce la DB; el use case lo convierte en DTO.
type InvoiceWithCustomer struct {
	ID           string
	CustomerID   string
	Amount       int64 // centavos
	Status       string
	Date         time.Time
	CustomerName string
	Email        string
	ImageURL     string
}

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
type InvoiceRepository interface {
	// Latest devuelve las facturas más recientes (fecha descendente) con los
	// datos del cliente. El desempate entre fechas iguales queda al orden
	// natural del store.
	Latest(ctx context.Context, limit int) ([]InvoiceWithCustomer, error)

	// ListFiltered devuelve la página de facturas cuyo cliente coincide por
	// nombre o email (substring, case-insensitive).
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]InvoiceWithCustomer, error)

	// CountFiltered cuenta las filas que coinciden con el mismo predicado de ListFiltered.
	CountFiltered(ctx context.Context, query string) (int64, error)

	// GetByID devuelve la factura o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)

	Create(ctx context.Context, invoice *entity.Invoice) error

	// Update modifica customer_id, amount y status. Devuelve domain.ErrNotFound
	// si ninguna fila coincide con el id (id y date son inmutables).
	Update(ctx context.Context, invoice *entity.Invoice) error

	// Delete elimina la factura. Borrar un id inexistente es éxito idempotente.
	Delete(ctx context.Context, id string) error
}
