package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// CustomerSummary resultado crudo del agregado cliente + facturas.
// Los totales llegan en centavos; SUM condicional con relleno en cero cuando
// el cliente no tiene facturas.
type CustomerSummary struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64 // centavos
	TotalPaid     int64 // centavos
}

// CustomerRepository define el puerto de persistencia para Customer.
// El core no muta clientes; Create existe solo para el seed.
type CustomerRepository interface {
	// List devuelve todos los clientes ordenados por nombre descendente.
	List(ctx context.Context) ([]*entity.Customer, error)

	// GetByID devuelve el cliente o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)

	// ListWithSummary devuelve los clientes que coinciden por nombre o email
	// (substring, case-insensitive) con conteo de facturas y totales por
	// estado, ordenados por nombre ascendente.
	ListWithSummary(ctx context.Context, query string) ([]CustomerSummary, error)

	Create(ctx context.Context, customer *entity.Customer) error
}
