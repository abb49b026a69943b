package repository

import "context"

// DashboardRepository define las consultas agregadas de las tarjetas del
// dashboard. Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)

	// SumInvoiceAmountByStatus suma amount (centavos) de las facturas con ese
	// estado. Devuelve cero si no hay filas.
	SumInvoiceAmountByStatus(ctx context.Context, status string) (int64, error)
}
