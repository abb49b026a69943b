package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para las tarjetas del dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountInvoices devuelve el total de facturas.
func (r *DashboardRepo) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// CountCustomers devuelve el total de clientes.
func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// SumInvoiceAmountByStatus suma amount (centavos) de las facturas con el estado
// dado. COALESCE devuelve cero cuando no hay filas.
func (r *DashboardRepo) SumInvoiceAmountByStatus(ctx context.Context, status string) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`
	var total int64
	if err := r.q.QueryRow(ctx, query, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum invoices by status: %w", err)
	}
	return total, nil
}
