package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Latest devuelve las `limit` facturas más recientes con los datos del cliente.
// Orden: date DESC; el desempate queda al orden natural del store.
func (r *InvoiceRepo) Latest(ctx context.Context, limit int) ([]repository.InvoiceWithCustomer, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date,
		       c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("latest invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// ListFiltered devuelve la página de facturas cuyo cliente coincide por nombre
// o email (ILIKE %query%).
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	const sqlQuery = `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date,
		       c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		ORDER BY i.date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sqlQuery, containsPattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// CountFiltered cuenta las filas con el mismo predicado de ListFiltered.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	const sqlQuery = `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1`
	var count int64
	if err := r.q.QueryRow(ctx, sqlQuery, containsPattern(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// GetByID devuelve la factura o (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// Create persiste una nueva factura. Asigna el ID si viene vacío.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update modifica customer_id, amount y status. id y date no se tocan.
// Cero filas afectadas -> domain.ErrNotFound.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura. Un id inexistente es éxito idempotente.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoiceRows(rows pgx.Rows) ([]repository.InvoiceWithCustomer, error) {
	var list []repository.InvoiceWithCustomer
	for rows.Next() {
		var row repository.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &row.Status, &row.Date,
			&row.CustomerName, &row.Email, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
