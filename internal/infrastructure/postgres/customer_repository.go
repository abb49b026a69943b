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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List devuelve todos los clientes ordenados por nombre descendente.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers ORDER BY name DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListWithSummary agrega conteo de facturas y totales por estado para los
// clientes que coinciden por nombre o email. LEFT JOIN + SUM condicional:
// un cliente sin facturas sale con totales en cero, no se pierde.
func (r *CustomerRepo) ListWithSummary(ctx context.Context, query string) ([]repository.CustomerSummary, error) {
	const sqlQuery = `
		SELECT
		  c.id, c.name, c.email, c.image_url,
		  COUNT(i.id)                                                    AS total_invoices,
		  COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
		  COALESCE(SUM(CASE WHEN i.status = 'paid'    THEN i.amount ELSE 0 END), 0) AS total_paid
		FROM customers c
		LEFT JOIN invoices i ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		GROUP BY c.id, c.name, c.email, c.image_url
		ORDER BY c.name ASC`
	rows, err := r.q.Query(ctx, sqlQuery, containsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("list customers with summary: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerSummary
	for rows.Next() {
		var s repository.CustomerSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.ImageURL,
			&s.TotalInvoices, &s.TotalPending, &s.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("scan customer summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Create persiste un cliente. Solo lo usa el seed; el core nunca muta clientes.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, customer.ID, customer.Name, customer.Email, customer.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}
