package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo lectura de la tabla revenue (alimentada por seed o ETL externo).
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador.
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// List devuelve todas las filas en orden de inserción (id ascendente).
func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	query := `SELECT id, month, revenue FROM revenue ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.ID, &rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

// Create inserta una fila de ingresos. Solo lo usa el seed.
func (r *RevenueRepo) Create(ctx context.Context, revenue *entity.Revenue) error {
	query := `INSERT INTO revenue (month, revenue) VALUES ($1, $2)`
	if _, err := r.q.Exec(ctx, query, revenue.Month, revenue.Revenue); err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}
