package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// RevenueRepository define el puerto de lectura del gráfico de ingresos.
// La tabla la alimenta el seed o un ETL externo; Create existe para el seed.
type RevenueRepository interface {
	// List devuelve todas las filas en orden de inserción (id ascendente).
	List(ctx context.Context) ([]*entity.Revenue, error)

	Create(ctx context.Context, revenue *entity.Revenue) error
}
