package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// El core solo lee usuarios; Create existe para el seed.
type UserRepository interface {
	// FindByEmail devuelve el usuario con ese email exacto o (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
}
