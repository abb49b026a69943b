package views

import (
	"context"

	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// LogInvalidator registra la invalidación sin backend de caché. Se usa cuando
// no hay Redis configurado (desarrollo, single-node sin caché de vistas).
type LogInvalidator struct {
	log *logger.Logger
}

// NewLogInvalidator construye el invalidador de solo log.
func NewLogInvalidator(log *logger.Logger) *LogInvalidator {
	return &LogInvalidator{log: log}
}

// Invalidate deja constancia de la vista invalidada.
func (l *LogInvalidator) Invalidate(_ context.Context, view string) error {
	l.log.Debug().Str("view", view).Msg("vista invalidada (sin caché)")
	return nil
}
