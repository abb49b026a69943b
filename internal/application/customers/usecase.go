package customers

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// CustomerUseCase lecturas de clientes: selector del formulario y tabla filtrada.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	log  *logger.Logger
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(repo repository.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, log: log}
}

// List devuelve id + nombre de todos los clientes (nombre descendente), para
// el selector del formulario de facturas.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerFieldDTO, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, uc.dataErr("customers.List", err)
	}
	list := make([]dto.CustomerFieldDTO, 0, len(rows))
	for _, c := range rows {
		list = append(list, dto.CustomerFieldDTO{ID: c.ID, Name: c.Name})
	}
	return list, nil
}

// Filtered devuelve la tabla de clientes que coinciden por nombre o email, con
// conteo de facturas y totales pendiente/pagado formateados como moneda.
func (uc *CustomerUseCase) Filtered(ctx context.Context, query string) ([]dto.CustomerSummaryDTO, error) {
	rows, err := uc.repo.ListWithSummary(ctx, query)
	if err != nil {
		return nil, uc.dataErr("customers.Filtered", err)
	}
	list := make([]dto.CustomerSummaryDTO, 0, len(rows))
	for _, s := range rows {
		list = append(list, dto.CustomerSummaryDTO{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			ImageURL:      s.ImageURL,
			TotalInvoices: s.TotalInvoices,
			TotalPending:  money.FormatCents(s.TotalPending),
			TotalPaid:     money.FormatCents(s.TotalPaid),
		})
	}
	return list, nil
}

func (uc *CustomerUseCase) dataErr(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("error de base de datos")
	return domain.ErrDataAccess
}
