package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// latestLimit facturas del widget de últimas facturas.
const latestLimit = 5

// DashboardUseCase lecturas del panel principal: gráfico de ingresos, últimas
// facturas y tarjetas de agregados.
type DashboardUseCase struct {
	revenueRepo   repository.RevenueRepository
	invoiceRepo   repository.InvoiceRepository
	dashboardRepo repository.DashboardRepository
	log           *logger.Logger
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(
	revenueRepo repository.RevenueRepository,
	invoiceRepo repository.InvoiceRepository,
	dashboardRepo repository.DashboardRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		revenueRepo:   revenueRepo,
		invoiceRepo:   invoiceRepo,
		dashboardRepo: dashboardRepo,
		log:           log,
	}
}

// Revenue devuelve el gráfico de ingresos mensuales en orden de inserción.
func (uc *DashboardUseCase) Revenue(ctx context.Context) ([]dto.RevenueDTO, error) {
	rows, err := uc.revenueRepo.List(ctx)
	if err != nil {
		return nil, uc.dataErr("dashboard.Revenue", err)
	}
	list := make([]dto.RevenueDTO, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.RevenueDTO{Month: r.Month, Revenue: r.Revenue})
	}
	return list, nil
}

// LatestInvoices devuelve las 5 facturas más recientes con el monto ya
// formateado como moneda.
func (uc *DashboardUseCase) LatestInvoices(ctx context.Context) ([]dto.LatestInvoiceDTO, error) {
	rows, err := uc.invoiceRepo.Latest(ctx, latestLimit)
	if err != nil {
		return nil, uc.dataErr("dashboard.LatestInvoices", err)
	}
	list := make([]dto.LatestInvoiceDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, dto.LatestInvoiceDTO{
			ID:       row.ID,
			Name:     row.CustomerName,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   money.FormatCents(row.Amount),
		})
	}
	return list, nil
}

// CardData ejecuta los cuatro agregados de las tarjetas en paralelo y los
// combina cuando todos terminan. Si cualquiera falla, falla la llamada
// completa; no hay resultados parciales.
func (uc *DashboardUseCase) CardData(ctx context.Context) (*dto.CardDataDTO, error) {
	var (
		numInvoices  int64
		numCustomers int64
		totalPaid    int64
		totalPending int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		numInvoices, err = uc.dashboardRepo.CountInvoices(gctx)
		return err
	})
	g.Go(func() (err error) {
		numCustomers, err = uc.dashboardRepo.CountCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalPaid, err = uc.dashboardRepo.SumInvoiceAmountByStatus(gctx, entity.InvoiceStatusPaid)
		return err
	})
	g.Go(func() (err error) {
		totalPending, err = uc.dashboardRepo.SumInvoiceAmountByStatus(gctx, entity.InvoiceStatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, uc.dataErr("dashboard.CardData", err)
	}

	return &dto.CardDataDTO{
		NumberOfInvoices:     numInvoices,
		NumberOfCustomers:    numCustomers,
		TotalPaidInvoices:    money.FormatCents(totalPaid),
		TotalPendingInvoices: money.FormatCents(totalPending),
	}, nil
}

func (uc *DashboardUseCase) dataErr(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("error de base de datos")
	return domain.ErrDataAccess
}
