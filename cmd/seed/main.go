// Carga el dataset de demostración: un usuario, clientes, facturas y el
// gráfico de ingresos. Idempotencia simple: si el usuario demo ya existe, no
// vuelve a insertar nada.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)

	const demoEmail = "user@nextmail.com"
	existing, err := userRepo.FindByEmail(ctx, demoEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("verificar usuario demo")
	}
	if existing != nil {
		log.Info().Msg("seed ya aplicado, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password demo")
	}
	if err := userRepo.Create(ctx, &entity.User{
		Name:     "User",
		Email:    demoEmail,
		Password: string(hash),
	}); err != nil {
		log.Fatal().Err(err).Msg("insertar usuario demo")
	}

	customers := []*entity.Customer{
		{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
	for _, c := range customers {
		if err := customerRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("customer", c.Name).Msg("insertar cliente")
		}
	}

	day := func(s string) time.Time {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			log.Fatal().Err(err).Str("date", s).Msg("fecha de seed inválida")
		}
		return t
	}
	invoices := []*entity.Invoice{
		{CustomerID: customers[0].ID, Amount: 15795, Status: entity.InvoiceStatusPending, Date: day("2022-12-06")},
		{CustomerID: customers[1].ID, Amount: 20348, Status: entity.InvoiceStatusPending, Date: day("2022-11-14")},
		{CustomerID: customers[4].ID, Amount: 3040, Status: entity.InvoiceStatusPaid, Date: day("2022-10-29")},
		{CustomerID: customers[3].ID, Amount: 44800, Status: entity.InvoiceStatusPaid, Date: day("2023-09-10")},
		{CustomerID: customers[5].ID, Amount: 34577, Status: entity.InvoiceStatusPending, Date: day("2023-08-05")},
		{CustomerID: customers[2].ID, Amount: 54246, Status: entity.InvoiceStatusPending, Date: day("2023-07-16")},
		{CustomerID: customers[0].ID, Amount: 666, Status: entity.InvoiceStatusPending, Date: day("2023-06-27")},
		{CustomerID: customers[3].ID, Amount: 32545, Status: entity.InvoiceStatusPaid, Date: day("2023-06-09")},
		{CustomerID: customers[4].ID, Amount: 1250, Status: entity.InvoiceStatusPaid, Date: day("2023-06-17")},
		{CustomerID: customers[5].ID, Amount: 8546, Status: entity.InvoiceStatusPaid, Date: day("2023-06-07")},
		{CustomerID: customers[1].ID, Amount: 500, Status: entity.InvoiceStatusPaid, Date: day("2023-08-19")},
		{CustomerID: customers[5].ID, Amount: 8945, Status: entity.InvoiceStatusPaid, Date: day("2023-06-03")},
		{CustomerID: customers[2].ID, Amount: 1000, Status: entity.InvoiceStatusPaid, Date: day("2022-06-05")},
	}
	for _, inv := range invoices {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			log.Fatal().Err(err).Msg("insertar factura")
		}
	}

	revenue := []entity.Revenue{
		{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200}, {Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300}, {Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500}, {Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500}, {Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000}, {Month: "Dec", Revenue: 4800},
	}
	for i := range revenue {
		if err := revenueRepo.Create(ctx, &revenue[i]); err != nil {
			log.Fatal().Err(err).Msg("insertar revenue")
		}
	}

	log.Info().
		Int("customers", len(customers)).
		Int("invoices", len(invoices)).
		Int("revenue", len(revenue)).
		Msg("seed aplicado")
}
