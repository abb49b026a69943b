package invoices_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/invoices"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	rows      map[string]*entity.Invoice
	customers map[string]*entity.Customer
	seq       int
	failWith  error // si no es nil, toda operación falla con este error
}

func newFakeInvoiceRepo(customers ...*entity.Customer) *fakeInvoiceRepo {
	cm := make(map[string]*entity.Customer)
	for _, c := range customers {
		cm[c.ID] = c
	}
	return &fakeInvoiceRepo{rows: make(map[string]*entity.Invoice), customers: cm}
}

func (f *fakeInvoiceRepo) matching(query string) []repository.InvoiceWithCustomer {
	q := strings.ToLower(query)
	var out []repository.InvoiceWithCustomer
	for _, inv := range f.rows {
		c := f.customers[inv.CustomerID]
		if c == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		out = append(out, repository.InvoiceWithCustomer{
			ID: inv.ID, CustomerID: inv.CustomerID, Amount: inv.Amount,
			Status: inv.Status, Date: inv.Date,
			CustomerName: c.Name, Email: c.Email, ImageURL: c.ImageURL,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (f *fakeInvoiceRepo) Latest(_ context.Context, limit int) ([]repository.InvoiceWithCustomer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := f.matching("")
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := f.matching(query)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, query string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.matching(query))), nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	inv, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if f.failWith != nil {
		return f.failWith
	}
	if invoice.ID == "" {
		f.seq++
		invoice.ID = fmt.Sprintf("inv-%03d", f.seq)
	}
	cp := *invoice
	f.rows[invoice.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	if f.failWith != nil {
		return f.failWith
	}
	existing, ok := f.rows[invoice.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.CustomerID = invoice.CustomerID
	existing.Amount = invoice.Amount
	existing.Status = invoice.Status
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.rows, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) List(context.Context) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) ListWithSummary(context.Context, string) ([]repository.CustomerSummary, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Create(context.Context, *entity.Customer) error { return nil }

type fakeInvalidator struct {
	calls []string
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, view string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, view)
	return nil
}

type fakeReceipts struct{}

func (fakeReceipts) GenerateReceipt(*entity.Invoice, *entity.Customer) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

var (
	acme = &entity.Customer{ID: "c-acme", Name: "Acme", Email: "billing@acme.com", ImageURL: "/customers/acme.png"}
	beta = &entity.Customer{ID: "c-beta", Name: "Beta Corp", Email: "pagos@beta.io", ImageURL: "/customers/beta.png"}
)

func newUseCase(t *testing.T) (*invoices.InvoiceUseCase, *fakeInvoiceRepo, *fakeInvalidator) {
	t.Helper()
	repo := newFakeInvoiceRepo(acme, beta)
	inval := &fakeInvalidator{}
	custRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{acme.ID: acme, beta.ID: beta}}
	uc := invoices.NewInvoiceUseCase(repo, custRepo, inval, fakeReceipts{}, logger.Nop())
	return uc, repo, inval
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El monto persistido es exactamente input * 100, sin deriva de redondeo.
func TestCreate_MontoEnCentavosExacto(t *testing.T) {
	uc, repo, inval := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-09-10").Add(15 * time.Hour) })

	cases := []struct {
		amount string
		cents  int64
	}{
		{"157.95", 15795},
		{"0.01", 1},
		{"1000", 100000},
		{"6.66", 666},
		{"0", 0},
	}
	for _, tc := range cases {
		inv, err := uc.Create(context.Background(), dto.InvoiceForm{
			CustomerID: acme.ID, Amount: tc.amount, Status: entity.InvoiceStatusPending,
		})
		require.NoError(t, err, "monto %q debe ser válido", tc.amount)
		assert.Equal(t, tc.cents, inv.Amount, "monto %q", tc.amount)
		assert.Equal(t, tc.cents, repo.rows[inv.ID].Amount)
	}
	assert.Len(t, inval.calls, len(cases), "cada creación invalida la vista")
}

// La fecha se fija al día calendario UTC de la creación, sin componente horario.
func TestCreate_EstampaFechaDelDia(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	uc.SetNow(func() time.Time { return time.Date(2023, 9, 10, 23, 59, 59, 0, time.UTC) })

	inv, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "12.34", Status: entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, day(t, "2023-09-10"), inv.Date)
	assert.Equal(t, day(t, "2023-09-10"), repo.rows[inv.ID].Date)
}

// La validación acumula todos los campos inválidos; el store no se toca.
func TestCreate_ValidacionPorCampo(t *testing.T) {
	uc, repo, inval := newUseCase(t)

	_, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: "", Amount: "no-numérico", Status: "draft",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customerId")
	assert.Contains(t, verr.Fields, "amount")
	assert.Contains(t, verr.Fields, "status")
	assert.Empty(t, repo.rows, "nada debe persistirse con formulario inválido")
	assert.Empty(t, inval.calls, "nada que invalidar")
}

func TestCreate_MontoNegativoRechazado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "-5.00", Status: entity.InvoiceStatusPaid,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "amount")
}

func TestCreate_MasDeDosDecimalesRechazado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "1.999", Status: entity.InvoiceStatusPaid,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "amount")
}

// Un fallo del store se reporta como error genérico de acceso a datos.
func TestCreate_FalloDelStore(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	repo.failWith = errors.New("connection refused: detalle interno del driver")

	_, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "10.00", Status: entity.InvoiceStatusPaid,
	})
	require.ErrorIs(t, err, domain.ErrDataAccess)
	assert.NotContains(t, err.Error(), "driver", "el detalle del store no debe filtrarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / ByID
// ──────────────────────────────────────────────────────────────────────────────

// Editar cambia cliente, monto y estado; id y fecha quedan intactos.
func TestUpdate_ReflejaCambiosYPreservaIDyFecha(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-06-17") })

	created, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "100.00", Status: entity.InvoiceStatusPending,
	})
	require.NoError(t, err)

	err = uc.Update(context.Background(), created.ID, dto.InvoiceForm{
		CustomerID: beta.ID, Amount: "250.50", Status: entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)

	got, err := uc.ByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, beta.ID, got.CustomerID)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("250.50")),
		"ByID devuelve el monto en unidades de moneda, no centavos")
	assert.Equal(t, day(t, "2023-06-17"), repo.rows[created.ID].Date, "la fecha no se modifica al editar")
	assert.Equal(t, int64(25050), repo.rows[created.ID].Amount)
}

func TestUpdate_FacturaInexistente_NotFound(t *testing.T) {
	uc, _, inval := newUseCase(t)
	err := uc.Update(context.Background(), "no-existe", dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "10.00", Status: entity.InvoiceStatusPaid,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, inval.calls, "sin mutación no hay invalidación")
}

func TestByID_FacturaInexistente_NotFound(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.ByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Borrar elimina la fila de los listados y ByID posterior da not found.
// Borrar un id inexistente es éxito idempotente.
func TestDelete_IdempotenteYDesapareceDeListados(t *testing.T) {
	uc, _, inval := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-06-17") })

	created, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "99.99", Status: entity.InvoiceStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.ByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rows, err := uc.Filtered(context.Background(), "acme", 1)
	require.NoError(t, err)
	for _, r := range rows {
		assert.NotEqual(t, created.ID, r.ID, "la factura borrada no debe listarse")
	}

	// Segundo borrado del mismo id: éxito idempotente
	assert.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Len(t, inval.calls, 3, "crear + 2 borrados invalidan la vista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

// Pages*6 cubre todas las filas y la última página no está vacía
// (completitud de la paginación).
func TestPages_CompletitudDePaginacion(t *testing.T) {
	uc, _, _ := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-01-01") })

	// 13 facturas de Acme -> 3 páginas (6 + 6 + 1)
	for i := 0; i < 13; i++ {
		_, err := uc.Create(context.Background(), dto.InvoiceForm{
			CustomerID: acme.ID, Amount: "10.00", Status: entity.InvoiceStatusPending,
		})
		require.NoError(t, err)
	}

	pages, err := uc.Pages(context.Background(), "acme")
	require.NoError(t, err)
	require.Equal(t, int64(3), pages)

	last, err := uc.Filtered(context.Background(), "acme", int(pages))
	require.NoError(t, err)
	assert.NotEmpty(t, last, "la última página debe tener filas")

	count := 0
	for p := 1; p <= int(pages); p++ {
		rows, err := uc.Filtered(context.Background(), "acme", p)
		require.NoError(t, err)
		count += len(rows)
	}
	assert.Equal(t, 13, count, "las páginas deben cubrir todas las filas")
}

func TestPages_SinCoincidencias_CeroPaginas(t *testing.T) {
	uc, _, _ := newUseCase(t)
	pages, err := uc.Pages(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Equal(t, int64(0), pages)
}

// Búsqueda case-insensitive: "Acme" coincide con "acme" y "ACM".
func TestFiltered_BusquedaCaseInsensitive(t *testing.T) {
	uc, _, _ := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-01-01") })

	_, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "10.00", Status: entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)

	for _, q := range []string{"acme", "ACM", "Acme"} {
		rows, err := uc.Filtered(context.Background(), q, 1)
		require.NoError(t, err)
		assert.Len(t, rows, 1, "query %q debe coincidir", q)
	}
}

// Las filas del listado fusionan campos de factura y cliente.
func TestFiltered_FusionaFacturaYCliente(t *testing.T) {
	uc, _, _ := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-05-05") })

	_, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: beta.ID, Amount: "42.00", Status: entity.InvoiceStatusPending,
	})
	require.NoError(t, err)

	rows, err := uc.Filtered(context.Background(), "beta", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Beta Corp", rows[0].Name)
	assert.Equal(t, "pagos@beta.io", rows[0].Email)
	assert.Equal(t, "2023-05-05", rows[0].Date)
	assert.Equal(t, int64(4200), rows[0].Amount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptPDF_FacturaInexistente_NotFound(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.ReceiptPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiptPDF_DevuelveBytes(t *testing.T) {
	uc, _, _ := newUseCase(t)
	uc.SetNow(func() time.Time { return day(t, "2023-05-05") })

	created, err := uc.Create(context.Background(), dto.InvoiceForm{
		CustomerID: acme.ID, Amount: "42.00", Status: entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)

	data, err := uc.ReceiptPDF(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
