package dto

import "github.com/shopspring/decimal"

// InvoiceForm entrada de los formularios de crear/editar factura.
// Amount llega como texto numérico en unidades de moneda ("12.34").
type InvoiceForm struct {
	CustomerID string `json:"customer_id" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// InvoiceRowDTO fila del listado de facturas: factura + cliente fusionados.
type InvoiceRowDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `json:"date"`   // ISO, YYYY-MM-DD
	Amount     int64  `json:"amount"` // centavos
	Status     string `json:"status"`
}

// InvoiceFormDTO factura lista para precargar el formulario de edición.
// Amount va en unidades de moneda (centavos / 100), no en centavos.
type InvoiceFormDTO struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// LatestInvoiceDTO fila del widget de últimas facturas, con el monto ya
// formateado como moneda.
type LatestInvoiceDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoicePagesDTO total de páginas del listado filtrado.
type InvoicePagesDTO struct {
	TotalPages int64 `json:"total_pages"`
}
