package entity

import "time"

// Estados válidos para Invoice.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// ValidInvoiceStatus indica si el estado es uno de los admitidos.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice representa una factura del panel.
// Amount siempre se guarda en centavos (entero, nunca negativo); las capas de
// presentación dividen entre 100. Date e ID son inmutables después de crear.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     string
	Date       time.Time // día calendario, sin componente horario
}
