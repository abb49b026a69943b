package dto

// RevenueDTO punto del gráfico de ingresos mensuales.
type RevenueDTO struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// CardDataDTO agregados de las tarjetas del dashboard. Los totales por estado
// van formateados como moneda; los conteos, como números.
type CardDataDTO struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
