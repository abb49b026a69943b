package dto

// CustomerFieldDTO opción id+nombre para el selector de clientes del formulario.
type CustomerFieldDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerSummaryDTO fila de la tabla de clientes con totales formateados.
type CustomerSummaryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
