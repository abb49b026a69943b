package invoices

import "time"

// SetNow fija el reloj del use case en tests.
func (uc *InvoiceUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
