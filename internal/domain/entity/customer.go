package entity

// Customer representa un cliente facturable. Puede tener cero o más facturas.
// El core no crea ni borra clientes; vienen del seed o de un proceso externo.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
