package entity

// Revenue es un punto del gráfico de ingresos mensuales. Solo lectura en el
// core; lo alimenta el seed o un ETL externo. No hay FK hacia otras tablas.
type Revenue struct {
	ID      int64
	Month   string // etiqueta, ej. "Jan"
	Revenue int64
}
