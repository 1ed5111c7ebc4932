package entity

import "time"

// EstadoPendiente es el estado por defecto de la columna estado.
const EstadoPendiente = "pendiente"

// Pedido representa un pedido identificado por su código externo (único).
type Pedido struct {
	ID          int64
	Pedido      string // código externo
	Cliente     string
	Tienda      string
	Descripcion string
	Estado      string
	Costo       float64
	Envio       float64
	CostoCompra float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
