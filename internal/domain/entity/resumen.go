package entity

import "time"

// Resumen es el resumen de ventas de un periodo. Es dueño exclusivo de sus Detalles.
type Resumen struct {
	ID                 int64
	Fecha              time.Time
	TotalVentas        float64
	TotalCostos        float64
	Ganancia           float64
	Comision           float64
	ImpuestosCliente   float64
	ImpuestosProveedor float64
	Abono              float64
	Descuentos         float64
	Detalles           []DetalleResumen
}

// DetalleResumen es una línea del resumen; no existe sin su Resumen.
type DetalleResumen struct {
	ID        int64
	ResumenID int64
	Pedido    string
	Cliente   string
	Venta     float64
	Costo     float64
	Envio     float64
}
