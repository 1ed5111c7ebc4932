package dto

import "time"

// DetalleResumenRequest línea de detalle en la entrada de un resumen.
type DetalleResumenRequest struct {
	Pedido  *string  `json:"pedido" validate:"required"`
	Cliente *string  `json:"cliente" validate:"required"`
	Venta   *float64 `json:"venta" validate:"required"`
	Costo   *float64 `json:"costo" validate:"required"`
	Envio   *float64 `json:"envio" validate:"required"`
}

// ResumenRequest entrada para crear o reemplazar un resumen. Detalles puede omitirse o venir vacío.
type ResumenRequest struct {
	Fecha              *time.Time              `json:"fecha" validate:"required"`
	TotalVentas        *float64                `json:"totalVentas" validate:"required"`
	TotalCostos        *float64                `json:"totalCostos" validate:"required"`
	Ganancia           *float64                `json:"ganancia" validate:"required"`
	Comision           *float64                `json:"comision" validate:"required"`
	ImpuestosCliente   *float64                `json:"impuestosCliente" validate:"required"`
	ImpuestosProveedor *float64                `json:"impuestosProveedor" validate:"required"`
	Abono              *float64                `json:"abono" validate:"required"`
	Descuentos         *float64                `json:"descuentos" validate:"required"`
	Detalles           []DetalleResumenRequest `json:"detalles" validate:"dive"`
}

// DetalleResumenResponse salida de una línea de detalle.
type DetalleResumenResponse struct {
	ID        int64   `json:"id"`
	ResumenID int64   `json:"resumen_id"`
	Pedido    string  `json:"pedido"`
	Cliente   string  `json:"cliente"`
	Venta     float64 `json:"venta"`
	Costo     float64 `json:"costo"`
	Envio     float64 `json:"envio"`
}

// ResumenResponse salida de un resumen con sus detalles.
type ResumenResponse struct {
	ID                 int64                    `json:"id"`
	Fecha              time.Time                `json:"fecha"`
	TotalVentas        float64                  `json:"totalVentas"`
	TotalCostos        float64                  `json:"totalCostos"`
	Ganancia           float64                  `json:"ganancia"`
	Comision           float64                  `json:"comision"`
	ImpuestosCliente   float64                  `json:"impuestosCliente"`
	ImpuestosProveedor float64                  `json:"impuestosProveedor"`
	Abono              float64                  `json:"abono"`
	Descuentos         float64                  `json:"descuentos"`
	Detalles           []DetalleResumenResponse `json:"detalles"`
}
