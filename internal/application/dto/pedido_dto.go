package dto

import "time"

// PedidoRequest entrada para crear (POST) o reemplazar (PUT) un pedido.
// Los punteros distinguen "ausente" de "vacío": un string vacío es válido, un campo ausente no.
type PedidoRequest struct {
	Pedido      *string  `json:"pedido" validate:"required"`
	Cliente     *string  `json:"cliente" validate:"required"`
	Tienda      *string  `json:"tienda" validate:"required"`
	Descripcion *string  `json:"descripcion" validate:"required"`
	Estado      *string  `json:"estado" validate:"required"`
	Costo       *float64 `json:"costo" validate:"required"`
	Envio       *float64 `json:"envio"`
	CostoCompra *float64 `json:"costo_compra"`
}

// PatchPedidoRequest entrada para actualización parcial: solo se aplican los campos presentes.
type PatchPedidoRequest struct {
	Pedido      *string  `json:"pedido"`
	Cliente     *string  `json:"cliente"`
	Tienda      *string  `json:"tienda"`
	Descripcion *string  `json:"descripcion"`
	Estado      *string  `json:"estado"`
	Costo       *float64 `json:"costo"`
	Envio       *float64 `json:"envio"`
	CostoCompra *float64 `json:"costo_compra"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID          int64     `json:"id"`
	Pedido      string    `json:"pedido"`
	Cliente     string    `json:"cliente"`
	Tienda      string    `json:"tienda"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	Costo       float64   `json:"costo"`
	Envio       float64   `json:"envio"`
	CostoCompra float64   `json:"costo_compra"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TotalEstado montos agregados de un grupo de pedidos.
type TotalEstado struct {
	Estado      string  `json:"estado,omitempty"`
	Pedidos     int64   `json:"pedidos"`
	Costo       float64 `json:"costo"`
	Envio       float64 `json:"envio"`
	CostoCompra float64 `json:"costo_compra"`
}

// TotalesResponse totales por estado más el total general.
type TotalesResponse struct {
	PorEstado []TotalEstado `json:"por_estado"`
	Total     TotalEstado   `json:"total"`
}
