package entity

import "github.com/shopspring/decimal"

// TotalesPedidos agrega montos de pedidos (por estado o global).
type TotalesPedidos struct {
	Estado      string
	Pedidos     int64
	Costo       decimal.Decimal
	Envio       decimal.Decimal
	CostoCompra decimal.Decimal
}
