package repository

import "context"

// Stores agrupa los repositorios atados a una misma transacción.
type Stores struct {
	Users     UserRepository
	Pedidos   PedidoRepository
	Resumenes ResumenRepository
	Products  ProductRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn retorna nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(s Stores) error) error
}
