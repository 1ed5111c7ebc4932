package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para Pedido.
type PedidoRepository interface {
	// Create persiste el pedido y asigna p.ID. Código duplicado -> domain.ErrDuplicate.
	Create(ctx context.Context, p *entity.Pedido) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Pedido, error)
	// GetByCode busca por código externo; (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Pedido, error)
	Update(ctx context.Context, p *entity.Pedido) error
	// List devuelve pedidos en orden de inserción.
	List(ctx context.Context, limit, offset int) ([]*entity.Pedido, error)
	Delete(ctx context.Context, id int64) error
	// TotalsByEstado agrega montos agrupados por estado.
	TotalsByEstado(ctx context.Context) ([]entity.TotalesPedidos, error)
}
