package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, pedido, cliente, tienda, descripcion, estado, costo, envio, costo_compra, created_at, updated_at`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste un nuevo pedido y asigna su ID.
func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (pedido, cliente, tienda, descripcion, estado, costo, envio, costo_compra, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Pedido, p.Cliente, p.Tienda, p.Descripcion, p.Estado,
		p.Costo, p.Envio, p.CostoCompra, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(ctx context.Context, id int64) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1`
	p, err := scanPedido(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un pedido por su código externo.
func (r *PedidoRepo) GetByCode(ctx context.Context, code string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE pedido = $1`
	p, err := scanPedido(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido by code: %w", err)
	}
	return p, nil
}

// Update reescribe todos los campos mutables del pedido.
func (r *PedidoRepo) Update(ctx context.Context, p *entity.Pedido) error {
	query := `
		UPDATE pedidos SET pedido = $2, cliente = $3, tienda = $4, descripcion = $5, estado = $6,
			costo = $7, envio = $8, costo_compra = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Pedido, p.Cliente, p.Tienda, p.Descripcion, p.Estado,
		p.Costo, p.Envio, p.CostoCompra, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista pedidos en orden de inserción con paginación.
func (r *PedidoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un pedido por ID.
func (r *PedidoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TotalsByEstado agrega montos por estado. Las sumas se castean a NUMERIC para no acumular error de float.
func (r *PedidoRepo) TotalsByEstado(ctx context.Context) ([]entity.TotalesPedidos, error) {
	query := `
		SELECT estado,
			COUNT(*),
			COALESCE(SUM(costo::numeric), 0),
			COALESCE(SUM(envio::numeric), 0),
			COALESCE(SUM(costo_compra::numeric), 0)
		FROM pedidos
		GROUP BY estado
		ORDER BY estado`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("totales pedidos: %w", err)
	}
	defer rows.Close()
	var out []entity.TotalesPedidos
	for rows.Next() {
		var t entity.TotalesPedidos
		if err := rows.Scan(&t.Estado, &t.Pedidos, &t.Costo, &t.Envio, &t.CostoCompra); err != nil {
			return nil, fmt.Errorf("scan totales: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	if err := row.Scan(
		&p.ID, &p.Pedido, &p.Cliente, &p.Tienda, &p.Descripcion, &p.Estado,
		&p.Costo, &p.Envio, &p.CostoCompra, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.CreatedAt = utc(p.CreatedAt)
	p.UpdatedAt = utc(p.UpdatedAt)
	return &p, nil
}
