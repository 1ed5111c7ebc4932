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

var _ repository.ResumenRepository = (*ResumenRepo)(nil)

const (
	resumenColumns = `id, fecha, total_ventas, total_costos, ganancia, comision,
		impuestos_cliente, impuestos_proveedor, abono, descuentos`
	detalleColumns = `id, resumen_id, pedido, cliente, venta, costo, envio`
)

// ResumenRepo implementación del puerto ResumenRepository sobre PostgreSQL.
// Los detalles viven en detalle_resumen con ON DELETE CASCADE.
type ResumenRepo struct {
	q Querier
}

// NewResumenRepository construye el adaptador de persistencia para resúmenes.
func NewResumenRepository(q Querier) *ResumenRepo {
	return &ResumenRepo{q: q}
}

// Create persiste la cabecera del resumen y asigna su ID.
func (r *ResumenRepo) Create(ctx context.Context, res *entity.Resumen) error {
	query := `
		INSERT INTO resumenes (fecha, total_ventas, total_costos, ganancia, comision,
			impuestos_cliente, impuestos_proveedor, abono, descuentos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		res.Fecha, res.TotalVentas, res.TotalCostos, res.Ganancia, res.Comision,
		res.ImpuestosCliente, res.ImpuestosProveedor, res.Abono, res.Descuentos,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("insert resumen: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea del resumen. Un resumen inexistente viola la FK y devuelve ErrNotFound.
func (r *ResumenRepo) CreateDetail(ctx context.Context, det *entity.DetalleResumen) error {
	query := `
		INSERT INTO detalle_resumen (resumen_id, pedido, cliente, venta, costo, envio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		det.ResumenID, det.Pedido, det.Cliente, det.Venta, det.Costo, det.Envio,
	).Scan(&det.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert detalle resumen: %w", err)
	}
	return nil
}

// GetByID obtiene el resumen con sus detalles.
func (r *ResumenRepo) GetByID(ctx context.Context, id int64) (*entity.Resumen, error) {
	query := `SELECT ` + resumenColumns + ` FROM resumenes WHERE id = $1`
	res, err := scanResumen(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resumen: %w", err)
	}
	detalles, err := r.listDetalles(ctx, `WHERE resumen_id = $1`, id)
	if err != nil {
		return nil, err
	}
	res.Detalles = detalles[res.ID]
	return res, nil
}

// List devuelve todos los resúmenes con sus detalles (dos consultas, sin N+1).
func (r *ResumenRepo) List(ctx context.Context) ([]*entity.Resumen, error) {
	rows, err := r.q.Query(ctx, `SELECT `+resumenColumns+` FROM resumenes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list resumenes: %w", err)
	}
	var list []*entity.Resumen
	for rows.Next() {
		res, err := scanResumen(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		list = append(list, res)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resumenes: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	detalles, err := r.listDetalles(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, res := range list {
		res.Detalles = detalles[res.ID]
	}
	return list, nil
}

// Update reescribe la cabecera del resumen.
func (r *ResumenRepo) Update(ctx context.Context, res *entity.Resumen) error {
	query := `
		UPDATE resumenes SET fecha = $2, total_ventas = $3, total_costos = $4, ganancia = $5, comision = $6,
			impuestos_cliente = $7, impuestos_proveedor = $8, abono = $9, descuentos = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		res.ID, res.Fecha, res.TotalVentas, res.TotalCostos, res.Ganancia, res.Comision,
		res.ImpuestosCliente, res.ImpuestosProveedor, res.Abono, res.Descuentos,
	)
	if err != nil {
		return fmt.Errorf("update resumen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetails elimina todas las líneas del resumen.
func (r *ResumenRepo) DeleteDetails(ctx context.Context, resumenID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM detalle_resumen WHERE resumen_id = $1`, resumenID); err != nil {
		return fmt.Errorf("delete detalles resumen: %w", err)
	}
	return nil
}

// Delete elimina el resumen; la FK borra sus detalles en cascada.
func (r *ResumenRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM resumenes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resumen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// listDetalles agrupa por resumen_id las líneas que cumplen where.
func (r *ResumenRepo) listDetalles(ctx context.Context, where string, args ...any) (map[int64][]entity.DetalleResumen, error) {
	query := `SELECT ` + detalleColumns + ` FROM detalle_resumen ` + where + ` ORDER BY resumen_id, id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detalles resumen: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.DetalleResumen)
	for rows.Next() {
		var d entity.DetalleResumen
		if err := rows.Scan(&d.ID, &d.ResumenID, &d.Pedido, &d.Cliente, &d.Venta, &d.Costo, &d.Envio); err != nil {
			return nil, fmt.Errorf("scan detalle resumen: %w", err)
		}
		out[d.ResumenID] = append(out[d.ResumenID], d)
	}
	return out, rows.Err()
}

func scanResumen(row pgx.Row) (*entity.Resumen, error) {
	var res entity.Resumen
	if err := row.Scan(
		&res.ID, &res.Fecha, &res.TotalVentas, &res.TotalCostos, &res.Ganancia, &res.Comision,
		&res.ImpuestosCliente, &res.ImpuestosProveedor, &res.Abono, &res.Descuentos,
	); err != nil {
		return nil, err
	}
	res.Fecha = utc(res.Fecha)
	return &res, nil
}
