package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// PedidoUseCase casos de uso CRUD para pedidos. Cada operación corre en su propia transacción.
type PedidoUseCase struct {
	tx  repository.TxRunner
	now func() time.Time
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(tx repository.TxRunner) *PedidoUseCase {
	return &PedidoUseCase{tx: tx, now: nowUTC}
}

// Create crea un pedido. Envio y CostoCompra valen 0 si no se envían.
func (uc *PedidoUseCase) Create(ctx context.Context, in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.Pedido{CreatedAt: now, UpdatedAt: now}
	applyPedidoRequest(p, in)

	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		existing, err := s.Pedidos.GetByCode(ctx, p.Pedido)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return s.Pedidos.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// List lista pedidos en orden de inserción.
func (uc *PedidoUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.PedidoResponse, error) {
	skip, limit := page.Bounds()
	var list []*entity.Pedido
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		list, err = s.Pedidos.List(ctx, limit, skip)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPedidoResponse(p))
	}
	return items, nil
}

// GetByID obtiene un pedido por ID.
func (uc *PedidoUseCase) GetByID(ctx context.Context, id int64) (*dto.PedidoResponse, error) {
	var p *entity.Pedido
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		p, err = s.Pedidos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// Update reemplaza todos los campos del pedido.
func (uc *PedidoUseCase) Update(ctx context.Context, id int64, in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, id, func(p *entity.Pedido) {
		applyPedidoRequest(p, in)
	})
}

// Patch aplica solo los campos presentes en la entrada.
func (uc *PedidoUseCase) Patch(ctx context.Context, id int64, in dto.PatchPedidoRequest) (*dto.PedidoResponse, error) {
	return uc.mutate(ctx, id, func(p *entity.Pedido) {
		applyPedidoPatch(p, in)
	})
}

// Delete elimina un pedido. Devuelve ErrNotFound si no existe (también en borrados repetidos).
func (uc *PedidoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(s repository.Stores) error {
		p, err := s.Pedidos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return s.Pedidos.Delete(ctx, id)
	})
}

// Totals agrega montos por estado y el total general.
func (uc *PedidoUseCase) Totals(ctx context.Context) (*dto.TotalesResponse, error) {
	var rows []entity.TotalesPedidos
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		rows, err = s.Pedidos.TotalsByEstado(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := &dto.TotalesResponse{PorEstado: make([]dto.TotalEstado, 0, len(rows))}
	total := entity.TotalesPedidos{Costo: decimal.Zero, Envio: decimal.Zero, CostoCompra: decimal.Zero}
	for _, r := range rows {
		out.PorEstado = append(out.PorEstado, toTotalEstado(r))
		total.Pedidos += r.Pedidos
		total.Costo = total.Costo.Add(r.Costo)
		total.Envio = total.Envio.Add(r.Envio)
		total.CostoCompra = total.CostoCompra.Add(r.CostoCompra)
	}
	out.Total = toTotalEstado(total)
	return out, nil
}

// mutate carga el pedido, aplica fn, refresca UpdatedAt y persiste, todo en una transacción.
func (uc *PedidoUseCase) mutate(ctx context.Context, id int64, fn func(p *entity.Pedido)) (*dto.PedidoResponse, error) {
	var p *entity.Pedido
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		p, err = s.Pedidos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		prevCode := p.Pedido
		fn(p)
		if p.Pedido != prevCode {
			other, err := s.Pedidos.GetByCode(ctx, p.Pedido)
			if err != nil {
				return err
			}
			if other != nil && other.ID != p.ID {
				return domain.ErrDuplicate
			}
		}
		p.UpdatedAt = uc.now()
		return s.Pedidos.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// applyPedidoRequest copia todos los campos de una entrada completa (ya validada).
func applyPedidoRequest(p *entity.Pedido, in dto.PedidoRequest) {
	p.Pedido = *in.Pedido
	p.Cliente = *in.Cliente
	p.Tienda = *in.Tienda
	p.Descripcion = *in.Descripcion
	p.Estado = *in.Estado
	p.Costo = *in.Costo
	p.Envio = derefFloat(in.Envio)
	p.CostoCompra = derefFloat(in.CostoCompra)
}

// applyPedidoPatch copia solo los campos presentes.
func applyPedidoPatch(p *entity.Pedido, in dto.PatchPedidoRequest) {
	if in.Pedido != nil {
		p.Pedido = *in.Pedido
	}
	if in.Cliente != nil {
		p.Cliente = *in.Cliente
	}
	if in.Tienda != nil {
		p.Tienda = *in.Tienda
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if in.Costo != nil {
		p.Costo = *in.Costo
	}
	if in.Envio != nil {
		p.Envio = *in.Envio
	}
	if in.CostoCompra != nil {
		p.CostoCompra = *in.CostoCompra
	}
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	return &dto.PedidoResponse{
		ID:          p.ID,
		Pedido:      p.Pedido,
		Cliente:     p.Cliente,
		Tienda:      p.Tienda,
		Descripcion: p.Descripcion,
		Estado:      p.Estado,
		Costo:       p.Costo,
		Envio:       p.Envio,
		CostoCompra: p.CostoCompra,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toTotalEstado(t entity.TotalesPedidos) dto.TotalEstado {
	return dto.TotalEstado{
		Estado:      t.Estado,
		Pedidos:     t.Pedidos,
		Costo:       t.Costo.Round(2).InexactFloat64(),
		Envio:       t.Envio.Round(2).InexactFloat64(),
		CostoCompra: t.CostoCompra.Round(2).InexactFloat64(),
	}
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nowUTC trunca a microsegundos, la precisión de timestamptz.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
