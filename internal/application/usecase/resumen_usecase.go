package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Mensajes de confirmación de resúmenes.
const (
	MsgResumenCreated = "Resumen guardado correctamente"
	MsgResumenUpdated = "Resumen actualizado correctamente"
	MsgResumenDeleted = "Resumen eliminado correctamente"
)

// ResumenUseCase casos de uso para resúmenes de ventas y sus detalles.
type ResumenUseCase struct {
	tx  repository.TxRunner
	pdf ResumenPDFGenerator
}

// NewResumenUseCase construye el caso de uso. pdf puede ser nil si no se exporta PDF.
func NewResumenUseCase(tx repository.TxRunner, pdf ResumenPDFGenerator) *ResumenUseCase {
	return &ResumenUseCase{tx: tx, pdf: pdf}
}

// Create persiste el resumen y sus detalles en una sola transacción.
func (uc *ResumenUseCase) Create(ctx context.Context, in dto.ResumenRequest) (*dto.MessageResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	r := &entity.Resumen{}
	applyResumenRequest(r, in)

	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		if err := s.Resumenes.Create(ctx, r); err != nil {
			return err
		}
		return insertDetalles(ctx, s.Resumenes, r.ID, in.Detalles)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: MsgResumenCreated}, nil
}

// List devuelve todos los resúmenes con sus detalles.
func (uc *ResumenUseCase) List(ctx context.Context) ([]dto.ResumenResponse, error) {
	var list []*entity.Resumen
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		list, err = s.Resumenes.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResumenResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResumenResponse(r))
	}
	return out, nil
}

// GetByID obtiene un resumen con sus detalles.
func (uc *ResumenUseCase) GetByID(ctx context.Context, id int64) (*dto.ResumenResponse, error) {
	r, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toResumenResponse(r)
	return &out, nil
}

// Update sobreescribe los campos escalares y reemplaza por completo la lista de detalles.
func (uc *ResumenUseCase) Update(ctx context.Context, id int64, in dto.ResumenRequest) (*dto.MessageResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		r, err := s.Resumenes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		applyResumenRequest(r, in)
		if err := s.Resumenes.Update(ctx, r); err != nil {
			return err
		}
		if err := s.Resumenes.DeleteDetails(ctx, id); err != nil {
			return err
		}
		return insertDetalles(ctx, s.Resumenes, id, in.Detalles)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: MsgResumenUpdated}, nil
}

// Delete elimina el resumen y sus detalles.
func (uc *ResumenUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		r, err := s.Resumenes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		if err := s.Resumenes.DeleteDetails(ctx, id); err != nil {
			return err
		}
		return s.Resumenes.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: MsgResumenDeleted}, nil
}

// PDF genera el PDF del resumen.
func (uc *ResumenUseCase) PDF(ctx context.Context, id int64) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("resumen pdf: generador no configurado")
	}
	r, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateResumenPDF(ctx, r)
}

func (uc *ResumenUseCase) load(ctx context.Context, id int64) (*entity.Resumen, error) {
	var r *entity.Resumen
	err := uc.tx.Run(ctx, func(s repository.Stores) error {
		var err error
		r, err = s.Resumenes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	return r, err
}

func insertDetalles(ctx context.Context, repo repository.ResumenRepository, resumenID int64, in []dto.DetalleResumenRequest) error {
	for _, d := range in {
		det := &entity.DetalleResumen{
			ResumenID: resumenID,
			Pedido:    derefString(d.Pedido),
			Cliente:   derefString(d.Cliente),
			Venta:     derefFloat(d.Venta),
			Costo:     derefFloat(d.Costo),
			Envio:     derefFloat(d.Envio),
		}
		if err := repo.CreateDetail(ctx, det); err != nil {
			return err
		}
	}
	return nil
}

func applyResumenRequest(r *entity.Resumen, in dto.ResumenRequest) {
	r.Fecha = in.Fecha.UTC().Truncate(time.Microsecond)
	r.TotalVentas = derefFloat(in.TotalVentas)
	r.TotalCostos = derefFloat(in.TotalCostos)
	r.Ganancia = derefFloat(in.Ganancia)
	r.Comision = derefFloat(in.Comision)
	r.ImpuestosCliente = derefFloat(in.ImpuestosCliente)
	r.ImpuestosProveedor = derefFloat(in.ImpuestosProveedor)
	r.Abono = derefFloat(in.Abono)
	r.Descuentos = derefFloat(in.Descuentos)
}

func toResumenResponse(r *entity.Resumen) dto.ResumenResponse {
	out := dto.ResumenResponse{
		ID:                 r.ID,
		Fecha:              r.Fecha,
		TotalVentas:        r.TotalVentas,
		TotalCostos:        r.TotalCostos,
		Ganancia:           r.Ganancia,
		Comision:           r.Comision,
		ImpuestosCliente:   r.ImpuestosCliente,
		ImpuestosProveedor: r.ImpuestosProveedor,
		Abono:              r.Abono,
		Descuentos:         r.Descuentos,
		Detalles:           make([]dto.DetalleResumenResponse, 0, len(r.Detalles)),
	}
	for _, d := range r.Detalles {
		out.Detalles = append(out.Detalles, dto.DetalleResumenResponse{
			ID:        d.ID,
			ResumenID: d.ResumenID,
			Pedido:    d.Pedido,
			Cliente:   d.Cliente,
			Venta:     d.Venta,
			Costo:     d.Costo,
			Envio:     d.Envio,
		})
	}
	return out
}
