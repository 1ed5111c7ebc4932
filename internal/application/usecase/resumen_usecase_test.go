package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

func detalle(pedido string, venta float64) dto.DetalleResumenRequest {
	return dto.DetalleResumenRequest{
		Pedido:  strp(pedido),
		Cliente: strp("Ana"),
		Venta:   floatp(venta),
		Costo:   floatp(venta / 2),
		Envio:   floatp(1),
	}
}

func resumenRequest(detalles ...dto.DetalleResumenRequest) dto.ResumenRequest {
	fecha := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	return dto.ResumenRequest{
		Fecha:              &fecha,
		TotalVentas:        floatp(100),
		TotalCostos:        floatp(60),
		Ganancia:           floatp(40),
		Comision:           floatp(5),
		ImpuestosCliente:   floatp(1),
		ImpuestosProveedor: floatp(2),
		Abono:              floatp(0),
		Descuentos:         floatp(0),
		Detalles:           detalles,
	}
}

func TestResumen_CreateYList(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewResumenUseCase(memory.NewStore(), nil)

	out, err := uc.Create(ctx, resumenRequest(detalle("P1", 60), detalle("P2", 40)))
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgResumenCreated, out.Message)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 100.0, list[0].TotalVentas)
	require.Len(t, list[0].Detalles, 2)
	assert.Equal(t, "P1", list[0].Detalles[0].Pedido)
	assert.Equal(t, list[0].ID, list[0].Detalles[1].ResumenID)
}

func TestResumen_SinDetalles(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewResumenUseCase(memory.NewStore(), nil)

	_, err := uc.Create(ctx, resumenRequest())
	require.NoError(t, err)
	got, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, got.Detalles)
	assert.Empty(t, got.Detalles)
}

func TestResumen_DetalleIncompletoNoPersisteNada(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewResumenUseCase(memory.NewStore(), nil)

	bad := detalle("P2", 40)
	bad.Venta = nil
	_, err := uc.Create(ctx, resumenRequest(detalle("P1", 60), bad))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResumen_UpdateReemplazaDetalles(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewResumenUseCase(memory.NewStore(), nil)

	_, err := uc.Create(ctx, resumenRequest(detalle("P1", 60), detalle("P2", 40)))
	require.NoError(t, err)

	in := resumenRequest(detalle("P9", 10))
	in.Ganancia = floatp(7)
	out, err := uc.Update(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgResumenUpdated, out.Message)

	got, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Ganancia)
	require.Len(t, got.Detalles, 1)
	assert.Equal(t, "P9", got.Detalles[0].Pedido)
}

func TestResumen_DeleteEliminaDetalles(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewResumenUseCase(store, nil)

	_, err := uc.Create(ctx, resumenRequest(detalle("P1", 60)))
	require.NoError(t, err)
	out, err := uc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgResumenDeleted, out.Message)

	_, err = uc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Un resumen nuevo no hereda detalles del anterior.
	_, err = uc.Create(ctx, resumenRequest())
	require.NoError(t, err)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Detalles)
}

func TestResumen_UpdateNoExiste(t *testing.T) {
	_, err := usecase.NewResumenUseCase(memory.NewStore(), nil).Update(context.Background(), 5, resumenRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type fakePDF struct{ got *entity.Resumen }

func (f *fakePDF) GenerateResumenPDF(_ context.Context, r *entity.Resumen) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

func TestResumen_PDF(t *testing.T) {
	ctx := context.Background()
	gen := &fakePDF{}
	uc := usecase.NewResumenUseCase(memory.NewStore(), gen)

	_, err := uc.PDF(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, resumenRequest(detalle("P1", 60)))
	require.NoError(t, err)
	doc, err := uc.PDF(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(doc))
	require.NotNil(t, gen.got)
	assert.Len(t, gen.got.Detalles, 1)
}
