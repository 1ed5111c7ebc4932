package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }
func intp(n int) *int           { return &n }

func pedidoRequest(code string) dto.PedidoRequest {
	return dto.PedidoRequest{
		Pedido:      strp(code),
		Cliente:     strp("Ana"),
		Tienda:      strp("Shop"),
		Descripcion: strp("Zapatos"),
		Estado:      strp("pendiente"),
		Costo:       floatp(10.5),
	}
}

func TestPedido_CreateYGet(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	created, err := uc.Create(ctx, pedidoRequest("P1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 0.0, created.Envio, "envio vale 0 si no se envía")
	assert.Equal(t, 0.0, created.CostoCompra)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestPedido_CreateCampoFaltante(t *testing.T) {
	in := pedidoRequest("P1")
	in.Costo = nil

	_, err := usecase.NewPedidoUseCase(memory.NewStore()).Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"costo"}, verr.Fields)
}

func TestPedido_CodigoDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	_, err := uc.Create(ctx, pedidoRequest("P1"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, pedidoRequest("P1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPedido_PatchSoloEstado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	created, err := uc.Create(ctx, pedidoRequest("P1"))
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	patched, err := uc.Patch(ctx, created.ID, dto.PatchPedidoRequest{Estado: strp("enviado")})
	require.NoError(t, err)
	assert.Equal(t, "enviado", patched.Estado)
	assert.Equal(t, created.Pedido, patched.Pedido)
	assert.Equal(t, created.Cliente, patched.Cliente)
	assert.Equal(t, created.Costo, patched.Costo)
	assert.Equal(t, created.CreatedAt, patched.CreatedAt)
	assert.True(t, patched.UpdatedAt.After(created.UpdatedAt))
}

func TestPedido_UpdateReemplazaTodo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	in := pedidoRequest("P1")
	in.Envio = floatp(3)
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	repl := pedidoRequest("P1-B")
	repl.Cliente = strp("Luis")
	updated, err := uc.Update(ctx, created.ID, repl)
	require.NoError(t, err)
	assert.Equal(t, "P1-B", updated.Pedido)
	assert.Equal(t, "Luis", updated.Cliente)
	assert.Equal(t, 0.0, updated.Envio, "PUT sin envio lo deja en 0")
}

func TestPedido_PatchCodigoDeOtroPedido(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	_, err := uc.Create(ctx, pedidoRequest("P1"))
	require.NoError(t, err)
	p2, err := uc.Create(ctx, pedidoRequest("P2"))
	require.NoError(t, err)

	_, err = uc.Patch(ctx, p2.ID, dto.PatchPedidoRequest{Pedido: strp("P1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPedido_NoExiste(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	_, err := uc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, 42, pedidoRequest("P1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Patch(ctx, 42, dto.PatchPedidoRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 42), domain.ErrNotFound)
}

func TestPedido_DeleteRepetido(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	created, err := uc.Create(ctx, pedidoRequest("P1"))
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedido_Paginacion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())
	for i := 1; i <= 5; i++ {
		_, err := uc.Create(ctx, pedidoRequest(fmt.Sprintf("P%d", i)))
		require.NoError(t, err)
	}

	first, err := uc.List(ctx, dto.PageRequest{Skip: 0, Limit: intp(2)})
	require.NoError(t, err)
	second, err := uc.List(ctx, dto.PageRequest{Skip: 2, Limit: intp(2)})
	require.NoError(t, err)
	all, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "P1", first[0].Pedido)
	assert.Equal(t, "P2", first[1].Pedido)
	assert.Equal(t, "P3", second[0].Pedido)
	assert.Equal(t, "P4", second[1].Pedido)
	assert.Len(t, all, 5)
}

func TestPedido_ListLimitCero(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())
	_, err := uc.Create(ctx, pedidoRequest("P1"))
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.PageRequest{Limit: intp(0)})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPedido_ListVacio(t *testing.T) {
	list, err := usecase.NewPedidoUseCase(memory.NewStore()).List(context.Background(), dto.PageRequest{Skip: 10})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPedido_Totals(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	a := pedidoRequest("P1")
	a.Costo = floatp(0.1)
	b := pedidoRequest("P2")
	b.Costo = floatp(0.2)
	c := pedidoRequest("P3")
	c.Estado = strp("entregado")
	c.Costo = floatp(5)
	c.Envio = floatp(1.25)
	for _, in := range []dto.PedidoRequest{a, b, c} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.Totals(ctx)
	require.NoError(t, err)
	require.Len(t, out.PorEstado, 2)
	assert.Equal(t, "entregado", out.PorEstado[0].Estado)
	assert.Equal(t, "pendiente", out.PorEstado[1].Estado)
	assert.Equal(t, 0.3, out.PorEstado[1].Costo, "las sumas se hacen en decimal")
	assert.Equal(t, int64(3), out.Total.Pedidos)
	assert.Equal(t, 5.3, out.Total.Costo)
	assert.Equal(t, 1.25, out.Total.Envio)
}

// failingTx simula una falla del almacenamiento.
type failingTx struct{ err error }

func (f failingTx) Run(context.Context, func(repository.Stores) error) error { return f.err }

func TestPedido_ErrorDeAlmacenamiento(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := usecase.NewPedidoUseCase(failingTx{err: boom}).Create(context.Background(), pedidoRequest("P1"))
	assert.ErrorIs(t, err, boom)
}
