package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

func TestRun_ErrorDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("fallo de persistencia")

	err := store.Run(ctx, func(s repository.Stores) error {
		require.NoError(t, s.Pedidos.Create(ctx, &entity.Pedido{Pedido: "P1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.Run(ctx, func(s repository.Stores) error {
		p, err := s.Pedidos.GetByCode(ctx, "P1")
		require.NoError(t, err)
		assert.Nil(t, p, "el pedido no debe sobrevivir al rollback")
		return nil
	})
	require.NoError(t, err)
}

func TestRun_CommitPublicaEscrituras(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var id int64
	require.NoError(t, store.Run(ctx, func(s repository.Stores) error {
		p := &entity.Pedido{Pedido: "P1"}
		if err := s.Pedidos.Create(ctx, p); err != nil {
			return err
		}
		id = p.ID
		return nil
	}))
	assert.Equal(t, int64(1), id)

	require.NoError(t, store.Run(ctx, func(s repository.Stores) error {
		p, err := s.Pedidos.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "P1", p.Pedido)
		return nil
	}))
}

func TestPedidos_CodigoDuplicado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.Run(ctx, func(s repository.Stores) error {
		require.NoError(t, s.Pedidos.Create(ctx, &entity.Pedido{Pedido: "P1"}))
		return s.Pedidos.Create(ctx, &entity.Pedido{Pedido: "P1"})
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestResumenes_DeleteEnCascada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Run(ctx, func(s repository.Stores) error {
		r := &entity.Resumen{}
		require.NoError(t, s.Resumenes.Create(ctx, r))
		require.NoError(t, s.Resumenes.CreateDetail(ctx, &entity.DetalleResumen{ResumenID: r.ID, Pedido: "P1"}))
		require.NoError(t, s.Resumenes.CreateDetail(ctx, &entity.DetalleResumen{ResumenID: r.ID, Pedido: "P2"}))
		return s.Resumenes.Delete(ctx, r.ID)
	}))

	err := store.Run(ctx, func(s repository.Stores) error {
		list, err := s.Resumenes.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
		return s.Resumenes.CreateDetail(ctx, &entity.DetalleResumen{ResumenID: 1})
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un detalle huérfano no puede crearse")
}

func TestPedidos_TotalsByEstado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Run(ctx, func(s repository.Stores) error {
		for _, p := range []entity.Pedido{
			{Pedido: "P1", Estado: "pendiente", Costo: 10.1, Envio: 0.2},
			{Pedido: "P2", Estado: "enviado", Costo: 5},
			{Pedido: "P3", Estado: "pendiente", Costo: 0.2, CostoCompra: 3},
		} {
			p := p
			if err := s.Pedidos.Create(ctx, &p); err != nil {
				return err
			}
		}
		totals, err := s.Pedidos.TotalsByEstado(ctx)
		require.NoError(t, err)
		require.Len(t, totals, 2)
		assert.Equal(t, "enviado", totals[0].Estado)
		assert.Equal(t, "pendiente", totals[1].Estado)
		assert.Equal(t, int64(2), totals[1].Pedidos)
		assert.Equal(t, "10.3", totals[1].Costo.String())
		return nil
	}))
}
