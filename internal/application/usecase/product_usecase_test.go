package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

func TestProduct_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewStore())

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Caja", Price: 3.5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: floatp(4)})
	require.NoError(t, err)
	assert.Equal(t, "Caja", updated.Name)
	assert.Equal(t, 4.0, updated.Price)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_Validacion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewStore())

	_, err := uc.Create(ctx, dto.CreateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, 1, dto.UpdateProductRequest{Name: strp("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
