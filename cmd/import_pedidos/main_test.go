package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

func TestImportCSV(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())
	csvData := strings.Join([]string{
		"pedido,cliente,tienda,descripcion,estado,costo,envio,costo_compra",
		"P1,Ana,T1,Zapatos,pendiente,10.5,1,7",
		"P2,Luis,T1,Bolso,,20",
		"P1,Ana,T1,Repetido,pendiente,1,,",
		"P3,Eva,T2,Gorra,enviado,diez,,",
		"P4,Eva,T2",
	}, "\n")

	var report bytes.Buffer
	res, err := importCSV(ctx, strings.NewReader(csvData), uc, &report)
	require.NoError(t, err)
	assert.Equal(t, importResult{Created: 2, Duplicated: 1, Invalid: 2}, res)
	assert.Contains(t, report.String(), `pedido "P1" ya existe`)
	assert.Contains(t, report.String(), "línea 5")

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 7.0, list[0].CostoCompra)
	assert.Equal(t, entity.EstadoPendiente, list[1].Estado, "estado vacío toma el valor por defecto")
	assert.Equal(t, 0.0, list[1].Envio)
}

func TestImportCSV_Latin1(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPedidoUseCase(memory.NewStore())

	utf8 := "pedido,cliente,tienda,descripcion,estado,costo\nP1,Begoña,T1,Camión,pendiente,5\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf8)
	require.NoError(t, err)

	r := transform.NewReader(strings.NewReader(latin), charmap.ISO8859_1.NewDecoder())
	res, err := importCSV(ctx, r, uc, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Begoña", list[0].Cliente)
	assert.Equal(t, "Camión", list[0].Descripcion)
}
