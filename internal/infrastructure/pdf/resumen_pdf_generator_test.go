package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

func TestGenerateResumenPDF(t *testing.T) {
	g := NewResumenPDFGenerator("pedidos-api")
	out, err := g.GenerateResumenPDF(context.Background(), &entity.Resumen{
		ID:          1,
		Fecha:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		TotalVentas: 100, TotalCostos: 60, Ganancia: 40,
		Detalles: []entity.DetalleResumen{
			{Pedido: "P1", Cliente: "Ana", Venta: 60, Costo: 35, Envio: 2},
			{Pedido: "P2", Cliente: "Luis", Venta: 40, Costo: 25, Envio: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateResumenPDF_SinDetalles(t *testing.T) {
	out, err := NewResumenPDFGenerator("pedidos-api").GenerateResumenPDF(context.Background(), &entity.Resumen{ID: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestMoney(t *testing.T) {
	g := NewResumenPDFGenerator("x")
	assert.Equal(t, "$1.234.567,89", g.money(1234567.891))
}
