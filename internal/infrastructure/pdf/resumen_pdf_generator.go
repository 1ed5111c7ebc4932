// Package pdf genera el reporte imprimible de un resumen de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app    │  Resumen N° + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Pedido | Cliente | Venta | Costo | Envío            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ventas, costos, ganancia, comisión, impuestos...  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ResumenPDFGenerator implementa usecase.ResumenPDFGenerator usando Maroto v2.
type ResumenPDFGenerator struct {
	appName string
	printer *message.Printer
}

// NewResumenPDFGenerator construye el generador. Los montos se formatean en español (1.234,50).
func NewResumenPDFGenerator(appName string) *ResumenPDFGenerator {
	return &ResumenPDFGenerator{
		appName: appName,
		printer: message.NewPrinter(language.Spanish),
	}
}

// GenerateResumenPDF genera el PDF y devuelve sus bytes.
func (g *ResumenPDFGenerator) GenerateResumenPDF(_ context.Context, r *entity.Resumen) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Resumen de ventas %d", r.ID), true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(r.Detalles) == 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("Sin detalles", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		)))
	}
	for _, d := range r.Detalles {
		m.AddRows(g.detailRow(d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ResumenPDFGenerator) headerRow(r *entity.Resumen) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", r.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+r.Fecha.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Pedido", 2, align.Left),
		h("Cliente", 4, align.Left),
		h("Venta", 2, align.Right),
		h("Costo", 2, align.Right),
		h("Envío", 2, align.Right),
	)
}

func (g *ResumenPDFGenerator) detailRow(d entity.DetalleResumen) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(d.Pedido, 2, align.Left),
		cell(d.Cliente, 4, align.Left),
		cell(g.money(d.Venta), 2, align.Right),
		cell(g.money(d.Costo), 2, align.Right),
		cell(g.money(d.Envio), 2, align.Right),
	)
}

// totalsRows: una fila por total, alineadas a la derecha; la ganancia va resaltada.
func (g *ResumenPDFGenerator) totalsRows(r *entity.Resumen) []core.Row {
	items := []struct {
		label string
		value float64
		grand bool
	}{
		{"Total ventas:", r.TotalVentas, false},
		{"Total costos:", r.TotalCostos, false},
		{"Comisión:", r.Comision, false},
		{"Impuestos cliente:", r.ImpuestosCliente, false},
		{"Impuestos proveedor:", r.ImpuestosProveedor, false},
		{"Abono:", r.Abono, false},
		{"Descuentos:", r.Descuentos, false},
		{"GANANCIA:", r.Ganancia, true},
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		style := props.Text{Size: 9, Align: align.Right, Right: 2}
		if it.grand {
			style = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(it.label, style)),
			col.New(3).Add(text.New(g.money(it.value), style)),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separadores del locale. Ej: 1234567.891 → "$1.234.567,89"
func (g *ResumenPDFGenerator) money(v float64) string {
	return g.printer.Sprintf("$%.2f", v)
}
