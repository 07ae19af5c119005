// Package pdf implementa la exportación PDF del resumen del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen del Inventario + fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / valor stock / costo / revenue          │
//	│  MOVIMIENTOS: entradas vs salidas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: productos bajo el umbral de stock                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/application/reports"
)

var _ reports.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean con
// separador de miles según el locale es.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerateSummaryPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, summary *dto.SummaryResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen del Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.totalsRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(movementsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(lowStockRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().UTC().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RESUMEN DEL INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// totalsRows: métricas agregadas en pares etiqueta/valor.
func (g *MarotoPDFGenerator) totalsRows(summary *dto.SummaryResponse) []core.Row {
	metric := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(6).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(6).Add(text.New(value, props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}
	return []core.Row{
		metric("Productos registrados:", g.printer.Sprintf("%d", summary.ProductsCount)),
		metric("Valor del stock (precio de venta):", g.money(summary.TotalStockValue)),
		metric("Costo del stock (precio de compra):", g.money(summary.TotalStockCost)),
		metric("Revenue potencial:", g.money(summary.TotalPotentialRevenue)),
	}
}

// movementsRow: conteo de entradas y salidas registradas.
func movementsRow(summary *dto.SummaryResponse) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Entradas registradas", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", summary.TotalEntries), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 5,
			}),
		),
		col.New(6).Add(
			text.New("Salidas registradas", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", summary.TotalExits), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 5,
			}),
		),
	)
}

// lowStockRows: tabla de productos bajo el umbral, los más urgentes primero.
func lowStockRows(summary *dto.SummaryResponse) []core.Row {
	title := fmt.Sprintf("PRODUCTOS CON STOCK BAJO (umbral: %d, total en alerta: %d)",
		summary.LowStockThreshold, summary.LowStockCount)
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 2,
			}),
		)),
	}

	if len(summary.LowStockProducts) == 0 {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New("Ningún producto bajo el umbral.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
		return rows
	}

	rows = append(rows, row.New(7).Add(
		headerCell("Producto", 6, align.Left),
		headerCell("Código de barras", 4, align.Left),
		headerCell("Stock", 2, align.Right),
	))
	for _, p := range summary.LowStockProducts {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Barcode, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.CurrentStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

// money formatea un decimal con separador de miles y dos decimales.
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("%.2f", f)
}
