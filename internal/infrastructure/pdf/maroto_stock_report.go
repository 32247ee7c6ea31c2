// Package pdf genera el reporte imprimible de stock por proceso con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planta + Proceso  │  Fecha de emisión              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | LOT | Recibido | Usado | Disponible      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: LOTs / Recibido / Usado / Disponible              │
//	└─────────────────────────────────────────────────────────────┘
//
// Las fuentes base de Maroto no incluyen glifos CJK, así que los rótulos
// fijos del reporte van en inglés; los datos (códigos, LOTs) son ASCII.
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

	"github.com/ksyee/vietnam-mes-simple/internal/application/report"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReport implementa report.PDFGenerator usando Maroto v2.
type MarotoStockReport struct {
	plantName string
}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport(plantName string) *MarotoStockReport {
	if plantName == "" {
		plantName = "Vietnam Harness Plant"
	}
	return &MarotoStockReport{plantName: plantName}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoStockReport) Generate(_ context.Context, data *report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Process Stock Report", true).
		WithAuthor(g.plantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.plantName, data.ProcessCode, data.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLotRows(data.Lots) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: planta + proceso (izq) y fecha de emisión (der).
func headerRow(plantName, processCode string, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(plantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Process: "+processCode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PROCESS STOCK REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de LOTs.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Material", 3, align.Left),
		h("LOT", 3, align.Left),
		h("Received", 2, align.Right),
		h("Used", 2, align.Right),
		h("Available", 2, align.Right),
	)
}

// tableLotRows: una fila por LOT, en el orden FIFO del proceso.
func tableLotRows(lots []entity.StockLot) []core.Row {
	result := make([]core.Row, 0, len(lots))
	for _, lot := range lots {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				lot.MaterialCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				lot.LotNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				lot.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				lot.UsedQty.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				lot.AvailableQty.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(data *report.StockReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total LOTs:"),
			label("Total received:"),
			label("Total used:"),
			label("Total available:"),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", data.Summary.TotalLots)),
			value(data.Summary.TotalQuantity.String()),
			value(data.Summary.TotalUsed.String()),
			value(data.Summary.TotalAvailable.String()),
		),
	)
}
