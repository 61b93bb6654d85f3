// Package pdf implementa la exportación del reporte de stock bajo como PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + empresa  │  Generado el + ventana (días)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días |   │
//	│         Proveedor                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de alertas                                      │
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

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 180, Green: 50, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ alerts.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa alerts.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockPDF(
	_ context.Context,
	report *dto.LowStockAlertReportDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock Bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Items) == 0 {
		m.AddRows(row.New(12).Add(
			col.New(12).Add(
				text.New("Sin alertas: ningún producto con demanda reciente está bajo su umbral.", props.Text{
					Size: 10, Top: 4, Align: align.Center, Color: colorGray,
				}),
			),
		))
	} else {
		m.AddRows(tableHeaderRow())
		for _, item := range report.Items {
			m.AddRows(tableDetailRow(item))
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación + ventana (der).
func headerRow(report *dto.LowStockAlertReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Alertas de Stock Bajo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Empresa: "+report.CompanyID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 2, Align: align.Right,
			}),
			text.New(fmt.Sprintf("Ventana de ventas: %d días", report.LookbackDays), props.Text{
				Size: 9, Top: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(3).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Bodega", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(1).Add(text.New("Umbral", headerRight)),
		col.New(1).Add(text.New("Días", headerRight)),
		col.New(2).Add(text.New("Proveedor", header)),
	)
}

func tableDetailRow(item dto.LowStockAlertDTO) core.Row {
	cell := props.Text{Size: 8, Top: 1.5}
	cellRight := props.Text{Size: 8, Top: 1.5, Align: align.Right}

	days := "—"
	if item.DaysUntilStockout != nil {
		days = fmt.Sprintf("%d", *item.DaysUntilStockout)
	}
	supplier := "—"
	if item.Supplier != nil {
		supplier = item.Supplier.Name
	}

	return row.New(6).Add(
		col.New(2).Add(text.New(item.SKU, cell)),
		col.New(3).Add(text.New(item.ProductName, cell)),
		col.New(2).Add(text.New(item.WarehouseName, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.CurrentStock), cellRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Threshold), cellRight)),
		col.New(1).Add(text.New(days, cellRight)),
		col.New(2).Add(text.New(supplier, cell)),
	)
}

func footerRow(report *dto.LowStockAlertReportDTO) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de alertas: %d", len(report.Items)), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
