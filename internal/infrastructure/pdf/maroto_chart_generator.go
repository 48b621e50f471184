// Package pdf genera la tabla de conversión de unidades de un Item como PDF
// imprimible (la hoja que los operarios pegan en la estantería).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del item + código   │  Unidad base          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Unidad | Nombre | Origen | Factor a base | Decs     │
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

	"github.com/jhoicas/uom-engine/internal/application/units"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	domuom "github.com/jhoicas/uom-engine/internal/domain/uom"
)

var _ units.ChartPDFGenerator = (*MarotoChartGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoChartGenerator implementa units.ChartPDFGenerator usando Maroto v2.
type MarotoChartGenerator struct{}

// NewMarotoChartGenerator construye el generador.
func NewMarotoChartGenerator() *MarotoChartGenerator { return &MarotoChartGenerator{} }

// GenerateChart genera el PDF y devuelve sus bytes.
func (g *MarotoChartGenerator) GenerateChart(_ context.Context, item *entity.Item, unitsList []domuom.AvailableUnit) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tabla de conversión de unidades", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, u := range unitsList {
		m.AddRows(unitRow(u))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre y código del item (izq), unidad base (der).
func headerRow(item *entity.Item) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+item.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("UNIDAD BASE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(item.BaseUnitCode, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de unidades.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Unidad", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Origen", 2, align.Center),
		h("Factor a base", 3, align.Right),
		h("Dec.", 1, align.Center),
	)
}

// unitRow: una fila por unidad disponible.
func unitRow(u domuom.AvailableUnit) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(u.UnitCode, props.Text{Size: 8, Top: 1, Style: fontstyle.Bold})),
		col.New(4).Add(text.New(u.UnitName, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(string(u.Provenance), props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New(u.Factor.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", u.Precision), props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}
