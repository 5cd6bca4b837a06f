package preview

import (
	"strconv"

	"github.com/smallbiznis/billcanvas/internal/clock"
	"github.com/smallbiznis/billcanvas/internal/template/binding"
	"github.com/smallbiznis/billcanvas/internal/template/calc"
	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/geometry"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

// BuildInput resolves a template against a sample payload into the
// deterministic view consumed by the renderer. Zones come out in stack
// order; hidden fields, images and columns are dropped here.
func BuildInput(tpl *domain.Template, payload sample.Payload, clk clock.Clock) RenderInput {
	width, height := geometry.CanvasSize(tpl.Page)
	tops := geometry.ZoneTops(tpl.SectionHeights, tpl.Page)

	input := RenderInput{
		Title:  "Preview",
		Width:  width,
		Height: height,
	}

	for _, zone := range domain.ZoneOrder {
		view := ZoneView{
			Name:   string(zone),
			Top:    tops[zone],
			Height: geometry.HeightOf(zone, tpl.SectionHeights, tpl.Page),
		}

		for _, placement := range tpl.Zones[zone] {
			switch {
			case placement.Field != nil:
				field := *placement.Field
				if !field.IsVisible() {
					continue
				}
				view.Fields = append(view.Fields, FieldView{
					Text:       binding.Resolve(field, payload, clk),
					X:          field.X,
					Y:          field.Y,
					Width:      field.Width,
					FontSize:   field.FontSize,
					FontFamily: field.FontFamily,
					FontWeight: field.FontWeight,
					Color:      field.Color,
				})
			case placement.Image != nil:
				img := *placement.Image
				if !img.IsVisible() {
					continue
				}
				iv := ImageView{
					ImageID: img.ImageID,
					X:       img.X,
					Y:       img.Y,
					Width:   img.Width,
					Height:  img.Height,
				}
				if zone == domain.ZoneBillContent && img.Watermark {
					input.Watermarks = append(input.Watermarks, iv)
					continue
				}
				view.Images = append(view.Images, iv)
			}
		}

		if zone == domain.ZoneBillContent {
			if tpl.ItemsTable != nil {
				view.Tables = append(view.Tables, buildTable(*tpl.ItemsTable, payload.Items.Rows, payload))
			}
			for _, tbl := range tpl.BillContentTables {
				view.Tables = append(view.Tables, buildTable(tbl, payload.Items.Rows, payload))
			}
			for _, tbl := range tpl.ContentDetailTables {
				var rows []map[string]any
				if src, ok := payload.ContentDetail(tbl.ContentName); ok {
					rows = src.Rows()
				}
				view.Tables = append(view.Tables, buildTable(tbl, rows, payload))
			}
		}

		input.Zones = append(input.Zones, view)
	}

	return input
}

func buildTable(tbl domain.Table, rows []map[string]any, payload sample.Payload) TableView {
	columns := tbl.VisibleColumns()

	view := TableView{
		X:                     tbl.X,
		Y:                     tbl.Y,
		BorderColor:           tbl.BorderColor,
		BorderWidth:           tbl.BorderWidth,
		HeaderBackgroundColor: tbl.HeaderBackgroundColor,
		HeaderTextColor:       tbl.HeaderTextColor,
		CellPadding:           tbl.CellPadding,
		FontSize:              tbl.FontSize,
		TableWidth:            tbl.TableWidth,
	}

	for _, col := range columns {
		view.Headers = append(view.Headers, HeaderView{
			Label:   col.Label,
			Align:   string(col.Align),
			Width:   col.Width,
			ColSpan: col.EffectiveColSpan(),
		})
	}

	for _, row := range rows {
		cells := make([]CellView, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, CellView{
				Text:    binding.ResolveCell(col.Bind, row),
				Align:   string(col.Align),
				ColSpan: col.EffectiveColSpan(),
			})
		}
		view.Rows = append(view.Rows, cells)
	}

	for _, finalRow := range tbl.FinalRows {
		cells := make([]CellView, 0, len(finalRow.Cells))
		for _, cell := range finalRow.Cells {
			cells = append(cells, CellView{
				Text:       finalCellText(cell, payload),
				Align:      string(cell.Align),
				ColSpan:    cell.ColSpan,
				FontWeight: cell.FontWeight,
			})
		}
		view.FinalRows = append(view.FinalRows, cells)
	}

	return view
}

// finalCellText resolves a summary cell. Aggregate cells evaluate only when
// the descriptor is complete; custom formulas are carried as text, never
// evaluated here.
func finalCellText(cell domain.Cell, payload sample.Payload) string {
	switch cell.ValueType {
	case domain.CellStatic:
		return cell.Value
	case domain.CellCalculation:
		if cell.Calculation == nil {
			return ""
		}
		value, ok := calc.Evaluate(*cell.Calculation, payload)
		if !ok {
			return ""
		}
		return formatNumber(value)
	case domain.CellFormula:
		return cell.Formula
	default:
		return ""
	}
}

func formatNumber(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
