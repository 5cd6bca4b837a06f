package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/billcanvas/internal/clock"
	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

func previewPayload() sample.Payload {
	return sample.Normalize(sample.RawPayload{
		Header: map[string]any{"companyName": "Acme", "billNo": "B-001"},
		Items: []map[string]any{
			{"description": "Widget", "rate": 5.0},
			{"description": "Gadget", "rate": 7.0},
			{"description": "Sprocket", "rate": 3.0},
		},
	})
}

func previewTemplate() *domain.Template {
	tpl := domain.New(domain.Page{Size: domain.PageA4, Orientation: domain.Portrait})
	tpl.Zones[domain.ZoneHeader] = []domain.Placement{
		domain.FieldPlacement(domain.Field{Bind: "header.companyName", X: 10, Y: 10}),
		domain.FieldPlacement(domain.Field{Bind: "header.missingField", X: 10, Y: 40}),
	}
	tpl.ItemsTable = &domain.Table{
		X: 20, Y: 20,
		Columns: []domain.Column{
			{Label: "Description", Bind: "description"},
			{Label: "Rate", Bind: "rate", Align: domain.AlignRight},
		},
		FinalRows: []domain.FinalRow{
			{Cells: []domain.Cell{
				{ValueType: domain.CellStatic, Value: "Total"},
				{ValueType: domain.CellCalculation, Calculation: &domain.Calculation{
					Type: domain.CalcSum, Source: "items", Field: "rate",
				}},
			}},
		},
	}
	return tpl
}

func fixedClock(t *testing.T) clock.Clock {
	t.Helper()
	at, err := time.Parse(time.RFC3339, "2024-03-09T14:30:45Z")
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return clock.Fixed{At: at}
}

func TestBuildInputResolvesFields(t *testing.T) {
	input := BuildInput(previewTemplate(), previewPayload(), fixedClock(t))

	if len(input.Zones) != 5 {
		t.Fatalf("zones = %d, want 5", len(input.Zones))
	}
	header := input.Zones[1]
	if header.Name != "header" {
		t.Fatalf("zone order broken: %q", header.Name)
	}
	if len(header.Fields) != 2 {
		t.Fatalf("header fields = %d, want 2", len(header.Fields))
	}
	if header.Fields[0].Text != "Acme" {
		t.Fatalf("bound field = %q, want Acme", header.Fields[0].Text)
	}
	if header.Fields[1].Text != "[Value]" {
		t.Fatalf("missing bind = %q, want [Value]", header.Fields[1].Text)
	}
}

func TestBuildInputTableRowsAndAggregates(t *testing.T) {
	input := BuildInput(previewTemplate(), previewPayload(), fixedClock(t))

	content := input.Zones[2]
	if len(content.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(content.Tables))
	}
	tbl := content.Tables[0]
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if tbl.Rows[0][0].Text != "Widget" || tbl.Rows[0][1].Text != "5" {
		t.Fatalf("first row = %+v", tbl.Rows[0])
	}
	if len(tbl.FinalRows) != 1 {
		t.Fatalf("final rows = %d, want 1", len(tbl.FinalRows))
	}
	if got := tbl.FinalRows[0][1].Text; got != "15" {
		t.Fatalf("sum cell = %q, want 15", got)
	}
}

func TestBuildInputSkipsIncompleteAggregate(t *testing.T) {
	tpl := previewTemplate()
	tpl.ItemsTable.FinalRows[0].Cells[1].Calculation.Field = ""

	input := BuildInput(tpl, previewPayload(), fixedClock(t))
	if got := input.Zones[2].Tables[0].FinalRows[0][1].Text; got != "" {
		t.Fatalf("incomplete aggregate = %q, want empty", got)
	}
}

func TestBuildInputHiddenAndWatermark(t *testing.T) {
	hidden := false
	tpl := previewTemplate()
	tpl.Zones[domain.ZoneHeader] = append(tpl.Zones[domain.ZoneHeader],
		domain.FieldPlacement(domain.Field{Value: "secret", Visible: &hidden}),
	)
	tpl.Zones[domain.ZoneBillContent] = []domain.Placement{
		domain.ImagePlacement(domain.Image{ImageID: "img-1", Watermark: true, Width: 200, Height: 200}),
	}

	input := BuildInput(tpl, previewPayload(), fixedClock(t))
	if len(input.Zones[1].Fields) != 2 {
		t.Fatalf("hidden field rendered: %d fields", len(input.Zones[1].Fields))
	}
	if len(input.Watermarks) != 1 || input.Watermarks[0].ImageID != "img-1" {
		t.Fatalf("watermarks = %+v", input.Watermarks)
	}
	if len(input.Zones[2].Images) != 0 {
		t.Fatal("watermark also rendered inline")
	}
}

func TestRenderHTML(t *testing.T) {
	renderer := NewRenderer()
	input := BuildInput(previewTemplate(), previewPayload(), fixedClock(t))

	html, err := renderer.RenderHTML(input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Acme", "Widget", "Total", "15", `data-zone="billContent"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered HTML missing %q", want)
		}
	}
}
