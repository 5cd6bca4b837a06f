package domain

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTripPreservesZeroHeight(t *testing.T) {
	tpl := New(Page{Size: PageA4, Orientation: Portrait})
	tpl.SectionHeights[ZoneHeader] = 0
	tpl.SectionHeights[ZoneBillContent] = 420.5

	data, err := json.Marshal(tpl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Template
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !restored.SectionHeights.Has(ZoneHeader) {
		t.Fatalf("expected explicit zero height for header to survive the round trip")
	}
	if got := restored.SectionHeights[ZoneHeader]; got != 0 {
		t.Fatalf("expected header height 0, got %v", got)
	}
	if restored.SectionHeights.Has(ZonePageFooter) {
		t.Fatalf("expected pageFooter height to stay unset")
	}
	if got := restored.SectionHeights[ZoneBillContent]; got != 420.5 {
		t.Fatalf("expected billContent height 420.5, got %v", got)
	}
}

func TestJSONRoundTripPlacements(t *testing.T) {
	hidden := false
	tpl := New(Page{Size: PageLetter, Orientation: Landscape})
	tpl.Zones[ZoneHeader] = []Placement{
		FieldPlacement(Field{Label: "Customer", Bind: "header.Name", X: 50, Y: 100, FontSize: 12}),
		ImagePlacement(Image{ImageID: "logo-1", X: 10, Y: 10, Width: 80, Height: 40, Visible: &hidden}),
	}
	tpl.ItemsTable = &Table{
		X: 20, Y: 30,
		Columns: []Column{
			{Label: "Rate", Bind: "rate", Align: AlignRight, Calculation: &Calculation{Type: CalcSum, Source: "items", Field: "rate"}},
		},
		FinalRows: []FinalRow{{Cells: []Cell{{Label: "Total", ValueType: CellCalculation, Calculation: &Calculation{Type: CalcSum, Source: "items", Field: "amount"}}}}},
	}

	data, err := json.Marshal(tpl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Template
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	header := restored.Zones[ZoneHeader]
	if len(header) != 2 {
		t.Fatalf("expected 2 header placements, got %d", len(header))
	}
	if header[0].Kind != PlacementField || header[0].Field.Bind != "header.Name" {
		t.Fatalf("expected first placement to be the bound field, got %+v", header[0])
	}
	if header[1].Kind != PlacementImage || header[1].Image.ImageID != "logo-1" {
		t.Fatalf("expected second placement to be the image, got %+v", header[1])
	}
	if header[1].Image.IsVisible() {
		t.Fatalf("expected hidden image to stay hidden")
	}
	if restored.ItemsTable == nil || len(restored.ItemsTable.FinalRows) != 1 {
		t.Fatalf("expected items table with one final row")
	}
	calc := restored.ItemsTable.Columns[0].Calculation
	if calc == nil || calc.Type != CalcSum || calc.Source != "items" {
		t.Fatalf("expected sum calculation on column, got %+v", calc)
	}
}

func TestUnmarshalUntaggedPlacementIsField(t *testing.T) {
	raw := `{"page":{"size":"A4","orientation":"portrait"},"header":[{"label":"Legacy","x":1,"y":2}],"pagination":{}}`
	var tpl Template
	if err := json.Unmarshal([]byte(raw), &tpl); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	header := tpl.Zones[ZoneHeader]
	if len(header) != 1 || header[0].Kind != PlacementField {
		t.Fatalf("expected untagged placement to decode as a field, got %+v", header)
	}
	if header[0].Field.Label != "Legacy" {
		t.Fatalf("expected label Legacy, got %q", header[0].Field.Label)
	}
}

func TestRepeatHeaderDefaultsTrue(t *testing.T) {
	var p Pagination
	if !p.RepeatsHeader() {
		t.Fatalf("expected absent repeatHeader to mean true")
	}
	off := false
	p.RepeatHeader = &off
	if p.RepeatsHeader() {
		t.Fatalf("expected explicit false to win")
	}
}

func TestValidatePageCounterPlacement(t *testing.T) {
	tpl := New(Page{Size: PageA4, Orientation: Portrait})
	tpl.Zones[ZoneBillContent] = []Placement{
		FieldPlacement(Field{Label: "Page", FieldType: FieldTypePageNumber}),
	}
	tpl.Zones[ZonePageFooter] = []Placement{
		FieldPlacement(Field{Label: "Page", FieldType: FieldTypePageNumber}),
	}

	errs := tpl.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one violation, got %d: %v", len(errs), errs)
	}
}

func TestValidateBoundFieldType(t *testing.T) {
	tpl := New(Page{Size: PageA4, Orientation: Portrait})
	tpl.Zones[ZoneHeader] = []Placement{
		FieldPlacement(Field{Bind: "header.Name", FieldType: FieldTypeCurrentDate}),
		FieldPlacement(Field{Bind: "header.Name", FieldType: FieldTypeText}),
		FieldPlacement(Field{Bind: "header.Name"}),
	}
	errs := tpl.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected one violation for the currentDate bind, got %v", errs)
	}
}
