// Package domain defines the canonical bill template aggregate shared by the
// designer and the print engine. The JSON encoding of Template is a wire
// contract: both sides must read and write the exact same shape.
package domain

// Zone identifies one of the five stacked placement areas on the canvas.
type Zone string

const (
	ZonePageHeader  Zone = "pageHeader"
	ZoneHeader      Zone = "header"
	ZoneBillContent Zone = "billContent"
	ZoneBillFooter  Zone = "billFooter"
	ZonePageFooter  Zone = "pageFooter"
)

// ZoneOrder lists zones top to bottom as they are stacked on the canvas.
var ZoneOrder = []Zone{ZonePageHeader, ZoneHeader, ZoneBillContent, ZoneBillFooter, ZonePageFooter}

// Valid reports whether z names one of the five zones.
func (z Zone) Valid() bool {
	for _, known := range ZoneOrder {
		if z == known {
			return true
		}
	}
	return false
}

// PageSize is the physical paper size of the designed document.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// Orientation of the page.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Page holds page-level settings.
type Page struct {
	Size        PageSize    `json:"size"`
	Orientation Orientation `json:"orientation"`
}

// FieldType distinguishes computed fields from plain bound/static text.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeCurrentDate FieldType = "currentDate"
	FieldTypeCurrentTime FieldType = "currentTime"
	FieldTypePageNumber  FieldType = "pageNumber"
	FieldTypeTotalPages  FieldType = "totalPages"
)

// Field is a positioned text element inside a zone. Coordinates are relative
// to the zone's top-left corner.
type Field struct {
	Label      string    `json:"label,omitempty"`
	Bind       string    `json:"bind,omitempty"`
	Value      string    `json:"value,omitempty"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Width      string    `json:"width,omitempty"` // px, %, or "auto"
	FontSize   float64   `json:"fontSize,omitempty"`
	FontFamily string    `json:"fontFamily,omitempty"`
	FontWeight string    `json:"fontWeight,omitempty"`
	Color      string    `json:"color,omitempty"`
	Visible    *bool     `json:"visible,omitempty"` // nil means visible
	FieldType  FieldType `json:"fieldType,omitempty"`
}

// IsVisible treats an absent visibility flag as visible.
func (f Field) IsVisible() bool { return f.Visible == nil || *f.Visible }

// Image is a positioned image placement inside a zone.
type Image struct {
	ImageID   string  `json:"imageId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Visible   *bool   `json:"visible,omitempty"`
	Watermark bool    `json:"watermark,omitempty"` // only meaningful in billContent
}

// IsVisible treats an absent visibility flag as visible.
func (i Image) IsVisible() bool { return i.Visible == nil || *i.Visible }

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TableOrientation selects the row layout of a table.
type TableOrientation string

const (
	TableVertical   TableOrientation = "vertical"
	TableHorizontal TableOrientation = "horizontal" // transposed
)

// Table renders a data source as rows and columns. The same shape serves the
// legacy items table, bill-content tables and content-detail tables; only
// content-detail tables carry ContentName.
type Table struct {
	Columns     []Column         `json:"columns"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	Orientation TableOrientation `json:"orientation,omitempty"`
	ContentName string           `json:"contentName,omitempty"`

	BorderColor           string     `json:"borderColor,omitempty"`
	BorderWidth           float64    `json:"borderWidth,omitempty"`
	HeaderBackgroundColor string     `json:"headerBackgroundColor,omitempty"`
	HeaderTextColor       string     `json:"headerTextColor,omitempty"`
	CellPadding           float64    `json:"cellPadding,omitempty"`
	FontSize              float64    `json:"fontSize,omitempty"`
	AlternateRowColor     string     `json:"alternateRowColor,omitempty"`
	TableWidth            string     `json:"tableWidth,omitempty"`
	RowsPerPage           *int       `json:"rowsPerPage,omitempty"`
	FinalRows             []FinalRow `json:"finalRows,omitempty"`
}

// VisibleColumns returns the columns currently shown, in order.
func (t Table) VisibleColumns() []Column {
	out := make([]Column, 0, len(t.Columns))
	for _, col := range t.Columns {
		if col.IsVisible() {
			out = append(out, col)
		}
	}
	return out
}

// Column is one table column, optionally carrying an aggregate calculation.
type Column struct {
	Label   string `json:"label"`
	Bind    string `json:"bind"`
	Width   string `json:"width,omitempty"`
	Height  string `json:"height,omitempty"`
	Align   Align  `json:"align,omitempty"`
	RowSpan int    `json:"rowSpan,omitempty"`
	ColSpan int    `json:"colSpan,omitempty"` // >=1, absent means 1
	Visible *bool  `json:"visible,omitempty"`

	Calculation *Calculation `json:"calculation,omitempty"`
}

// IsVisible treats an absent visibility flag as visible.
func (c Column) IsVisible() bool { return c.Visible == nil || *c.Visible }

// EffectiveColSpan returns the column span, defaulting to 1.
func (c Column) EffectiveColSpan() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// CalculationType enumerates the aggregate semantics of a column or cell.
type CalculationType string

const (
	CalcNone   CalculationType = "none"
	CalcSum    CalculationType = "sum"
	CalcAvg    CalculationType = "avg"
	CalcCount  CalculationType = "count"
	CalcMin    CalculationType = "min"
	CalcMax    CalculationType = "max"
	CalcCustom CalculationType = "custom"
)

// Calculation describes an aggregation over a named data source, or a custom
// formula string. The designer stores it; evaluation happens at render time.
type Calculation struct {
	Type    CalculationType `json:"type"`
	Source  string          `json:"source,omitempty"`
	Field   string          `json:"field,omitempty"`
	Formula string          `json:"formula,omitempty"`
}

// CellValueType discriminates the payload of a final-row cell.
type CellValueType string

const (
	CellStatic      CellValueType = "static"
	CellCalculation CellValueType = "calculation"
	CellFormula     CellValueType = "formula"
)

// Cell is one cell of a final (summary) row.
type Cell struct {
	Label     string        `json:"label,omitempty"`
	ValueType CellValueType `json:"valueType"`

	Value       string       `json:"value,omitempty"`       // static
	Calculation *Calculation `json:"calculation,omitempty"` // calculation
	Formula     string       `json:"formula,omitempty"`     // formula

	Align      Align  `json:"align,omitempty"`
	ColSpan    int    `json:"colSpan,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
}

// FinalRow is an ordered list of summary cells appended after table data.
type FinalRow struct {
	Cells []Cell `json:"cells"`
}

// Pagination controls how table rows split across pages.
type Pagination struct {
	RowsPerPage  *int  `json:"rowsPerPage,omitempty"`
	RepeatHeader *bool `json:"repeatHeader,omitempty"` // absent means true
}

// RepeatsHeader treats an absent flag as true.
func (p Pagination) RepeatsHeader() bool { return p.RepeatHeader == nil || *p.RepeatHeader }

// SectionHeights maps zone name to its height in layout units. Key presence
// is meaningful: a stored 0 is a valid height, a missing key means the zone
// height was never set and falls back to a default at layout time.
type SectionHeights map[Zone]float64

// Has reports whether the zone has an explicitly stored height.
func (h SectionHeights) Has(zone Zone) bool {
	_, ok := h[zone]
	return ok
}

// Template is the root aggregate for one saved bill design. Its JSON shape
// is defined by the custom (un)marshalers in json.go.
type Template struct {
	Page           Page
	Zones          map[Zone][]Placement
	SectionHeights SectionHeights

	ItemsTable          *Table
	BillContentTables   []Table
	ContentDetailTables []Table

	Pagination Pagination
}

// New returns an empty template with the given page settings.
func New(page Page) *Template {
	return &Template{
		Page:           page,
		Zones:          make(map[Zone][]Placement, len(ZoneOrder)),
		SectionHeights: make(SectionHeights),
	}
}

// ContentDetailTable returns the table bound to the named content-detail
// source, or nil.
func (t *Template) ContentDetailTable(name string) *Table {
	for i := range t.ContentDetailTables {
		if t.ContentDetailTables[i].ContentName == name {
			return &t.ContentDetailTables[i]
		}
	}
	return nil
}
