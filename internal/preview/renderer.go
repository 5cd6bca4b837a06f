package preview

// RenderInput is the deterministic input used for design preview rendering.
// It is fully resolved: every field carries its display text, every table its
// row strings, so the HTML layer does pure layout.
type RenderInput struct {
	Title      string
	Width      float64
	Height     float64
	Zones      []ZoneView
	Watermarks []ImageView
}

// ZoneView is one stacked band of the canvas with its resolved content.
type ZoneView struct {
	Name   string
	Top    float64
	Height float64
	Fields []FieldView
	Images []ImageView
	Tables []TableView
}

type FieldView struct {
	Text       string
	X          float64
	Y          float64
	Width      string
	FontSize   float64
	FontFamily string
	FontWeight string
	Color      string
}

type ImageView struct {
	ImageID string
	X       float64
	Y       float64
	Width   float64
	Height  float64
}

type TableView struct {
	X         float64
	Y         float64
	Headers   []HeaderView
	Rows      [][]CellView
	FinalRows [][]CellView

	BorderColor           string
	BorderWidth           float64
	HeaderBackgroundColor string
	HeaderTextColor       string
	CellPadding           float64
	FontSize              float64
	TableWidth            string
}

type HeaderView struct {
	Label   string
	Align   string
	Width   string
	ColSpan int
}

type CellView struct {
	Text       string
	Align      string
	ColSpan    int
	FontWeight string
}

// Renderer turns a resolved input into a standalone HTML document.
type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
