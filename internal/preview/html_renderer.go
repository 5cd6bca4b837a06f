package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const previewHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      background: #f3f4f6;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
    }
    .canvas {
      position: relative;
      margin: 24px auto;
      width: {{px .Width}};
      height: {{px .Height}};
      background: #ffffff;
      box-shadow: 0 1px 4px rgba(0, 0, 0, 0.12);
      overflow: hidden;
    }
    .zone {
      position: absolute;
      left: 0;
      right: 0;
    }
    .field {
      position: absolute;
      white-space: pre;
    }
    .image {
      position: absolute;
      background: #e5e7eb;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 10px;
      color: #6b7280;
    }
    .watermark {
      position: absolute;
      opacity: 0.12;
      pointer-events: none;
    }
    .tbl {
      position: absolute;
      border-collapse: collapse;
      font-size: 12px;
    }
    .tbl th, .tbl td {
      padding: 4px 6px;
    }
  </style>
</head>
<body>
  <div class="canvas">
    {{range .Watermarks}}
    <div class="image watermark" style="left: {{px .X}}; top: {{px .Y}}; width: {{px .Width}}; height: {{px .Height}};">{{.ImageID}}</div>
    {{end}}
    {{range .Zones}}
    <div class="zone" data-zone="{{.Name}}" style="top: {{px .Top}}; height: {{px .Height}};">
      {{range .Fields}}
      <div class="field" style="left: {{px .X}}; top: {{px .Y}};{{fieldStyle .}}">{{.Text}}</div>
      {{end}}
      {{range .Images}}
      <div class="image" style="left: {{px .X}}; top: {{px .Y}}; width: {{px .Width}}; height: {{px .Height}};">{{.ImageID}}</div>
      {{end}}
      {{range .Tables}}
      <table class="tbl" style="left: {{px .X}}; top: {{px .Y}};{{tableStyle .}}">
        {{if .Headers}}
        <thead>
          <tr{{if .HeaderBackgroundColor}} style="background: {{.HeaderBackgroundColor}};{{if .HeaderTextColor}} color: {{.HeaderTextColor}};{{end}}"{{end}}>
            {{range .Headers}}
            <th colspan="{{.ColSpan}}"{{if .Align}} style="text-align: {{.Align}};"{{end}}>{{.Label}}</th>
            {{end}}
          </tr>
        </thead>
        {{end}}
        <tbody>
          {{range .Rows}}
          <tr>
            {{range .}}
            <td colspan="{{.ColSpan}}"{{if .Align}} style="text-align: {{.Align}};"{{end}}>{{.Text}}</td>
            {{end}}
          </tr>
          {{end}}
          {{range .FinalRows}}
          <tr>
            {{range .}}
            <td colspan="{{.ColSpan}}" style="{{if .Align}}text-align: {{.Align}};{{end}}{{if .FontWeight}} font-weight: {{.FontWeight}};{{end}}">{{.Text}}</td>
            {{end}}
          </tr>
          {{end}}
        </tbody>
      </table>
      {{end}}
    </div>
    {{end}}
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"px":         formatPx,
		"fieldStyle": fieldStyle,
		"tableStyle": tableStyle,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("preview").Funcs(funcs).Parse(previewHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatPx(value float64) string {
	return fmt.Sprintf("%spx", trimZeros(value))
}

func trimZeros(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func fieldStyle(f FieldView) template.CSS {
	var b strings.Builder
	if f.Width != "" {
		fmt.Fprintf(&b, " width: %s;", f.Width)
	}
	if f.FontSize > 0 {
		fmt.Fprintf(&b, " font-size: %spx;", trimZeros(f.FontSize))
	}
	if f.FontFamily != "" {
		fmt.Fprintf(&b, " font-family: %q;", f.FontFamily)
	}
	if f.FontWeight != "" {
		fmt.Fprintf(&b, " font-weight: %s;", f.FontWeight)
	}
	if f.Color != "" {
		fmt.Fprintf(&b, " color: %s;", f.Color)
	}
	return template.CSS(b.String())
}

func tableStyle(t TableView) template.CSS {
	var b strings.Builder
	if t.TableWidth != "" {
		fmt.Fprintf(&b, " width: %s;", t.TableWidth)
	}
	if t.FontSize > 0 {
		fmt.Fprintf(&b, " font-size: %spx;", trimZeros(t.FontSize))
	}
	if t.BorderColor != "" || t.BorderWidth > 0 {
		width := t.BorderWidth
		if width <= 0 {
			width = 1
		}
		color := t.BorderColor
		if color == "" {
			color = "#e5e7eb"
		}
		fmt.Fprintf(&b, " border: %spx solid %s;", trimZeros(width), color)
	}
	if t.CellPadding > 0 {
		fmt.Fprintf(&b, " --cell-padding: %spx;", trimZeros(t.CellPadding))
	}
	return template.CSS(b.String())
}
