package mutate

import (
	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/geometry"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

// ImportKind classifies one descriptor of a bulk zone drop by the sample
// source it came from.
type ImportKind string

const (
	ImportHeaderField        ImportKind = "headerField"
	ImportItemField          ImportKind = "itemField"
	ImportContentDetailField ImportKind = "contentDetailField"
)

// ImportDescriptor is one data field carried by a dragged selection zone.
type ImportDescriptor struct {
	Label       string
	Bind        string
	Kind        ImportKind
	ContentName string          // content-detail descriptors only
	DataType    sample.DataType // content-detail descriptors only
}

// DropPoint is the pointer position of the drop, when one is available.
// Keyboard-triggered placement has no pointer and falls back to the default
// origin inside the target zone.
type DropPoint struct {
	X          float64
	Y          float64
	HasPointer bool
}

// BulkImportResult reports what a bulk zone import changed.
type BulkImportResult struct {
	Zone          domain.Zone
	FieldsAdded   int
	ColumnsAdded  int
	TablesCreated int
}

// BulkZoneImport places an entire dragged selection of data fields at once.
// Header fields and object-typed content-detail fields become zone fields,
// stacked downward from the drop position at a fixed spacing so they do not
// overlap. Item fields and array-typed content-detail fields become table
// columns, deduplicated by bind and merged into the matching table; the
// table is created at the drop point when absent.
func (s *Session) BulkZoneImport(descriptors []ImportDescriptor, drop DropPoint, hint domain.Zone) BulkImportResult {
	page := s.Template.Page
	heights := s.Template.SectionHeights

	var zone domain.Zone
	var baseX, baseY float64
	if drop.HasPointer {
		zone = geometry.ResolveZone(drop.Y, heights, page, hint)
		baseX, baseY = geometry.ToRelative(drop.X, drop.Y, zone, heights, page)
	} else {
		zone = hint
		if !zone.Valid() {
			zone = domain.ZoneHeader
		}
		baseX, baseY = geometry.DefaultOriginX, geometry.DefaultOriginY
	}

	result := BulkImportResult{Zone: zone}

	fieldOffset := 0
	columnsByTable := make(map[TableRef][]domain.Column)
	var tableOrder []TableRef

	for _, desc := range descriptors {
		switch {
		case desc.Kind == ImportHeaderField,
			desc.Kind == ImportContentDetailField && desc.DataType == sample.DataTypeObject:
			field := domain.Field{
				Label: desc.Label,
				Bind:  desc.Bind,
				X:     baseX,
				Y:     baseY + float64(fieldOffset)*geometry.ImportSpacing,
			}
			if s.AddField(zone, field) {
				result.FieldsAdded++
				fieldOffset++
			}

		case desc.Kind == ImportItemField,
			desc.Kind == ImportContentDetailField && desc.DataType == sample.DataTypeArray:
			ref := ItemsRef()
			if desc.Kind == ImportContentDetailField {
				ref = ContentDetailRef(desc.ContentName)
			}
			if _, seen := columnsByTable[ref]; !seen {
				tableOrder = append(tableOrder, ref)
			}
			columnsByTable[ref] = append(columnsByTable[ref], domain.Column{
				Label: desc.Label,
				Bind:  desc.Bind,
				Align: domain.AlignLeft,
			})
		}
	}

	for _, ref := range tableOrder {
		table := s.Table(ref)
		if table == nil {
			created := domain.Table{X: baseX, Y: baseY, Orientation: domain.TableVertical}
			if !s.AddTable(ref, created) {
				continue
			}
			table = s.Table(ref)
			result.TablesCreated++
		}
		result.ColumnsAdded += mergeColumns(table, dedupeByBind(columnsByTable[ref]))
	}

	return result
}

// dedupeByBind drops duplicate binds within one incoming batch, keeping the
// first occurrence.
func dedupeByBind(cols []domain.Column) []domain.Column {
	seen := make(map[string]bool, len(cols))
	out := make([]domain.Column, 0, len(cols))
	for _, col := range cols {
		if col.Bind != "" && seen[col.Bind] {
			continue
		}
		seen[col.Bind] = true
		out = append(out, col)
	}
	return out
}
