// Package mutate is the single state-transition engine over the template
// aggregate. Every operation is total: out-of-range indices, missing tables
// and duplicate binds degrade to no-ops instead of errors, and no operation
// leaves a partial mutation behind.
//
// The designer's per-section closures all dispatch here, so the same column
// and final-row logic serves the items table, bill-content tables and
// content-detail tables alike.
package mutate

import "github.com/smallbiznis/billcanvas/internal/template/domain"

// Selection tracks the element the designer currently has selected.
type Selection struct {
	Zone  domain.Zone
	Index int
}

// Session owns one open template plus the editing state around it. One
// session exists per open designer tab; it is created on template load and
// discarded on template switch.
type Session struct {
	Template  *domain.Template
	Selection *Selection
}

// NewSession opens an editing session over the template.
func NewSession(t *domain.Template) *Session {
	if t == nil {
		t = domain.New(domain.Page{Size: domain.PageA4, Orientation: domain.Portrait})
	}
	if t.Zones == nil {
		t.Zones = make(map[domain.Zone][]domain.Placement)
	}
	if t.SectionHeights == nil {
		t.SectionHeights = make(domain.SectionHeights)
	}
	return &Session{Template: t}
}

// Select marks the placement at zone/index as selected.
func (s *Session) Select(zone domain.Zone, index int) {
	s.Selection = &Selection{Zone: zone, Index: index}
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	s.Selection = nil
}

// SetSectionHeight stores an explicit zone height. Once stored, a height is
// never recomputed; storing 0 is valid and distinct from never storing.
func (s *Session) SetSectionHeight(zone domain.Zone, height float64) {
	if !zone.Valid() || height < 0 {
		return
	}
	s.Template.SectionHeights[zone] = height
}

// fixSelectionAfterDelete invalidates a selection pointing at the removed
// placement and shifts selections behind it.
func (s *Session) fixSelectionAfterDelete(zone domain.Zone, index int) {
	if s.Selection == nil || s.Selection.Zone != zone {
		return
	}
	switch {
	case s.Selection.Index == index:
		s.Selection = nil
	case s.Selection.Index > index:
		s.Selection.Index--
	}
}

// TableKind addresses one of the three table families on a template.
type TableKind string

const (
	TableItems         TableKind = "items"
	TableBillContent   TableKind = "billContent"
	TableContentDetail TableKind = "contentDetail"
)

// TableRef identifies a single table: the items table, a bill-content table
// by index, or a content-detail table by its source name.
type TableRef struct {
	Kind        TableKind
	Index       int
	ContentName string
}

// ItemsRef addresses the legacy items table.
func ItemsRef() TableRef { return TableRef{Kind: TableItems} }

// BillContentRef addresses the i-th bill-content table.
func BillContentRef(index int) TableRef { return TableRef{Kind: TableBillContent, Index: index} }

// ContentDetailRef addresses the table bound to the named content detail.
func ContentDetailRef(name string) TableRef {
	return TableRef{Kind: TableContentDetail, ContentName: name}
}

// Table resolves a reference to the table it names, or nil.
func (s *Session) Table(ref TableRef) *domain.Table {
	switch ref.Kind {
	case TableItems:
		return s.Template.ItemsTable
	case TableBillContent:
		if ref.Index < 0 || ref.Index >= len(s.Template.BillContentTables) {
			return nil
		}
		return &s.Template.BillContentTables[ref.Index]
	case TableContentDetail:
		return s.Template.ContentDetailTable(ref.ContentName)
	default:
		return nil
	}
}
