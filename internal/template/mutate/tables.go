package mutate

import "github.com/smallbiznis/billcanvas/internal/template/domain"

// AddTable places a new table of the referenced kind. For content-detail
// tables the add is a no-op when a table for the same source already exists;
// the items table is likewise unique. Reports whether the table was added.
func (s *Session) AddTable(ref TableRef, table domain.Table) bool {
	switch ref.Kind {
	case TableItems:
		if s.Template.ItemsTable != nil {
			return false
		}
		s.Template.ItemsTable = &table
		return true
	case TableBillContent:
		s.Template.BillContentTables = append(s.Template.BillContentTables, table)
		return true
	case TableContentDetail:
		if ref.ContentName == "" || s.Template.ContentDetailTable(ref.ContentName) != nil {
			return false
		}
		table.ContentName = ref.ContentName
		s.Template.ContentDetailTables = append(s.Template.ContentDetailTables, table)
		return true
	default:
		return false
	}
}

// DeleteTable removes the referenced table entirely.
func (s *Session) DeleteTable(ref TableRef) bool {
	switch ref.Kind {
	case TableItems:
		if s.Template.ItemsTable == nil {
			return false
		}
		s.Template.ItemsTable = nil
		return true
	case TableBillContent:
		if ref.Index < 0 || ref.Index >= len(s.Template.BillContentTables) {
			return false
		}
		s.Template.BillContentTables = append(s.Template.BillContentTables[:ref.Index], s.Template.BillContentTables[ref.Index+1:]...)
		return true
	case TableContentDetail:
		for i := range s.Template.ContentDetailTables {
			if s.Template.ContentDetailTables[i].ContentName == ref.ContentName {
				s.Template.ContentDetailTables = append(s.Template.ContentDetailTables[:i], s.Template.ContentDetailTables[i+1:]...)
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AddColumn appends a column to the referenced table. Unlike fields, plain
// column adds are not deduplicated by bind; only bulk zone imports dedupe.
func (s *Session) AddColumn(ref TableRef, col domain.Column) bool {
	table := s.Table(ref)
	if table == nil {
		return false
	}
	table.Columns = append(table.Columns, col)
	return true
}

// ColumnPatch carries partial updates to a column.
type ColumnPatch struct {
	Label       *string
	Bind        *string
	Width       *string
	Height      *string
	Align       *domain.Align
	RowSpan     *int
	ColSpan     *int
	Visible     *bool
	Calculation *domain.Calculation
}

// UpdateColumn applies a patch to the column at index.
func (s *Session) UpdateColumn(ref TableRef, index int, patch ColumnPatch) bool {
	table := s.Table(ref)
	if table == nil || index < 0 || index >= len(table.Columns) {
		return false
	}
	col := &table.Columns[index]

	if patch.Label != nil {
		col.Label = *patch.Label
	}
	if patch.Bind != nil {
		col.Bind = *patch.Bind
	}
	if patch.Width != nil {
		col.Width = *patch.Width
	}
	if patch.Height != nil {
		col.Height = *patch.Height
	}
	if patch.Align != nil {
		col.Align = *patch.Align
	}
	if patch.RowSpan != nil {
		col.RowSpan = *patch.RowSpan
	}
	if patch.ColSpan != nil && *patch.ColSpan >= 1 {
		col.ColSpan = *patch.ColSpan
	}
	if patch.Visible != nil {
		visible := *patch.Visible
		col.Visible = &visible
	}
	if patch.Calculation != nil {
		calc := *patch.Calculation
		col.Calculation = &calc
	}
	return true
}

// DeleteColumns removes the columns at the given indices. Out-of-range
// indices are ignored; the rest are still removed.
func (s *Session) DeleteColumns(ref TableRef, indices []int) int {
	table := s.Table(ref)
	if table == nil || len(indices) == 0 {
		return 0
	}

	doomed := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(table.Columns) {
			doomed[idx] = true
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := table.Columns[:0]
	for i, col := range table.Columns {
		if !doomed[i] {
			kept = append(kept, col)
		}
	}
	table.Columns = kept
	return len(doomed)
}

// TableStylePatch carries partial updates to table-level styling.
type TableStylePatch struct {
	X                     *float64
	Y                     *float64
	Orientation           *domain.TableOrientation
	BorderColor           *string
	BorderWidth           *float64
	HeaderBackgroundColor *string
	HeaderTextColor       *string
	CellPadding           *float64
	FontSize              *float64
	AlternateRowColor     *string
	TableWidth            *string
	RowsPerPage           *int
}

// SetTableStyle applies a style patch to the referenced table. A rowsPerPage
// of zero or less is rejected, leaving the stored value.
func (s *Session) SetTableStyle(ref TableRef, patch TableStylePatch) bool {
	table := s.Table(ref)
	if table == nil {
		return false
	}
	if patch.X != nil {
		table.X = *patch.X
	}
	if patch.Y != nil {
		table.Y = *patch.Y
	}
	if patch.Orientation != nil {
		table.Orientation = *patch.Orientation
	}
	if patch.BorderColor != nil {
		table.BorderColor = *patch.BorderColor
	}
	if patch.BorderWidth != nil {
		table.BorderWidth = *patch.BorderWidth
	}
	if patch.HeaderBackgroundColor != nil {
		table.HeaderBackgroundColor = *patch.HeaderBackgroundColor
	}
	if patch.HeaderTextColor != nil {
		table.HeaderTextColor = *patch.HeaderTextColor
	}
	if patch.CellPadding != nil {
		table.CellPadding = *patch.CellPadding
	}
	if patch.FontSize != nil {
		table.FontSize = *patch.FontSize
	}
	if patch.AlternateRowColor != nil {
		table.AlternateRowColor = *patch.AlternateRowColor
	}
	if patch.TableWidth != nil {
		table.TableWidth = *patch.TableWidth
	}
	if patch.RowsPerPage != nil && *patch.RowsPerPage > 0 {
		rows := *patch.RowsPerPage
		table.RowsPerPage = &rows
	}
	return true
}

// mergeColumns appends incoming columns not already present by bind. Used by
// bulk zone imports, the only path that deduplicates columns.
func mergeColumns(table *domain.Table, incoming []domain.Column) int {
	existing := make(map[string]bool, len(table.Columns))
	for _, col := range table.Columns {
		existing[col.Bind] = true
	}

	added := 0
	for _, col := range incoming {
		if col.Bind != "" && existing[col.Bind] {
			continue
		}
		existing[col.Bind] = true
		table.Columns = append(table.Columns, col)
		added++
	}
	return added
}
