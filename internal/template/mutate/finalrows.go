package mutate

import "github.com/smallbiznis/billcanvas/internal/template/domain"

func defaultCell() domain.Cell {
	return domain.Cell{
		ValueType: domain.CellStatic,
		Value:     "",
		Align:     domain.AlignLeft,
		ColSpan:   1,
	}
}

// AddFinalRow appends a summary row with one default cell per currently
// visible column.
func (s *Session) AddFinalRow(ref TableRef) bool {
	table := s.Table(ref)
	if table == nil {
		return false
	}
	cells := make([]domain.Cell, 0, len(table.Columns))
	for range table.VisibleColumns() {
		cells = append(cells, defaultCell())
	}
	table.FinalRows = append(table.FinalRows, domain.FinalRow{Cells: cells})
	return true
}

// AddCell appends one more default cell to the final row at rowIndex.
func (s *Session) AddCell(ref TableRef, rowIndex int) bool {
	row := s.finalRow(ref, rowIndex)
	if row == nil {
		return false
	}
	row.Cells = append(row.Cells, defaultCell())
	return true
}

// CellPatch carries partial updates to a final-row cell. Changing the value
// type keeps only the payload meaningful for the new type.
type CellPatch struct {
	Label       *string
	ValueType   *domain.CellValueType
	Value       *string
	Calculation *domain.Calculation
	Formula     *string
	Align       *domain.Align
	ColSpan     *int
	FontWeight  *string
}

// UpdateCell applies a patch to one cell of a final row.
func (s *Session) UpdateCell(ref TableRef, rowIndex, cellIndex int, patch CellPatch) bool {
	row := s.finalRow(ref, rowIndex)
	if row == nil || cellIndex < 0 || cellIndex >= len(row.Cells) {
		return false
	}
	cell := &row.Cells[cellIndex]

	if patch.Label != nil {
		cell.Label = *patch.Label
	}
	if patch.ValueType != nil {
		cell.ValueType = *patch.ValueType
		switch cell.ValueType {
		case domain.CellStatic:
			cell.Calculation = nil
			cell.Formula = ""
		case domain.CellCalculation:
			cell.Value = ""
			cell.Formula = ""
		case domain.CellFormula:
			cell.Value = ""
			cell.Calculation = nil
		}
	}
	if patch.Value != nil && cell.ValueType == domain.CellStatic {
		cell.Value = *patch.Value
	}
	if patch.Calculation != nil && cell.ValueType == domain.CellCalculation {
		calc := *patch.Calculation
		cell.Calculation = &calc
	}
	if patch.Formula != nil && cell.ValueType == domain.CellFormula {
		cell.Formula = *patch.Formula
	}
	if patch.Align != nil {
		cell.Align = *patch.Align
	}
	if patch.ColSpan != nil && *patch.ColSpan >= 1 {
		cell.ColSpan = *patch.ColSpan
	}
	if patch.FontWeight != nil {
		cell.FontWeight = *patch.FontWeight
	}
	return true
}

// DeleteCell removes one cell from a final row. Deleting the last cell
// removes the row itself from the table.
func (s *Session) DeleteCell(ref TableRef, rowIndex, cellIndex int) bool {
	table := s.Table(ref)
	if table == nil || rowIndex < 0 || rowIndex >= len(table.FinalRows) {
		return false
	}
	row := &table.FinalRows[rowIndex]
	if cellIndex < 0 || cellIndex >= len(row.Cells) {
		return false
	}
	row.Cells = append(row.Cells[:cellIndex], row.Cells[cellIndex+1:]...)
	if len(row.Cells) == 0 {
		table.FinalRows = append(table.FinalRows[:rowIndex], table.FinalRows[rowIndex+1:]...)
	}
	return true
}

// MoveFinalRow swaps the row with its neighbor in the given direction
// (-1 up, +1 down). Moves past either end are no-ops.
func (s *Session) MoveFinalRow(ref TableRef, rowIndex, direction int) bool {
	table := s.Table(ref)
	if table == nil || (direction != -1 && direction != 1) {
		return false
	}
	target := rowIndex + direction
	if rowIndex < 0 || rowIndex >= len(table.FinalRows) || target < 0 || target >= len(table.FinalRows) {
		return false
	}
	table.FinalRows[rowIndex], table.FinalRows[target] = table.FinalRows[target], table.FinalRows[rowIndex]
	return true
}

func (s *Session) finalRow(ref TableRef, rowIndex int) *domain.FinalRow {
	table := s.Table(ref)
	if table == nil || rowIndex < 0 || rowIndex >= len(table.FinalRows) {
		return nil
	}
	return &table.FinalRows[rowIndex]
}
