package domain

import "fmt"

// Validate checks the template's structural invariants. Violations are
// advisory: the designer surfaces them but keeps the template editable and
// saveable, so Validate collects every problem instead of stopping at the
// first.
func (t *Template) Validate() []error {
	var errs []error

	for _, zone := range ZoneOrder {
		for i, placement := range t.Zones[zone] {
			if placement.Kind != PlacementField || placement.Field == nil {
				continue
			}
			field := placement.Field
			switch field.FieldType {
			case FieldTypePageNumber, FieldTypeTotalPages:
				if zone != ZonePageHeader && zone != ZonePageFooter {
					errs = append(errs, fmt.Errorf("%s[%d]: %s fields are only valid in pageHeader or pageFooter", zone, i, field.FieldType))
				}
			}
			if field.Bind != "" && field.FieldType != "" && field.FieldType != FieldTypeText {
				errs = append(errs, fmt.Errorf("%s[%d]: bound field cannot have fieldType %q", zone, i, field.FieldType))
			}
		}
	}

	for _, table := range t.AllTables() {
		for i, col := range table.Columns {
			if col.ColSpan != 0 && col.ColSpan < 1 {
				errs = append(errs, fmt.Errorf("column %d (%s): colSpan must be >= 1", i, col.Label))
			}
		}
		if table.RowsPerPage != nil && *table.RowsPerPage <= 0 {
			errs = append(errs, fmt.Errorf("table %q: rowsPerPage must be > 0", table.ContentName))
		}
	}

	if t.Pagination.RowsPerPage != nil && *t.Pagination.RowsPerPage <= 0 {
		errs = append(errs, fmt.Errorf("pagination: rowsPerPage must be > 0"))
	}

	return errs
}

// AllTables returns pointers to every table on the template: the legacy items
// table first, then bill-content tables, then content-detail tables.
func (t *Template) AllTables() []*Table {
	var tables []*Table
	if t.ItemsTable != nil {
		tables = append(tables, t.ItemsTable)
	}
	for i := range t.BillContentTables {
		tables = append(tables, &t.BillContentTables[i])
	}
	for i := range t.ContentDetailTables {
		tables = append(tables, &t.ContentDetailTables[i])
	}
	return tables
}
