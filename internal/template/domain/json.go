package domain

import "encoding/json"

// templateWire is the serialized layout of a Template. Zones are spelled out
// as named keys so the saved JSON stays readable and stable; the
// sectionHeights object keeps only explicitly-set heights, preserving the
// distinction between a stored 0 and an unset height across round trips.
type templateWire struct {
	Page           Page           `json:"page"`
	PageHeader     []Placement    `json:"pageHeader,omitempty"`
	Header         []Placement    `json:"header,omitempty"`
	BillContent    []Placement    `json:"billContent,omitempty"`
	BillFooter     []Placement    `json:"billFooter,omitempty"`
	PageFooter     []Placement    `json:"pageFooter,omitempty"`
	SectionHeights SectionHeights `json:"sectionHeights,omitempty"`

	ItemsTable          *Table  `json:"itemsTable,omitempty"`
	BillContentTables   []Table `json:"billContentTables,omitempty"`
	ContentDetailTables []Table `json:"contentDetailTables,omitempty"`

	Pagination Pagination `json:"pagination"`
}

// MarshalJSON implements the wire contract described on Template.
func (t Template) MarshalJSON() ([]byte, error) {
	wire := templateWire{
		Page:                t.Page,
		PageHeader:          t.Zones[ZonePageHeader],
		Header:              t.Zones[ZoneHeader],
		BillContent:         t.Zones[ZoneBillContent],
		BillFooter:          t.Zones[ZoneBillFooter],
		PageFooter:          t.Zones[ZonePageFooter],
		SectionHeights:      t.SectionHeights,
		ItemsTable:          t.ItemsTable,
		BillContentTables:   t.BillContentTables,
		ContentDetailTables: t.ContentDetailTables,
		Pagination:          t.Pagination,
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements the wire contract described on Template.
func (t *Template) UnmarshalJSON(data []byte) error {
	var wire templateWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	zones := make(map[Zone][]Placement, len(ZoneOrder))
	for zone, placements := range map[Zone][]Placement{
		ZonePageHeader:  wire.PageHeader,
		ZoneHeader:      wire.Header,
		ZoneBillContent: wire.BillContent,
		ZoneBillFooter:  wire.BillFooter,
		ZonePageFooter:  wire.PageFooter,
	} {
		if len(placements) > 0 {
			zones[zone] = placements
		}
	}
	heights := wire.SectionHeights
	if heights == nil {
		heights = make(SectionHeights)
	}
	*t = Template{
		Page:                wire.Page,
		Zones:               zones,
		SectionHeights:      heights,
		ItemsTable:          wire.ItemsTable,
		BillContentTables:   wire.BillContentTables,
		ContentDetailTables: wire.ContentDetailTables,
		Pagination:          wire.Pagination,
	}
	return nil
}
