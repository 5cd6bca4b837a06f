package mutate

import "github.com/smallbiznis/billcanvas/internal/template/domain"

// FieldPatch carries partial updates to a field; nil members leave the
// current value untouched.
type FieldPatch struct {
	Label      *string
	Bind       *string
	Value      *string
	X          *float64
	Y          *float64
	Width      *string
	FontSize   *float64
	FontFamily *string
	FontWeight *string
	Color      *string
	Visible    *bool
	FieldType  *domain.FieldType
}

// AddField appends a field to the zone. A field whose non-empty bind already
// exists in the zone is silently dropped; the zone's bind set is its field
// identity. Reports whether the field was added.
func (s *Session) AddField(zone domain.Zone, field domain.Field) bool {
	if !zone.Valid() {
		return false
	}
	if field.Bind != "" && s.zoneHasBind(zone, field.Bind) {
		return false
	}
	s.Template.Zones[zone] = append(s.Template.Zones[zone], domain.FieldPlacement(field))
	return true
}

// UpdateField applies a patch to the field at index. Setting a computed
// field type clears the bind path, and a non-empty bind resets the field
// type to plain text; the two are mutually exclusive.
func (s *Session) UpdateField(zone domain.Zone, index int, patch FieldPatch) bool {
	field := s.fieldAt(zone, index)
	if field == nil {
		return false
	}

	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Value != nil {
		field.Value = *patch.Value
	}
	if patch.X != nil {
		field.X = *patch.X
	}
	if patch.Y != nil {
		field.Y = *patch.Y
	}
	if patch.Width != nil {
		field.Width = *patch.Width
	}
	if patch.FontSize != nil {
		field.FontSize = *patch.FontSize
	}
	if patch.FontFamily != nil {
		field.FontFamily = *patch.FontFamily
	}
	if patch.FontWeight != nil {
		field.FontWeight = *patch.FontWeight
	}
	if patch.Color != nil {
		field.Color = *patch.Color
	}
	if patch.Visible != nil {
		visible := *patch.Visible
		field.Visible = &visible
	}
	if patch.FieldType != nil {
		field.FieldType = *patch.FieldType
		if isComputed(field.FieldType) {
			field.Bind = ""
		}
	}
	if patch.Bind != nil {
		field.Bind = *patch.Bind
		if field.Bind != "" && isComputed(field.FieldType) {
			field.FieldType = domain.FieldTypeText
		}
	}
	return true
}

// DeleteField removes the field placement at index and invalidates a stale
// selection pointing at it. No-op when index is out of range or addresses an
// image.
func (s *Session) DeleteField(zone domain.Zone, index int) bool {
	return s.deletePlacement(zone, index, domain.PlacementField)
}

// AddImage appends an image placement to the zone. The watermark flag is
// only meaningful in billContent and is dropped elsewhere.
func (s *Session) AddImage(zone domain.Zone, image domain.Image) bool {
	if !zone.Valid() {
		return false
	}
	if zone != domain.ZoneBillContent {
		image.Watermark = false
	}
	s.Template.Zones[zone] = append(s.Template.Zones[zone], domain.ImagePlacement(image))
	return true
}

// ImagePatch carries partial updates to an image.
type ImagePatch struct {
	X         *float64
	Y         *float64
	Width     *float64
	Height    *float64
	Visible   *bool
	Watermark *bool
}

// UpdateImage applies a patch to the image at index.
func (s *Session) UpdateImage(zone domain.Zone, index int, patch ImagePatch) bool {
	image := s.imageAt(zone, index)
	if image == nil {
		return false
	}
	if patch.X != nil {
		image.X = *patch.X
	}
	if patch.Y != nil {
		image.Y = *patch.Y
	}
	if patch.Width != nil {
		image.Width = *patch.Width
	}
	if patch.Height != nil {
		image.Height = *patch.Height
	}
	if patch.Visible != nil {
		visible := *patch.Visible
		image.Visible = &visible
	}
	if patch.Watermark != nil && zone == domain.ZoneBillContent {
		image.Watermark = *patch.Watermark
	}
	return true
}

// DeleteImage removes the image placement at index.
func (s *Session) DeleteImage(zone domain.Zone, index int) bool {
	return s.deletePlacement(zone, index, domain.PlacementImage)
}

// ZoneBinds returns the set of non-empty binds currently placed in the zone.
func (s *Session) ZoneBinds(zone domain.Zone) map[string]bool {
	binds := make(map[string]bool)
	for _, placement := range s.Template.Zones[zone] {
		if placement.Kind == domain.PlacementField && placement.Field.Bind != "" {
			binds[placement.Field.Bind] = true
		}
	}
	return binds
}

func (s *Session) zoneHasBind(zone domain.Zone, bind string) bool {
	for _, placement := range s.Template.Zones[zone] {
		if placement.Kind == domain.PlacementField && placement.Field.Bind == bind {
			return true
		}
	}
	return false
}

func (s *Session) fieldAt(zone domain.Zone, index int) *domain.Field {
	placements := s.Template.Zones[zone]
	if index < 0 || index >= len(placements) || placements[index].Kind != domain.PlacementField {
		return nil
	}
	return placements[index].Field
}

func (s *Session) imageAt(zone domain.Zone, index int) *domain.Image {
	placements := s.Template.Zones[zone]
	if index < 0 || index >= len(placements) || placements[index].Kind != domain.PlacementImage {
		return nil
	}
	return placements[index].Image
}

func (s *Session) deletePlacement(zone domain.Zone, index int, kind domain.PlacementKind) bool {
	placements := s.Template.Zones[zone]
	if index < 0 || index >= len(placements) || placements[index].Kind != kind {
		return false
	}
	s.Template.Zones[zone] = append(placements[:index], placements[index+1:]...)
	s.fixSelectionAfterDelete(zone, index)
	return true
}

func isComputed(t domain.FieldType) bool {
	switch t {
	case domain.FieldTypeCurrentDate, domain.FieldTypeCurrentTime, domain.FieldTypePageNumber, domain.FieldTypeTotalPages:
		return true
	default:
		return false
	}
}
