package domain

import (
	"encoding/json"
	"fmt"
)

// PlacementKind tags the concrete type held by a Placement.
type PlacementKind string

const (
	PlacementField PlacementKind = "field"
	PlacementImage PlacementKind = "image"
)

// Placement is a tagged union of the element kinds a zone can hold. Exactly
// one of Field or Image is non-nil, matching Kind.
type Placement struct {
	Kind  PlacementKind
	Field *Field
	Image *Image
}

// FieldPlacement wraps a field as a placement.
func FieldPlacement(f Field) Placement {
	return Placement{Kind: PlacementField, Field: &f}
}

// ImagePlacement wraps an image as a placement.
func ImagePlacement(img Image) Placement {
	return Placement{Kind: PlacementImage, Image: &img}
}

type fieldEnvelope struct {
	Type PlacementKind `json:"type"`
	Field
}

type imageEnvelope struct {
	Type PlacementKind `json:"type"`
	Image
}

// MarshalJSON flattens the placement into a single object with a "type"
// discriminator, the shape the print engine consumes.
func (p Placement) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PlacementField:
		if p.Field == nil {
			return nil, fmt.Errorf("field placement without field")
		}
		return json.Marshal(fieldEnvelope{Type: PlacementField, Field: *p.Field})
	case PlacementImage:
		if p.Image == nil {
			return nil, fmt.Errorf("image placement without image")
		}
		return json.Marshal(imageEnvelope{Type: PlacementImage, Image: *p.Image})
	default:
		return nil, fmt.Errorf("unknown placement kind %q", p.Kind)
	}
}

// UnmarshalJSON restores the tagged union. An object without a "type" tag is
// read as a field for compatibility with templates saved before images were
// supported.
func (p *Placement) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type PlacementKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Type {
	case PlacementImage:
		var env imageEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		*p = Placement{Kind: PlacementImage, Image: &env.Image}
		return nil
	case PlacementField, "":
		var env fieldEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		*p = Placement{Kind: PlacementField, Field: &env.Field}
		return nil
	default:
		return fmt.Errorf("unknown placement kind %q", probe.Type)
	}
}
