// Package geometry maps pointer coordinates on the designer canvas onto the
// five stacked zones and back. All arithmetic is in logical layout units
// (96 DPI equivalent).
package geometry

import "github.com/smallbiznis/billcanvas/internal/template/domain"

const (
	// TopMargin leaves room for the canvas header above the first zone.
	TopMargin = 40.0
	// ZoneGap is the fixed margin between adjacent zones.
	ZoneGap = 10.0
	// ImportSpacing is the vertical offset between fields placed by a bulk
	// zone import.
	ImportSpacing = 25.0

	// DefaultOriginX and DefaultOriginY position an element when no pointer
	// offset is available, e.g. keyboard-triggered placement.
	DefaultOriginX = 20.0
	DefaultOriginY = 20.0
)

// Default zone heights used while a zone has no explicitly stored height.
// billContent is absent on purpose: when unset it takes the space left
// between the header stack and the footer stack.
var defaultHeights = map[domain.Zone]float64{
	domain.ZonePageHeader: 60,
	domain.ZoneHeader:     150,
	domain.ZoneBillFooter: 150,
	domain.ZonePageFooter: 60,
}

var canvasSizes = map[domain.PageSize][2]float64{
	domain.PageA4:     {794, 1123},
	domain.PageLetter: {816, 1056},
	domain.PageLegal:  {816, 1344},
}

// CanvasSize returns the canvas dimensions for the page settings. Landscape
// swaps width and height. Unknown sizes fall back to A4.
func CanvasSize(page domain.Page) (width, height float64) {
	dims, ok := canvasSizes[page.Size]
	if !ok {
		dims = canvasSizes[domain.PageA4]
	}
	if page.Orientation == domain.Landscape {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}

// HeightOf returns the effective height of a zone: the stored value when one
// exists (0 included), otherwise the default. For billContent the default is
// whatever vertical space the other four zones leave over.
func HeightOf(zone domain.Zone, heights domain.SectionHeights, page domain.Page) float64 {
	if h, ok := heights[zone]; ok {
		return h
	}
	if zone == domain.ZoneBillContent {
		_, canvasH := CanvasSize(page)
		used := TopMargin
		for _, other := range domain.ZoneOrder {
			if other == domain.ZoneBillContent {
				continue
			}
			used += HeightOf(other, heights, page) + ZoneGap
		}
		if remaining := canvasH - used; remaining > 0 {
			return remaining
		}
		return 0
	}
	return defaultHeights[zone]
}

// ZoneTops computes the top edge of every zone. pageHeader, header and
// billContent stack downward from the top margin; pageFooter and billFooter
// anchor upward from the bottom of the canvas.
func ZoneTops(heights domain.SectionHeights, page domain.Page) map[domain.Zone]float64 {
	_, canvasH := CanvasSize(page)

	tops := make(map[domain.Zone]float64, len(domain.ZoneOrder))
	top := TopMargin
	for _, zone := range []domain.Zone{domain.ZonePageHeader, domain.ZoneHeader, domain.ZoneBillContent} {
		tops[zone] = top
		top += HeightOf(zone, heights, page) + ZoneGap
	}

	pageFooterTop := canvasH - HeightOf(domain.ZonePageFooter, heights, page)
	tops[domain.ZonePageFooter] = pageFooterTop
	tops[domain.ZoneBillFooter] = pageFooterTop - ZoneGap - HeightOf(domain.ZoneBillFooter, heights, page)
	return tops
}

// ResolveZone determines which zone a pointer Y coordinate falls in. An
// explicit hint from the drag source wins over geometric containment.
// Containment checks zones top to bottom against [top, top+height); a pointer
// above every zone clamps to pageHeader and below every zone to pageFooter.
func ResolveZone(pointerY float64, heights domain.SectionHeights, page domain.Page, hint domain.Zone) domain.Zone {
	if hint.Valid() {
		return hint
	}

	tops := ZoneTops(heights, page)
	for _, zone := range domain.ZoneOrder {
		bottom := tops[zone] + HeightOf(zone, heights, page)
		// Zones are ordered by top edge, so the first zone whose bottom lies
		// below the pointer owns it. This also claims the inter-zone gaps and
		// the area above the canvas for the nearest zone, keeping the
		// resolver total over the whole canvas height.
		if pointerY < bottom {
			return zone
		}
	}
	return domain.ZonePageFooter
}

// ToRelative converts an absolute canvas coordinate into a coordinate
// relative to the zone's top-left corner. Zones span the full canvas width,
// so only Y is offset; relY is clamped at 0 so a drop on the zone's own
// boundary lands inside it.
func ToRelative(x, y float64, zone domain.Zone, heights domain.SectionHeights, page domain.Page) (relX, relY float64) {
	tops := ZoneTops(heights, page)
	relX = x
	relY = y - tops[zone]
	if relY < 0 {
		relY = 0
	}
	return relX, relY
}

// ToAbsolute is the inverse of ToRelative for points inside the zone.
func ToAbsolute(relX, relY float64, zone domain.Zone, heights domain.SectionHeights, page domain.Page) (x, y float64) {
	tops := ZoneTops(heights, page)
	return relX, relY + tops[zone]
}
