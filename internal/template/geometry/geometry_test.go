package geometry

import (
	"testing"

	"github.com/smallbiznis/billcanvas/internal/template/domain"
)

func TestCanvasSizeLookup(t *testing.T) {
	cases := []struct {
		page domain.Page
		w, h float64
	}{
		{domain.Page{Size: domain.PageA4, Orientation: domain.Portrait}, 794, 1123},
		{domain.Page{Size: domain.PageA4, Orientation: domain.Landscape}, 1123, 794},
		{domain.Page{Size: domain.PageLetter, Orientation: domain.Portrait}, 816, 1056},
		{domain.Page{Size: domain.PageLegal, Orientation: domain.Portrait}, 816, 1344},
	}
	for _, tc := range cases {
		w, h := CanvasSize(tc.page)
		if w != tc.w || h != tc.h {
			t.Fatalf("%s/%s: expected %vx%v, got %vx%v", tc.page.Size, tc.page.Orientation, tc.w, tc.h, w, h)
		}
	}
}

func TestResolveZoneTotality(t *testing.T) {
	page := domain.Page{Size: domain.PageA4, Orientation: domain.Portrait}
	heights := domain.SectionHeights{
		domain.ZonePageHeader: 50,
		domain.ZoneHeader:     120,
		domain.ZoneBillFooter: 100,
		domain.ZonePageFooter: 40,
	}
	_, canvasH := CanvasSize(page)

	seen := make(map[domain.Zone]bool)
	prevIndex := 0
	for y := 0.0; y < canvasH; y++ {
		zone := ResolveZone(y, heights, page, "")
		if !zone.Valid() {
			t.Fatalf("y=%v resolved to invalid zone %q", y, zone)
		}
		seen[zone] = true
		idx := zoneIndex(zone)
		if idx < prevIndex {
			t.Fatalf("y=%v: zone order went backwards (%s after index %d)", y, zone, prevIndex)
		}
		prevIndex = idx
	}
	for _, zone := range domain.ZoneOrder {
		if !seen[zone] {
			t.Fatalf("zone %s never resolved across the canvas sweep", zone)
		}
	}
}

func TestResolveZoneClamps(t *testing.T) {
	page := domain.Page{Size: domain.PageA4, Orientation: domain.Portrait}
	heights := domain.SectionHeights{}

	if zone := ResolveZone(-15, heights, page, ""); zone != domain.ZonePageHeader {
		t.Fatalf("expected pointer above canvas to clamp to pageHeader, got %s", zone)
	}
	if zone := ResolveZone(99999, heights, page, ""); zone != domain.ZonePageFooter {
		t.Fatalf("expected pointer below canvas to clamp to pageFooter, got %s", zone)
	}
}

func TestResolveZoneHintWins(t *testing.T) {
	page := domain.Page{Size: domain.PageA4, Orientation: domain.Portrait}
	if zone := ResolveZone(5, domain.SectionHeights{}, page, domain.ZoneBillFooter); zone != domain.ZoneBillFooter {
		t.Fatalf("expected hint to override geometry, got %s", zone)
	}
	// A bogus hint falls back to geometry.
	if zone := ResolveZone(5, domain.SectionHeights{}, page, "sidebar"); zone != domain.ZonePageHeader {
		t.Fatalf("expected invalid hint to be ignored, got %s", zone)
	}
}

func TestZeroHeightZoneIsSkipped(t *testing.T) {
	page := domain.Page{Size: domain.PageA4, Orientation: domain.Portrait}
	heights := domain.SectionHeights{domain.ZonePageHeader: 0}

	tops := ZoneTops(heights, page)
	// pageHeader keeps its stored zero height, so the pixel at its top
	// belongs to the gap claimed by header.
	if zone := ResolveZone(tops[domain.ZonePageHeader], heights, page, ""); zone != domain.ZoneHeader {
		t.Fatalf("expected zero-height pageHeader to yield header, got %s", zone)
	}
}

func TestRelativeRoundTrip(t *testing.T) {
	page := domain.Page{Size: domain.PageLegal, Orientation: domain.Landscape}
	heights := domain.SectionHeights{domain.ZoneHeader: 90}

	for _, zone := range domain.ZoneOrder {
		x, y := 123.0, ZoneTops(heights, page)[zone]+17
		relX, relY := ToRelative(x, y, zone, heights, page)
		backX, backY := ToAbsolute(relX, relY, zone, heights, page)
		if backX != x || backY != y {
			t.Fatalf("%s: round trip (%v,%v) -> (%v,%v)", zone, x, y, backX, backY)
		}
	}
}

func TestToRelativeClampsNegativeY(t *testing.T) {
	page := domain.Page{Size: domain.PageA4, Orientation: domain.Portrait}
	heights := domain.SectionHeights{}

	_, relY := ToRelative(0, 0, domain.ZoneBillContent, heights, page)
	if relY != 0 {
		t.Fatalf("expected relY clamped to 0, got %v", relY)
	}
}

func zoneIndex(zone domain.Zone) int {
	for i, z := range domain.ZoneOrder {
		if z == zone {
			return i
		}
	}
	return -1
}
