package usecase

import "strings"

// cardMarker is the opening tag of one catalog card in the listing markup.
// Every product card starts with this exact structural marker.
const cardMarker = `<div class="goods-item"`

// Fragment is the markup span believed to describe exactly one catalog card.
// It starts at its card marker and runs to the next marker, or to the end of
// the page for the last card.
type Fragment struct {
	Start int
	Body  string
}

// SegmentListing splits raw listing markup into per-card fragments by
// scanning for card markers left to right. Boundaries are defined purely by
// the next marker's offset, which keeps segmentation correct for any nesting
// depth inside a card; counting closing tags would silently merge or
// truncate cards whenever the template changes. Zero markers yields an empty
// result, not an error.
func SegmentListing(page string) []Fragment {
	var starts []int
	for offset := 0; ; {
		i := strings.Index(page[offset:], cardMarker)
		if i < 0 {
			break
		}
		starts = append(starts, offset+i)
		offset += i + len(cardMarker)
	}

	fragments := make([]Fragment, 0, len(starts))
	for i, start := range starts {
		end := len(page)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		fragments = append(fragments, Fragment{Start: start, Body: page[start:end]})
	}
	return fragments
}
