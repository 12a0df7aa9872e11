package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentListing_BoundaryInvariance(t *testing.T) {
	// Cards with wildly different internal nesting depths. Each fragment
	// must begin at its marker and end exactly at the next marker's offset.
	page := `<html><body><div class="list">` +
		`<div class="goods-item"><h3>Flat</h3></div>` +
		`<div class="goods-item"><div><div><div><h3>Deep</h3></div></div></div></div>` +
		`<div class="goods-item"><div><h3>Broken` + // malformed, never closed
		`</body></html>`

	fragments := SegmentListing(page)
	require.Len(t, fragments, 3)

	for i, f := range fragments {
		assert.True(t, strings.HasPrefix(f.Body, cardMarker), "fragment %d must start at its marker", i)
		assert.Equal(t, f.Body, page[f.Start:f.Start+len(f.Body)])
		if i+1 < len(fragments) {
			assert.Equal(t, fragments[i+1].Start, f.Start+len(f.Body), "fragment %d must end at the next marker", i)
		}
	}

	// Last fragment runs to end of text.
	last := fragments[len(fragments)-1]
	assert.Equal(t, len(page), last.Start+len(last.Body))
}

func TestSegmentListing_MarkerCount(t *testing.T) {
	tests := []struct {
		name string
		page string
		want int
	}{
		{"empty page", "", 0},
		{"no markers", "<html><div class='other'>nothing here</div></html>", 0},
		{"single card", `<div class="goods-item"><h3>Solo</h3></div>`, 1},
		{"five cards", strings.Repeat(`<div class="goods-item"><h3>X</h3></div>`, 5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, SegmentListing(tt.page), tt.want)
		})
	}
}
