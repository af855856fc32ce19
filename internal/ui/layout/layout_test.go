package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestLevelMeter(t *testing.T) {
	tests := []struct {
		fraction float64
		filled   int
	}{
		{0, 0},
		{0.25, 2},
		{0.99, 9},
		{1, 10},
		{-1, 0},
		{3, 10},
	}
	for _, tt := range tests {
		got := levelMeter(tt.fraction)
		assert.Equal(t, tt.filled, strings.Count(got, "▰"), "fraction %v", tt.fraction)
		assert.Equal(t, meterCells-tt.filled, strings.Count(got, "▱"), "fraction %v", tt.fraction)
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Title: "Frontend Architect", Level: 3, TotalXP: 2500, LevelFraction: 0.5}, 120)
	assert.Contains(t, out, "LevelUp")
	assert.Contains(t, out, "Frontend Architect")
	assert.Contains(t, out, "Lv 3")
	assert.Contains(t, out, "2500 XP")
	assert.NotContains(t, out, "generating")

	busy := RenderHeader(HeaderInfo{Title: "Generate Roadmap", Level: 1, Busy: true}, 120)
	assert.Contains(t, busy, "generating…")
}

func TestRenderFooterCompact(t *testing.T) {
	hints := []KeyHint{{Key: "g", Description: "Generate"}, {Key: "q", Description: "Quit"}}

	wide := RenderFooter(hints, 120)
	assert.Contains(t, wide, "Generate")

	narrow := RenderFooter(hints, 80)
	assert.NotContains(t, narrow, "Generate")
	assert.Contains(t, narrow, "g")
}

func TestRenderFrameGivesBodyTheRemainingHeight(t *testing.T) {
	header := RenderHeader(HeaderInfo{Title: "t", Level: 1}, 100)
	footer := RenderFooter(nil, 100)

	var gotW, gotH int
	frame := RenderFrame(header, footer, 100, 30, func(w, h int) string {
		gotW, gotH = w, h
		return "body"
	})

	assert.Equal(t, 100, gotW)
	assert.Equal(t, 30-lipgloss.Height(header)-lipgloss.Height(footer), gotH)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.Contains(t, frame, "body")
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 40))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))
}
