package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/panes/internal/domain/entity"
	"github.com/bnema/panes/internal/ui/layout"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"below", -5, 20},
		{"at_min", 20, 20},
		{"inside", 42.5, 42.5},
		{"at_max", 80, 80},
		{"above", 90, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, layout.Clamp(tt.input, 20, 80))
		})
	}
}

func TestRatioAt(t *testing.T) {
	rect := entity.Rect{Left: 10, Top: 4, Width: 200, Height: 40}

	tests := []struct {
		name     string
		point    entity.Point
		axis     entity.Axis
		expected float64
	}{
		{"horizontal_left_edge", entity.Point{X: 10}, entity.AxisHorizontal, 0},
		{"horizontal_middle", entity.Point{X: 110}, entity.AxisHorizontal, 50},
		{"horizontal_outside_left", entity.Point{X: 0}, entity.AxisHorizontal, -5},
		{"horizontal_outside_right", entity.Point{X: 250}, entity.AxisHorizontal, 120},
		{"vertical_quarter", entity.Point{Y: 14}, entity.AxisVertical, 25},
		{"vertical_bottom", entity.Point{Y: 44}, entity.AxisVertical, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.RatioAt(rect, tt.point, tt.axis)

			assert.True(t, ok)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestRatioAt_UnusableGeometry(t *testing.T) {
	tests := []struct {
		name string
		rect entity.Rect
		axis entity.Axis
	}{
		{"zero_width", entity.Rect{Width: 0, Height: 10}, entity.AxisHorizontal},
		{"zero_height", entity.Rect{Width: 10, Height: 0}, entity.AxisVertical},
		{"negative_width", entity.Rect{Width: -10, Height: 10}, entity.AxisHorizontal},
		{"nan_width", entity.Rect{Width: math.NaN(), Height: 10}, entity.AxisHorizontal},
		{"inf_width", entity.Rect{Width: math.Inf(1), Left: math.Inf(-1)}, entity.AxisHorizontal},
		{"unknown_axis", entity.Rect{Width: 10, Height: 10}, entity.Axis(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := layout.RatioAt(tt.rect, entity.Point{X: 5, Y: 5}, tt.axis)
			assert.False(t, ok)
		})
	}
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		name               string
		total              int
		ratio              float64
		divider            int
		primary, secondary int
	}{
		{"half", 101, 50, 1, 51, 49},
		{"forty_percent", 100, 40, 1, 40, 59},
		{"no_divider", 80, 25, 0, 20, 60},
		{"full", 10, 100, 1, 9, 0},
		{"empty", 10, 0, 1, 0, 9},
		{"too_small", 1, 50, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, secondary := layout.SplitCells(tt.total, tt.ratio, tt.divider)

			assert.Equal(t, tt.primary, primary)
			assert.Equal(t, tt.secondary, secondary)
			if tt.total > tt.divider {
				assert.Equal(t, tt.total, primary+secondary+tt.divider)
			}
		})
	}
}

func TestDividerHit(t *testing.T) {
	assert.True(t, layout.DividerHit(40, 40, 0))
	assert.False(t, layout.DividerHit(41, 40, 0))
	assert.True(t, layout.DividerHit(38, 40, 2))
	assert.True(t, layout.DividerHit(42, 40, 2))
	assert.False(t, layout.DividerHit(43, 40, 2))
}
