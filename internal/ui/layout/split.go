package layout

import (
	"math"

	"github.com/bnema/panes/internal/domain/entity"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RatioAt returns the position of p along axis as a percentage of rect.
// The result is not clamped and may fall outside [0, 100] when the pointer
// is outside the container. ok is false when the container has no extent
// along the axis or the result is not a finite number.
func RatioAt(rect entity.Rect, p entity.Point, axis entity.Axis) (ratio float64, ok bool) {
	var offset, extent float64
	switch axis {
	case entity.AxisHorizontal:
		offset, extent = p.X-rect.Left, rect.Width
	case entity.AxisVertical:
		offset, extent = p.Y-rect.Top, rect.Height
	default:
		return 0, false
	}

	if extent <= 0 {
		return 0, false // Not laid out yet
	}

	ratio = offset / extent * 100
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, false
	}
	return ratio, true
}

// SplitCells converts a split percentage into integer cell sizes for the
// primary (left/top) and secondary (right/bottom) panes of a container that is
// total cells long. divider cells sit between the two panes, starting at
// offset primary.
func SplitCells(total int, ratio float64, divider int) (primary, secondary int) {
	avail := total - divider
	if avail <= 0 {
		return 0, 0
	}

	primary = int(math.Round(float64(total) * ratio / 100))
	primary = max(0, min(primary, avail))
	return primary, avail - primary
}

// DividerHit reports whether pos is within hitArea cells of a divider at
// dividerPos. A divider a single cell wide is hard to grab with a mouse.
func DividerHit(pos, dividerPos, hitArea int) bool {
	return pos >= dividerPos-hitArea && pos <= dividerPos+hitArea
}
