package entity

// DragState is the state of a resizer's drag session.
// At most one axis can be dragging at a time.
type DragState int

const (
	DragIdle       DragState = iota // No divider is held
	DragHorizontal                  // The left/right divider is held
	DragVertical                    // The top/bottom divider is held
)

// DraggingState returns the dragging state for axis.
func DraggingState(axis Axis) DragState {
	switch axis {
	case AxisHorizontal:
		return DragHorizontal
	case AxisVertical:
		return DragVertical
	default:
		return DragIdle
	}
}

// IsDragging returns true for any state other than DragIdle.
func (s DragState) IsDragging() bool {
	return s == DragHorizontal || s == DragVertical
}

// Axis returns the axis being dragged, or false when idle.
func (s DragState) Axis() (Axis, bool) {
	switch s {
	case DragHorizontal:
		return AxisHorizontal, true
	case DragVertical:
		return AxisVertical, true
	default:
		return 0, false
	}
}

func (s DragState) String() string {
	switch s {
	case DragHorizontal:
		return "dragging_horizontal"
	case DragVertical:
		return "dragging_vertical"
	default:
		return "idle"
	}
}

// RatioChange describes a split ratio update published by a resizer.
type RatioChange struct {
	Axis Axis
	Old  float64
	New  float64
}
