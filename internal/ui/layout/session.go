package layout

import "github.com/bnema/panes/internal/domain/entity"

// dragSession is the Idle -> Dragging(axis) -> Idle state machine.
// A start while a session is active is refused rather than overwriting it.
type dragSession struct {
	state entity.DragState
	// ratio of the dragged axis when the session started, restored on cancel
	startRatio float64
}

func (s *dragSession) start(axis entity.Axis, ratio float64) bool {
	if s.state.IsDragging() || !axis.Valid() {
		return false
	}
	s.state = entity.DraggingState(axis)
	s.startRatio = ratio
	return true
}

func (s *dragSession) end() (entity.Axis, bool) {
	axis, ok := s.state.Axis()
	s.state = entity.DragIdle
	s.startRatio = 0
	return axis, ok
}

func (s *dragSession) axis() (entity.Axis, bool) {
	return s.state.Axis()
}
