package layout

//go:generate mockgen -source=events.go -destination=mocks/mock_event_target.go -package=mocks

import "github.com/bnema/panes/internal/domain/entity"

// EventKind identifies a global pointer event a drag session listens for.
type EventKind int

const (
	EventPointerMove EventKind = iota // Pointer moved with the button held
	EventPointerUp                    // Button released anywhere
	EventCancel                       // Drag abandoned (Escape)
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer_move"
	case EventPointerUp:
		return "pointer_up"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is delivered to listeners registered on an EventTarget.
type PointerEvent struct {
	Kind  EventKind
	Point entity.Point
}

// Handler receives pointer events.
type Handler func(PointerEvent)

// ListenerID identifies a registered listener so it can be removed.
type ListenerID uint64

// EventTarget is the document-level event source drag sessions attach to.
// Listeners receive events regardless of where the pointer is, so a drag keeps
// tracking after the pointer leaves the narrow divider.
type EventTarget interface {
	AddListener(kind EventKind, handler Handler) ListenerID
	RemoveListener(id ListenerID)
}
