package layout

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/panes/internal/domain/entity"
)

type registration struct {
	id      ListenerID
	kind    EventKind
	handler Handler
}

// Dispatcher is the EventTarget for a Bubble Tea program. The root model
// forwards every mouse message (and Escape) to it and the dispatcher fans
// them out to whatever drag sessions are listening.
//
// Dispatcher is meant to be used from the Bubble Tea update loop only.
type Dispatcher struct {
	nextID    ListenerID
	listeners []registration
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener implements EventTarget.
func (d *Dispatcher) AddListener(kind EventKind, handler Handler) ListenerID {
	d.nextID++
	d.listeners = append(d.listeners, registration{id: d.nextID, kind: kind, handler: handler})
	return d.nextID
}

// RemoveListener implements EventTarget. Removing an unknown id is a no-op.
func (d *Dispatcher) RemoveListener(id ListenerID) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Count returns the number of listeners registered for kind.
func (d *Dispatcher) Count(kind EventKind) int {
	n := 0
	for _, l := range d.listeners {
		if l.kind == kind {
			n++
		}
	}
	return n
}

// Len returns the total number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Dispatch delivers ev to every listener of its kind in registration order.
// Listeners removed by an earlier handler during the same dispatch are skipped.
// It returns true if at least one listener ran.
func (d *Dispatcher) Dispatch(ev PointerEvent) bool {
	var ids []ListenerID
	for _, l := range d.listeners {
		if l.kind == ev.Kind {
			ids = append(ids, l.id)
		}
	}

	handled := false
	for _, id := range ids {
		h, ok := d.lookup(id)
		if !ok {
			continue
		}
		h(ev)
		handled = true
	}
	return handled
}

func (d *Dispatcher) lookup(id ListenerID) (Handler, bool) {
	for _, l := range d.listeners {
		if l.id == id {
			return l.handler, true
		}
	}
	return nil, false
}

// HandleMouse translates a Bubble Tea mouse message into a pointer event.
// Presses are not dispatched: they belong to whatever is under the pointer.
func (d *Dispatcher) HandleMouse(msg tea.MouseMsg) bool {
	p := entity.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionMotion:
		return d.Dispatch(PointerEvent{Kind: EventPointerMove, Point: p})
	case tea.MouseActionRelease:
		return d.Dispatch(PointerEvent{Kind: EventPointerUp, Point: p})
	default:
		return false
	}
}

// HandleKey dispatches a cancel event for Escape. It returns false (so the
// key falls through to the caller) when nobody is listening.
func (d *Dispatcher) HandleKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyEsc || d.Count(EventCancel) == 0 {
		return false
	}
	return d.Dispatch(PointerEvent{Kind: EventCancel})
}
