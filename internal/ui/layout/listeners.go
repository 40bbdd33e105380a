package layout

// listenerSet owns the listeners one drag session puts on the event target.
// attach and detach are idempotent.
type listenerSet struct {
	target EventTarget
	ids    []ListenerID
}

func (s *listenerSet) attach(move, up, cancel Handler) {
	if s.target == nil || len(s.ids) > 0 {
		return
	}
	s.ids = []ListenerID{
		s.target.AddListener(EventPointerMove, move),
		s.target.AddListener(EventPointerUp, up),
		s.target.AddListener(EventCancel, cancel),
	}
}

func (s *listenerSet) detach() {
	if s.target == nil {
		return
	}
	for _, id := range s.ids {
		s.target.RemoveListener(id)
	}
	s.ids = nil
}

func (s *listenerSet) attached() bool {
	return len(s.ids) > 0
}
