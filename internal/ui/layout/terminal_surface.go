package layout

import (
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// TerminalSurface is a StyleSurface for terminals. The pointer shape is set
// with the OSC 22 escape sequence (xterm, kitty, foot, WezTerm); terminals
// that do not know it ignore it. Selection is a flag the renderer consults.
type TerminalSurface struct {
	mu        sync.Mutex
	out       io.Writer
	shape     string
	selection bool
}

// NewTerminalSurface creates a surface writing escape sequences to out.
func NewTerminalSurface(out io.Writer) *TerminalSurface {
	return &TerminalSurface{out: out, selection: true}
}

// PointerShape implements StyleSurface.
func (s *TerminalSurface) PointerShape() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shape
}

// SetPointerShape implements StyleSurface. An empty shape restores the
// terminal default.
func (s *TerminalSurface) SetPointerShape(shape string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shape = shape
	if s.out == nil {
		return
	}
	name := shape
	if name == "" {
		name = "default"
	}
	_, _ = io.WriteString(s.out, ansi.SetPointerShape(name))
}

// SelectionEnabled implements StyleSurface.
func (s *TerminalSurface) SelectionEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

// SetSelectionEnabled implements StyleSurface.
func (s *TerminalSurface) SetSelectionEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = enabled
}
