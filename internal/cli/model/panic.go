package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/panes/internal/logging"
)

// panicLogged logs panics raised by the wrapped model before Bubble Tea
// recovers them and restores the terminal.
type panicLogged struct {
	ctx   context.Context
	inner tea.Model
}

// WithPanicLogging wraps m so a panic in Init, Update or View reaches the
// log file with its stack trace. The panic still propagates.
func WithPanicLogging(ctx context.Context, m tea.Model) tea.Model {
	return &panicLogged{ctx: ctx, inner: m}
}

func (p *panicLogged) Init() tea.Cmd {
	defer logging.RecoverPanic(p.ctx)
	return p.inner.Init()
}

func (p *panicLogged) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer logging.RecoverPanic(p.ctx)
	next, cmd := p.inner.Update(msg)
	p.inner = next
	return p, cmd
}

func (p *panicLogged) View() string {
	defer logging.RecoverPanic(p.ctx)
	return p.inner.View()
}
