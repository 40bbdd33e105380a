package model

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panes/internal/cli/styles"
	"github.com/bnema/panes/internal/domain/entity"
	"github.com/bnema/panes/internal/infrastructure/config"
)

// newTestWorkbench returns a 100x41 workbench: a 40-row body and a one-line
// footer. At the default 50/50 split the vertical divider sits in column 50
// and the editor/console divider in row 20.
func newTestWorkbench(t *testing.T) (*WorkbenchModel, *bytes.Buffer) {
	t.Helper()
	var pointer bytes.Buffer
	cfg := config.DefaultConfig()
	m := NewWorkbenchModel(context.Background(), WorkbenchConfig{
		Config:  cfg,
		Theme:   styles.NewTheme(cfg),
		Pointer: &pointer,
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 41})
	return m, &pointer
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWorkbench_InitialGeometry(t *testing.T) {
	m, _ := newTestWorkbench(t)

	assert.Equal(t, workbenchGeometry{
		bodyHeight:    40,
		leftWidth:     50,
		rightWidth:    49,
		editorHeight:  20,
		consoleHeight: 19,
	}, m.geo)
	assert.Contains(t, m.View(), "Problem")
	assert.Contains(t, m.View(), "Console")
}

func TestWorkbench_MouseDragMovesVerticalDivider(t *testing.T) {
	// Arrange
	m, pointer := newTestWorkbench(t)

	// Act
	m.Update(press(50, 10))
	dragging := m.resizer.IsDragging(entity.AxisHorizontal)
	m.Update(motion(30, 10))
	m.Update(release(30, 10))

	// Assert
	assert.True(t, dragging)
	assert.InDelta(t, 30.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
	assert.Equal(t, 30, m.geo.leftWidth)
	assert.Equal(t, entity.DragIdle, m.resizer.State())
	assert.Equal(t, 0, m.dispatcher.Len(), "listeners removed after release")
	assert.Contains(t, pointer.String(), "\x1b]22;col-resize\a")
	assert.Contains(t, pointer.String(), "\x1b]22;default\a")
	assert.True(t, m.surface.SelectionEnabled())
}

func TestWorkbench_MouseDragClampsToBounds(t *testing.T) {
	m, _ := newTestWorkbench(t)

	m.Update(press(50, 10))
	m.Update(motion(2, 10))
	assert.InDelta(t, 20.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)

	m.Update(motion(99, 10))
	assert.InDelta(t, 80.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)

	m.Update(release(99, 10))
	assert.Equal(t, 80, m.geo.leftWidth)
}

func TestWorkbench_MouseDragMovesHorizontalDivider(t *testing.T) {
	m, pointer := newTestWorkbench(t)

	m.Update(press(70, 20))
	require.True(t, m.resizer.IsDragging(entity.AxisVertical))
	m.Update(motion(70, 8))
	m.Update(release(70, 8))

	// 8 of 40 rows is 20%, below the 30% minimum.
	assert.InDelta(t, 30.0, m.resizer.Ratio(entity.AxisVertical), 1e-9)
	assert.Equal(t, 12, m.geo.editorHeight)
	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
	assert.Contains(t, pointer.String(), "row-resize")
}

func TestWorkbench_DividerHitNearJunction(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want entity.Axis
	}{
		{name: "editor row right of column", x: 51, y: 20, want: entity.AxisVertical},
		{name: "editor row inside column hit area", x: 51, y: 21, want: entity.AxisVertical},
		{name: "column itself at editor row", x: 50, y: 20, want: entity.AxisHorizontal},
		{name: "column hit area away from row", x: 51, y: 10, want: entity.AxisHorizontal},
		{name: "left of column", x: 49, y: 20, want: entity.AxisHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestWorkbench(t)

			m.Update(press(tt.x, tt.y))

			assert.True(t, m.resizer.IsDragging(tt.want))
		})
	}
}

func TestWorkbench_PressAwayFromDividersDoesNotDrag(t *testing.T) {
	m, pointer := newTestWorkbench(t)

	m.Update(press(10, 10))
	m.Update(motion(30, 10))

	assert.Equal(t, entity.DragIdle, m.resizer.State())
	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
	assert.Empty(t, pointer.String())
}

func TestWorkbench_EscapeCancelsDrag(t *testing.T) {
	m, _ := newTestWorkbench(t)

	m.Update(press(50, 10))
	m.Update(motion(70, 10))
	require.InDelta(t, 70.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
	assert.Equal(t, entity.DragIdle, m.resizer.State())
	assert.Equal(t, 0, m.dispatcher.Len())

	// Motion after the cancel is ignored.
	m.Update(motion(20, 10))
	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
}

func TestWorkbench_EditorLosesFocusWhileDragging(t *testing.T) {
	m, _ := newTestWorkbench(t)
	m.Update(runeKey('i'))
	require.True(t, m.editor.Focused())

	m.Update(press(50, 10))
	assert.False(t, m.editor.Focused(), "no selection while dragging")

	m.Update(release(50, 10))
	assert.True(t, m.editor.Focused())
}

func TestWorkbench_KeyboardResizeMode(t *testing.T) {
	m, _ := newTestWorkbench(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.True(t, m.resizeMode)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(runeKey('l'))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.InDelta(t, 60.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
	assert.InDelta(t, 55.0, m.resizer.Ratio(entity.AxisVertical), 1e-9)
	assert.Equal(t, 60, m.geo.leftWidth)

	m.Update(runeKey('r'))
	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisVertical), 1e-9)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.resizeMode)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 50.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9, "arrows do nothing outside resize mode")
}

func TestWorkbench_ResizeModeRespectsBounds(t *testing.T) {
	m, _ := newTestWorkbench(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}

	assert.InDelta(t, 20.0, m.resizer.Ratio(entity.AxisHorizontal), 1e-9)
}

func TestWorkbench_RatioChangesAreLoggedToConsole(t *testing.T) {
	m, _ := newTestWorkbench(t)

	m.Update(press(50, 10))
	m.Update(motion(40, 10))
	m.Update(release(40, 10))

	require.NotEmpty(t, m.consoleLines)
	assert.Equal(t, "horizontal divider 50.0% → 40.0%", m.consoleLines[len(m.consoleLines)-1])
}

func TestWorkbench_QuitClosesResizer(t *testing.T) {
	m, pointer := newTestWorkbench(t)
	m.Update(press(50, 10))

	_, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, entity.DragIdle, m.resizer.State())
	assert.Equal(t, 0, m.dispatcher.Len())
	assert.Contains(t, pointer.String(), "\x1b]22;default\a")

	m.Update(press(50, 10))
	assert.Equal(t, entity.DragIdle, m.resizer.State(), "closed workbench ignores presses")
	assert.NotPanics(t, m.Close)
}

func TestWorkbench_ThemeChanged(t *testing.T) {
	m, _ := newTestWorkbench(t)
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#ff00ff"

	m.Update(ThemeChanged(cfg))

	assert.Equal(t, "#ff00ff", string(m.theme.Accent))
	assert.Equal(t, "theme reloaded", m.consoleLines[len(m.consoleLines)-1])
}

func TestWorkbench_HelpShrinksBody(t *testing.T) {
	m, _ := newTestWorkbench(t)

	m.Update(runeKey('?'))

	assert.True(t, m.showHelp)
	assert.Less(t, m.geo.bodyHeight, 40)
}

func TestWorkbench_ShowsShortSessionID(t *testing.T) {
	cfg := config.DefaultConfig()

	m := NewWorkbenchModel(context.Background(), WorkbenchConfig{
		Config:  cfg,
		Theme:   styles.NewTheme(cfg),
		Session: "20261018_101500_a7b3",
	})

	require.NotEmpty(t, m.consoleLines)
	assert.Contains(t, m.consoleLines[0], "session a7b3")
}
