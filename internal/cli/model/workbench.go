// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panes/internal/cli/styles"
	"github.com/bnema/panes/internal/domain/entity"
	"github.com/bnema/panes/internal/infrastructure/config"
	"github.com/bnema/panes/internal/logging"
	"github.com/bnema/panes/internal/ui/layout"
)

const (
	dividerCells    = 1
	titleHeight     = 1
	maxConsoleLines = 200
)

// WorkbenchConfig holds configuration for the workbench model.
type WorkbenchConfig struct {
	Config *config.Config
	Theme  *styles.Theme

	// Statement is the problem markdown. Empty shows SampleStatement.
	Statement string
	// Code seeds the editor. Empty seeds a sample solution.
	Code string

	// Pointer receives pointer-shape escape sequences while a divider is
	// dragged. Nil disables them.
	Pointer io.Writer
	// Session is the run's log session ID, shown in the console so a run can
	// be found in the shared log file.
	Session string
}

type workbenchGeometry struct {
	bodyHeight    int
	leftWidth     int
	rightWidth    int
	editorHeight  int
	consoleHeight int
}

// themeChangedMsg carries a reloaded palette into the update loop.
type themeChangedMsg struct {
	palette config.ColorPalette
}

// ThemeChanged returns the message that re-themes a running workbench.
func ThemeChanged(cfg *config.Config) tea.Msg {
	return themeChangedMsg{palette: cfg.Appearance.Palette}
}

// WorkbenchModel is a three-pane problem workbench: the statement on the
// left, a code editor top-right and a console bottom-right. Both dividers
// can be dragged with the mouse or moved from the keyboard.
type WorkbenchModel struct {
	ctx        context.Context
	theme      *styles.Theme
	keys       workbenchKeyMap
	resizeKeys resizeKeyMap
	help       help.Model

	resizer     *layout.Resizable
	dispatcher  *layout.Dispatcher
	surface     *layout.TerminalSurface
	unsubscribe func()

	statement     viewport.Model
	editor        textarea.Model
	console       viewport.Model
	markdown      string
	renderedWidth int
	consoleLines  []string

	width    int
	height   int
	geo      workbenchGeometry
	hitArea  int
	step     float64
	showHelp bool

	resizeMode  bool
	modeBlurred bool
	dragBlurred bool
	closed      bool
}

// NewWorkbenchModel creates the workbench.
func NewWorkbenchModel(ctx context.Context, wc WorkbenchConfig) *WorkbenchModel {
	cfg := wc.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := wc.Theme
	if theme == nil {
		theme = styles.NewTheme(cfg)
	}
	markdown := wc.Statement
	if strings.TrimSpace(markdown) == "" {
		markdown = SampleStatement
	}
	code := wc.Code
	if code == "" {
		code = sampleSolution
	}

	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.Placeholder = "Write your solution here"
	editor.CharLimit = 0
	editor.SetValue(code)
	editor.Blur()

	m := &WorkbenchModel{
		ctx:        logging.WithComponent(ctx, "workbench"),
		theme:      theme,
		keys:       defaultWorkbenchKeyMap(cfg.Resize.ActivationShortcut),
		resizeKeys: defaultResizeKeyMap(cfg.Resize.ActivationShortcut),
		help:       help.New(),
		dispatcher: layout.NewDispatcher(),
		surface:    layout.NewTerminalSurface(wc.Pointer),
		statement:  viewport.New(0, 0),
		editor:     editor,
		console:    viewport.New(0, 0),
		markdown:   markdown,
		hitArea:    cfg.Layout.DividerHitArea,
		step:       cfg.Resize.StepPercent,
	}
	m.applyTheme(theme)

	m.resizer = layout.NewResizable(ctx, layout.ResizableOptions{
		Horizontal: cfg.Layout.Horizontal.ToResizeConfig(),
		Vertical:   cfg.Layout.Vertical.ToResizeConfig(),
		Container:  m.container,
		Target:     m.dispatcher,
		Style:      layout.NewDragStyle(m.surface),
	})
	m.unsubscribe = m.resizer.Subscribe(m.onRatioChange)

	if wc.Session != "" {
		m.logf("session %s", logging.ShortSessionID(wc.Session))
	}
	m.logf("drag a divider or press %s to resize", cfg.Resize.ActivationShortcut)
	return m
}

// Init implements tea.Model.
func (m *WorkbenchModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *WorkbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		logging.FromContext(m.ctx).Debug().
			Int("width", msg.Width).
			Int("height", msg.Height).
			Msg("window resized")
		return m, nil

	case themeChangedMsg:
		m.applyTheme(styles.NewThemeFromPalette(msg.palette))
		m.logf("theme reloaded")
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.editor.Focused() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WorkbenchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// Escape during a drag belongs to the drag.
	if m.dispatcher.HandleKey(msg) {
		m.syncSelection()
		return m, nil
	}

	if m.resizeMode {
		m.handleResizeKey(msg)
		return m, nil
	}

	if key.Matches(msg, m.keys.ResizeMode) {
		m.enterResizeMode()
		return m, nil
	}

	if m.editor.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.editor.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.relayout()
	case key.Matches(msg, m.keys.Edit):
		return m, m.editor.Focus()
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.statement, cmd = m.statement.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WorkbenchModel) handleResizeKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.resizeKeys.Narrow):
		m.resizer.Nudge(entity.AxisHorizontal, -m.step)
	case key.Matches(msg, m.resizeKeys.Widen):
		m.resizer.Nudge(entity.AxisHorizontal, m.step)
	case key.Matches(msg, m.resizeKeys.Raise):
		m.resizer.Nudge(entity.AxisVertical, -m.step)
	case key.Matches(msg, m.resizeKeys.Lower):
		m.resizer.Nudge(entity.AxisVertical, m.step)
	case key.Matches(msg, m.resizeKeys.Reset):
		m.resizer.Reset(entity.AxisHorizontal)
		m.resizer.Reset(entity.AxisVertical)
	case key.Matches(msg, m.resizeKeys.Exit, m.resizeKeys.Shortcut):
		m.exitResizeMode()
	}
}

func (m *WorkbenchModel) enterResizeMode() {
	m.resizeMode = true
	if m.editor.Focused() {
		m.editor.Blur()
		m.modeBlurred = true
	}
	m.relayout()
}

func (m *WorkbenchModel) exitResizeMode() {
	m.resizeMode = false
	if m.modeBlurred {
		m.modeBlurred = false
		m.editor.Focus()
	}
	m.relayout()
}

func (m *WorkbenchModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Motion and release go to whoever is listening, i.e. an active drag.
	if m.dispatcher.HandleMouse(msg) {
		m.syncSelection()
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if axis, ok := m.dividerAt(msg.X, msg.Y); ok {
			m.resizer.PointerDown(axis, entity.Point{X: float64(msg.X), Y: float64(msg.Y)})
			m.syncSelection()
			return nil
		}
		return m.focusAt(msg.X, msg.Y)
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}

	// Wheel scrolling for the pane under the pointer.
	var cmd tea.Cmd
	switch {
	case msg.X < m.geo.leftWidth:
		m.statement, cmd = m.statement.Update(msg)
	case msg.Y > m.geo.editorHeight && msg.Y < m.geo.bodyHeight:
		m.console, cmd = m.console.Update(msg)
	}
	return cmd
}

// dividerAt hit-tests a press against both dividers.
func (m *WorkbenchModel) dividerAt(x, y int) (entity.Axis, bool) {
	g := m.geo
	if y < 0 || y >= g.bodyHeight {
		return 0, false
	}
	if x == g.leftWidth {
		return entity.AxisHorizontal, true
	}
	// The editor/console row wins over the hit area of the column.
	if x > g.leftWidth && layout.DividerHit(y, g.editorHeight, m.hitArea) {
		return entity.AxisVertical, true
	}
	if layout.DividerHit(x, g.leftWidth, m.hitArea) {
		return entity.AxisHorizontal, true
	}
	return 0, false
}

func (m *WorkbenchModel) focusAt(x, y int) tea.Cmd {
	if x > m.geo.leftWidth && y < m.geo.editorHeight && !m.resizeMode {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// syncSelection keeps the editor unfocused while the drag style suppresses
// selection, and gives focus back once the drag ends.
func (m *WorkbenchModel) syncSelection() {
	if !m.surface.SelectionEnabled() {
		if m.editor.Focused() {
			m.editor.Blur()
			m.dragBlurred = true
		}
		return
	}
	if m.dragBlurred {
		m.dragBlurred = false
		if !m.resizeMode {
			m.editor.Focus()
		}
	}
}

func (m *WorkbenchModel) onRatioChange(c entity.RatioChange) {
	logging.FromContext(logging.WithAxis(m.ctx, c.Axis)).Trace().
		Float64("old", c.Old).
		Float64("new", c.New).
		Msg("ratio changed")

	m.relayout()
	m.logf("%s divider %.1f%% → %.1f%%", c.Axis, c.Old, c.New)
}

// container is the box both ratios are measured against: the whole body,
// footer excluded.
func (m *WorkbenchModel) container() entity.Rect {
	return entity.Rect{Width: float64(m.width), Height: float64(m.geo.bodyHeight)}
}

func (m *WorkbenchModel) relayout() {
	g := workbenchGeometry{bodyHeight: max(0, m.height-m.footerHeight())}
	g.leftWidth, g.rightWidth = layout.SplitCells(m.width, m.resizer.Ratio(entity.AxisHorizontal), dividerCells)
	g.editorHeight, g.consoleHeight = layout.SplitCells(g.bodyHeight, m.resizer.Ratio(entity.AxisVertical), dividerCells)
	m.geo = g

	m.statement.Width = g.leftWidth
	m.statement.Height = max(0, g.bodyHeight-titleHeight)
	m.editor.SetWidth(g.rightWidth)
	m.editor.SetHeight(max(0, g.editorHeight-titleHeight))
	m.console.Width = g.rightWidth
	m.console.Height = max(0, g.consoleHeight-titleHeight)

	m.renderStatement()
}

// renderStatement re-renders the markdown when the pane width changed.
func (m *WorkbenchModel) renderStatement() {
	w := m.geo.leftWidth
	if w <= 0 || w == m.renderedWidth {
		return
	}
	m.renderedWidth = w

	out := m.markdown
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(w-4, 10)),
	)
	if err == nil {
		out, err = r.Render(m.markdown)
	}
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("markdown render failed, showing raw text")
		out = m.markdown
	}
	m.statement.SetContent(out)
}

func (m *WorkbenchModel) applyTheme(theme *styles.Theme) {
	m.theme = theme
	m.help.Styles.ShortKey = theme.HelpKey
	m.help.Styles.ShortDesc = theme.HelpDesc
	m.help.Styles.FullKey = theme.HelpKey
	m.help.Styles.FullDesc = theme.HelpDesc
}

func (m *WorkbenchModel) logf(format string, args ...any) {
	m.consoleLines = append(m.consoleLines, fmt.Sprintf(format, args...))
	if n := len(m.consoleLines); n > maxConsoleLines {
		m.consoleLines = m.consoleLines[n-maxConsoleLines:]
	}
	m.console.SetContent(strings.Join(m.consoleLines, "\n"))
	m.console.GotoBottom()
}

func (m *WorkbenchModel) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

// Close ends any drag, restores the pointer and drops the ratio
// subscription. Safe to call more than once.
func (m *WorkbenchModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.resizer.Close()
}

// View implements tea.Model.
func (m *WorkbenchModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderStatementPane(),
		m.renderDividerColumn(),
		m.renderRightColumn(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m *WorkbenchModel) renderStatementPane() string {
	g := m.geo
	content := m.paneTitle("Problem", !m.editor.Focused(), g.leftWidth) + "\n" + m.statement.View()
	return block(g.leftWidth, g.bodyHeight, content)
}

func (m *WorkbenchModel) renderRightColumn() string {
	g := m.geo
	parts := make([]string, 0, 3)

	if g.editorHeight > 0 {
		editor := m.paneTitle("Code", m.editor.Focused(), g.rightWidth) + "\n" + m.editor.View()
		parts = append(parts, block(g.rightWidth, g.editorHeight, editor))
	}

	style := m.theme.Divider
	if m.resizer.IsDragging(entity.AxisVertical) || m.resizeMode {
		style = m.theme.DividerActive
	}
	parts = append(parts, style.Render(strings.Repeat("─", max(0, g.rightWidth))))

	if g.consoleHeight > 0 {
		console := m.paneTitle("Console", false, g.rightWidth) + "\n" + m.console.View()
		parts = append(parts, block(g.rightWidth, g.consoleHeight, console))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *WorkbenchModel) renderDividerColumn() string {
	g := m.geo
	lines := make([]string, g.bodyHeight)
	for y := range lines {
		lines[y] = "│"
		if y == g.editorHeight {
			lines[y] = "├"
		}
	}

	style := m.theme.Divider
	if m.resizer.IsDragging(entity.AxisHorizontal) || m.resizeMode {
		style = m.theme.DividerActive
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *WorkbenchModel) paneTitle(label string, active bool, width int) string {
	style := m.theme.PaneTitleDim
	if active {
		style = m.theme.PaneTitle
	}
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(style.Render(label))
}

func (m *WorkbenchModel) currentKeys() help.KeyMap {
	if m.resizeMode {
		return m.resizeKeys
	}
	return m.keys
}

func (m *WorkbenchModel) footerHeight() int {
	if m.showHelp {
		return lipgloss.Height(m.help.FullHelpView(m.currentKeys().FullHelp()))
	}
	return 1
}

func (m *WorkbenchModel) renderFooter() string {
	keys := m.currentKeys()
	if m.showHelp {
		return m.help.FullHelpView(keys.FullHelp())
	}

	status := m.statusText()
	shortHelp := m.help.ShortHelpView(keys.ShortHelp())
	gap := max(1, m.width-lipgloss.Width(status)-lipgloss.Width(shortHelp))
	line := status + strings.Repeat(" ", gap) + shortHelp
	return m.theme.StatusBar.MaxWidth(m.width).Render(line)
}

func (m *WorkbenchModel) statusText() string {
	var badge string
	switch state := m.resizer.State(); {
	case state.IsDragging():
		axis, _ := state.Axis()
		badge = m.theme.ModeBadge.Render("DRAG "+strings.ToUpper(axis.String())) + " "
	case m.resizeMode:
		badge = m.theme.ModeBadge.Render("RESIZE") + " "
	}

	return fmt.Sprintf("%s%s H %.0f%%  V %.0f%%",
		badge,
		styles.IconPane,
		m.resizer.Ratio(entity.AxisHorizontal),
		m.resizer.Ratio(entity.AxisVertical),
	)
}

func block(w, h int, content string) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(w).Height(h).
		MaxWidth(w).MaxHeight(h).
		Render(content)
}
