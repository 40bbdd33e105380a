package model

import "github.com/charmbracelet/bubbles/key"

// workbenchKeyMap defines keybindings for the workbench.
type workbenchKeyMap struct {
	Edit       key.Binding
	Blur       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	ResizeMode key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k workbenchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.ResizeMode, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k workbenchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Blur},
		{k.ScrollUp, k.ScrollDown},
		{k.ResizeMode, k.Help, k.Quit},
	}
}

func defaultWorkbenchKeyMap(resizeShortcut string) workbenchKeyMap {
	return workbenchKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("i", "enter", "tab"),
			key.WithHelp("i", "edit code"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave editor"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
			key.WithHelp("↑/k", "scroll problem"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down", "pgdown"),
			key.WithHelp("↓/j", "scroll problem"),
		),
		ResizeMode: key.NewBinding(
			key.WithKeys(resizeShortcut),
			key.WithHelp(resizeShortcut, "resize mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// resizeKeyMap is active while keyboard resize mode is on.
type resizeKeyMap struct {
	Narrow   key.Binding
	Widen    key.Binding
	Raise    key.Binding
	Lower    key.Binding
	Reset    key.Binding
	Exit     key.Binding
	Shortcut key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k resizeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Widen, k.Raise, k.Lower, k.Reset, k.Exit}
}

// FullHelp returns keybindings for the full help view.
func (k resizeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrow, k.Widen},
		{k.Raise, k.Lower},
		{k.Reset, k.Exit},
	}
}

func defaultResizeKeyMap(resizeShortcut string) resizeKeyMap {
	return resizeKeyMap{
		Narrow: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "divider left"),
		),
		Widen: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "divider right"),
		),
		Raise: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "divider up"),
		),
		Lower: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "divider down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "done"),
		),
		Shortcut: key.NewBinding(
			key.WithKeys(resizeShortcut),
		),
	}
}
