package cli

import "github.com/charmbracelet/bubbles/key"

type boardKeyMap struct {
	Quit       key.Binding
	Cancel     key.Binding
	NewProject key.Binding
	CycleView  key.Binding
	PrevPeriod key.Binding
	NextPeriod key.Binding
	Reload     key.Binding
	Drag       key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		NewProject: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new project"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "view mode"),
		),
		PrevPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev quarter"),
		),
		NextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next quarter"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		// Not a key; rides along so the help line mentions the mouse.
		Drag: key.NewBinding(
			key.WithHelp("drag", "move/resize bars"),
		),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drag, k.NewProject, k.CycleView, k.PrevPeriod, k.NextPeriod, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Drag, k.NewProject, k.Reload},
		{k.CycleView, k.PrevPeriod, k.NextPeriod},
		{k.Cancel, k.Quit},
	}
}
