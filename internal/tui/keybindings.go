package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the global bindings shown in the help bar.
type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Start      key.Binding
	Chat       key.Binding
	Chart      key.Binding
	Filter     key.Binding
	Undo       key.Binding
	Dismiss    key.Binding
	DismissAll key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new workout"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit workout"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete entry"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start workout"),
		),
		Chat: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "write message"),
		),
		Chart: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "switch chart"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "dismiss all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forTab disables the bindings that do nothing on t so the help bar only
// lists what applies.
func (k keyMap) forTab(t Tab) keyMap {
	k.Add.SetEnabled(t == TabCalories || t == TabWeight)
	k.Delete.SetEnabled(t == TabCalories)
	k.New.SetEnabled(t == TabWorkouts)
	k.Edit.SetEnabled(t == TabWorkouts)
	k.Filter.SetEnabled(t == TabAchievements)
	k.Start.SetEnabled(t == TabWorkouts)
	k.Up.SetEnabled(t == TabCalories || t == TabWorkouts || t == TabTrainer)
	k.Down.SetEnabled(t == TabCalories || t == TabWorkouts || t == TabTrainer)
	k.Chat.SetEnabled(t == TabTrainer)
	k.Chart.SetEnabled(t == TabProgress)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.New, k.Edit, k.Start, k.Chat, k.Chart, k.Filter, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Add, k.Delete, k.New, k.Edit, k.Start, k.Chat, k.Chart, k.Filter},
		{k.Undo, k.Dismiss, k.DismissAll},
		{k.Help, k.Quit},
	}
}
