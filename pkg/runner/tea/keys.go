package teaui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Today    key.Binding
	Weekday  key.Binding
	GoTo     key.Binding
	Command  key.Binding
	NextArea key.Binding
	PrevArea key.Binding
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("alt+left", "h"), key.WithHelp("h/alt+←", "prev day")),
		Next:     key.NewBinding(key.WithKeys("alt+right", "l"), key.WithHelp("l/alt+→", "next day")),
		Today:    key.NewBinding(key.WithKeys("alt+t", "t"), key.WithHelp("t", "today")),
		Weekday:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "weekday")),
		GoTo:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
		Command:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "commands")),
		NextArea: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next area")),
		PrevArea: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev area")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Edit:     key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Add:      key.NewBinding(key.WithKeys("a", "o"), key.WithHelp("a", "add")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.NextArea, k.Edit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today, k.Weekday, k.GoTo, k.Command},
		{k.NextArea, k.PrevArea, k.Up, k.Down},
		{k.Edit, k.Toggle, k.Add, k.Delete},
		{k.Help, k.Quit},
	}
}
