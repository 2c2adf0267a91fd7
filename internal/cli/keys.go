package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme    key.Binding
	Mode     key.Binding
	Format   key.Binding
	Seconds  key.Binding
	Date     key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Zones    key.Binding
	Alarm    key.Binding
	Settings key.Binding
	Reset    key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Mode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Format:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "12/24h")),
		Seconds:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "seconds")),
		Date:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date style")),
		Bigger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "larger")),
		Smaller:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller")),
		Zones:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "timezone")),
		Alarm:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alarm on/off")),
		Settings: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "configure")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Mode, k.Zones, k.Alarm, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Mode, k.Format, k.Seconds, k.Date},
		{k.Bigger, k.Smaller, k.Zones, k.Alarm},
		{k.Settings, k.Reset, k.Export, k.Help, k.Quit},
	}
}
