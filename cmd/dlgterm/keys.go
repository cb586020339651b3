package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Show key.Binding
	Skip key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Show: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "talk")),
		Skip: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "next")),
		Up:   key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Show, k.Skip, k.Up, k.Quit}
}
