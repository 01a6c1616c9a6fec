package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Continue key.Binding
	Choose   key.Binding
	Credit   key.Binding
	Tips     key.Binding
	Wallet   key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Continue: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
		Credit: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "credit"),
		),
		Tips: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "tips"),
		),
		Wallet: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wallet"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Choose, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Continue, k.Choose},
		{k.Credit, k.Tips, k.Wallet, k.Close},
		{k.Help, k.Quit},
	}
}
