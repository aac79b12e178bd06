package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	Scroll      key.Binding
	Jump        key.Binding
	Interact    key.Binding
	ToggleType  key.Binding
	Quit        key.Binding
	Enter       key.Binding
	Close       key.Binding
	ClearHist   key.Binding
	Help        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Scroll:      key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "scroll")),
		Jump:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Interact:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "fill form")),
		ToggleType:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle tagline")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ClearHist:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Scroll, k.Jump, k.Interact, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.Scroll, k.Jump},
		{k.Interact, k.ToggleType, k.ClearHist, k.Help, k.Quit},
	}
}

type formKeyMap struct {
	keyMap
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close, k.Quit}
}

type paletteKeyMap struct {
	keyMap
}

func (k paletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close}
}
