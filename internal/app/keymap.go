package app

import "charm.land/bubbles/v2/key"

// keyMap holds the global key bindings handled by the root model.
// Screen-local keys (answer choices, pickers) stay in the screens.
type keyMap struct {
	Quit key.Binding
	Back key.Binding
	Home key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "home"),
		),
	}
}
