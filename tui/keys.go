package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskdeck/internal/infrastructure/config"
)

// KeyMap holds the list-view keybindings
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

var keys = defaultKeyMap()

func defaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Add:    key.NewBinding(key.WithKeys("a")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter")),
		Delete: key.NewBinding(key.WithKeys("d")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// InitKeybindings overrides the list keybindings from config
func InitKeybindings(cfg *config.Config) {
	kb := cfg.Keybindings

	if len(kb.Up) > 0 {
		keys.Up = key.NewBinding(key.WithKeys(kb.Up...))
	}
	if len(kb.Down) > 0 {
		keys.Down = key.NewBinding(key.WithKeys(kb.Down...))
	}
	if len(kb.Add) > 0 {
		keys.Add = key.NewBinding(key.WithKeys(kb.Add...))
	}
	if len(kb.Edit) > 0 {
		keys.Edit = key.NewBinding(key.WithKeys(kb.Edit...))
	}
	if len(kb.Delete) > 0 {
		keys.Delete = key.NewBinding(key.WithKeys(kb.Delete...))
	}
	if len(kb.Quit) > 0 {
		keys.Quit = key.NewBinding(key.WithKeys(kb.Quit...))
	}
}
