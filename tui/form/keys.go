package form

import (
	"github.com/charmbracelet/bubbles/key"

	"taskdeck/internal/infrastructure/config"
)

// KeyMap holds the dialog keybindings
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
}

var keys = defaultKeyMap()

func defaultKeyMap() KeyMap {
	return KeyMap{
		NextField:  key.NewBinding(key.WithKeys("tab", "down")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up")),
		Submit:     key.NewBinding(key.WithKeys("enter")),
		Cancel:     key.NewBinding(key.WithKeys("esc")),
		CycleLeft:  key.NewBinding(key.WithKeys("left", "h")),
		CycleRight: key.NewBinding(key.WithKeys("right", "l", " ")),
	}
}

// InitKeybindings overrides the dialog keybindings from config
func InitKeybindings(cfg *config.Config) {
	kb := cfg.Keybindings

	if len(kb.NextField) > 0 {
		keys.NextField = key.NewBinding(key.WithKeys(kb.NextField...))
	}
	if len(kb.PrevField) > 0 {
		keys.PrevField = key.NewBinding(key.WithKeys(kb.PrevField...))
	}
	if len(kb.Submit) > 0 {
		keys.Submit = key.NewBinding(key.WithKeys(kb.Submit...))
	}
	if len(kb.Cancel) > 0 {
		keys.Cancel = key.NewBinding(key.WithKeys(kb.Cancel...))
	}
}
