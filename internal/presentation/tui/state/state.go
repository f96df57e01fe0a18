// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/storybar/internal/application/settings"
)

// Phase represents where the viewer is in its lifecycle.
type Phase int

const (
	Loading Phase = iota
	Playing
	Finished
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Open     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Pause, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Pause, k.Restart},
		{k.Open, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Next)...),
			key.WithHelp(cfg.Next, "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Previous)...),
			key.WithHelp(cfg.Previous, "previous"),
		),
		Pause: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Pause)...),
			key.WithHelp(cfg.Pause, "pause/resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Restart)...),
			key.WithHelp(cfg.Restart, "replay"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open link"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// splitKeys turns "a, b" into bubbletea key names. "space" is accepted as
// an alias because bubbletea reports the space bar as " ".
func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			if strings.Contains(part, " ") {
				out = append(out, " ")
			}
			continue
		}
		switch keyName {
		case "space":
			out = append(out, " ")
		case "pgdn":
			out = append(out, keyName, "pgdown")
		case "pgdown":
			out = append(out, keyName, "pgdn")
		default:
			out = append(out, keyName)
		}
	}
	return out
}
