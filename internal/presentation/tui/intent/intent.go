// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Next
	Previous
	TogglePause
	Restart
	Open
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit) || msg.Type == tea.KeyCtrlC:
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Next):
		return Intent{Type: Next}
	case key.Matches(msg, keys.Previous):
		return Intent{Type: Previous}
	case key.Matches(msg, keys.Pause):
		return Intent{Type: TogglePause}
	case key.Matches(msg, keys.Restart):
		return Intent{Type: Restart}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	default:
		return Intent{Type: None}
	}
}
