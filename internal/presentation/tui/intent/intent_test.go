package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/storybar/internal/application/settings"
	"github.com/tesso57/storybar/internal/presentation/tui/state"
)

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Next: "l,right", Previous: "h,left", Pause: "space", Restart: "r", Open: "o", Quit: "q",
	})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "next rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, want: Next},
		{name: "next arrow", msg: tea.KeyMsg{Type: tea.KeyRight}, want: Next},
		{name: "previous arrow", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: Previous},
		{name: "pause", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: TogglePause},
		{name: "restart", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, want: Restart},
		{name: "open", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}, want: Open},
		{name: "help", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, want: ToggleHelp},
		{name: "quit", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, want: Quit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: Quit},
		{name: "unbound", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys).Type; got != tt.want {
				t.Fatalf("FromKeyMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
