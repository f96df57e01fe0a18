package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/storybar/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/storybar/internal/presentation/tui/components/main"
)

func TestRender(t *testing.T) {
	got := ansi.Strip(Render(Props{
		Progress: "━━━ ━━━",
		Header:   header.Props{Visible: true, FeedTitle: "Feed", Link: "https://example.com"},
		Main:     mainview.Props{Width: 40, Height: 8, Body: "Body"},
		Footer:   "help",
	}))

	for _, want := range []string{"━━━ ━━━", "Feed", "https://example.com", "Body", "help"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestRender_HiddenHeader(t *testing.T) {
	got := Render(Props{
		Header: header.Props{Visible: false, FeedTitle: "Feed"},
		Main:   mainview.Props{Width: 20, Height: 3, Body: "Loading"},
	})
	if strings.Contains(got, "Feed") {
		t.Error("hidden header should not render")
	}
}
