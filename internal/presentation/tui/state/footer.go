package state

import "strings"

// EndMessage is shown once every story has been played.
const EndMessage = "The end. Press any key to exit."

// FooterText returns the footer content for the current phase.
func FooterText(phase Phase, paused bool, statusMessage, helpText string) string {
	if phase == Finished {
		return EndMessage
	}

	var lines []string
	if phase == Playing && paused {
		lines = append(lines, "paused")
	}
	if status := strings.TrimSpace(statusMessage); status != "" {
		lines = append(lines, status)
	}
	if helpText != "" {
		lines = append(lines, helpText)
	}
	return strings.Join(lines, "\n")
}
