package segment

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/storybar/internal/domain/playback"
)

// Renderer defaults used when the styling leaves a value unset.
const (
	DefaultSpacing     = 1
	DefaultFilledColor = "255"
	DefaultEmptyColor  = "240"
	DefaultGlyph       = "━"
)

// Row owns the segments of one story set and renders them with equal
// widths. It builds the indicators handed to playback.Sequence.
type Row struct {
	segments []*Segment
	styling  playback.Styling
}

// NewRow creates an empty row with the given styling.
func NewRow(styling playback.Styling) *Row {
	return &Row{styling: styling}
}

// Build discards the current segments and creates count new ones.
func (r *Row) Build(count int, duration time.Duration) []playback.Indicator {
	r.segments = make([]*Segment, count)
	indicators := make([]playback.Indicator, count)
	for i := range count {
		r.segments[i] = New(duration)
		indicators[i] = r.segments[i]
	}
	return indicators
}

// Len returns the number of segments.
func (r *Row) Len() int {
	return len(r.segments)
}

// Segment returns the segment at index i.
func (r *Row) Segment(i int) (*Segment, bool) {
	if i < 0 || i >= len(r.segments) {
		return nil, false
	}
	return r.segments[i], true
}

// Styling returns the row styling.
func (r *Row) Styling() playback.Styling {
	return r.styling
}

// SetStyling replaces the row styling. Segments are kept.
func (r *Row) SetStyling(styling playback.Styling) {
	r.styling = styling
}

// Advance forwards a frame tick to the segments running when it arrives.
// A segment started by a completion callback waits for the next frame.
func (r *Row) Advance(dt time.Duration) {
	var running []*Segment
	for _, s := range r.segments {
		if s.State() == Running {
			running = append(running, s)
		}
	}
	for _, s := range running {
		s.Advance(dt)
	}
}

// View renders the row into width columns.
func (r *Row) View(width int) string {
	n := len(r.segments)
	if n == 0 || width <= 0 {
		return ""
	}

	filled, empty := r.styles()
	if n > width {
		return r.collapsed(width, filled, empty)
	}

	spacing := r.styling.Spacing(DefaultSpacing)
	available := width - spacing*(n-1)
	if available < n {
		spacing = 0
		available = width
	}
	base, extra := available/n, available%n

	parts := make([]string, n)
	for i, s := range r.segments {
		w := base
		if i < extra {
			w++
		}
		fill := int(math.Round(s.Progress() * float64(w)))
		parts[i] = filled.render(fill) + empty.render(w-fill)
	}
	return strings.Join(parts, strings.Repeat(" ", spacing))
}

// collapsed draws the row as a single bar when there are more segments
// than columns.
func (r *Row) collapsed(width int, filled, empty glyphStyle) string {
	var total float64
	for _, s := range r.segments {
		total += s.Progress()
	}
	fill := int(math.Round(total / float64(len(r.segments)) * float64(width)))
	return filled.render(fill) + empty.render(width-fill)
}

type glyphStyle struct {
	style lipgloss.Style
	glyph string
}

func (g glyphStyle) render(n int) string {
	if n <= 0 {
		return ""
	}
	return g.style.Render(strings.Repeat(g.glyph, n))
}

func (r *Row) styles() (filled, empty glyphStyle) {
	p := playback.ProgressStyling{}
	if r.styling.Progress != nil {
		p = *r.styling.Progress
	}
	filled = glyphStyle{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(p.FilledColor, DefaultFilledColor))),
		glyph: orDefault(p.FilledGlyph, DefaultGlyph),
	}
	empty = glyphStyle{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(p.EmptyColor, DefaultEmptyColor))),
		glyph: orDefault(p.EmptyGlyph, DefaultGlyph),
	}
	return filled, empty
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
