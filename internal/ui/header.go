package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Header renders the application banner with the brand mark and the title of
// the current page. It shrinks to a single line once the content is scrolled.
type Header struct {
	width   int
	title   string
	compact bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{title: "Dashboard"}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the current page title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// Title returns the current page title
func (h *Header) Title() string {
	return h.title
}

// SetCompact switches between the tall and the one-line header
func (h *Header) SetCompact(compact bool) {
	h.compact = compact
}

// IsCompact returns whether the header is in compact mode
func (h *Header) IsCompact() bool {
	return h.compact
}

// View renders the header. The tall variant is a gradient brand line over a
// title line; the compact variant merges both into one line.
func (h *Header) View() string {
	if h.compact {
		title := TruncateTitle(h.title, h.width-12)
		line := renderGradient(" crmdeck ") + " " + HeaderTitleStyle.Render(title)
		return padLine(line, h.width)
	}

	brand := renderGradient(" crmdeck · clinic admin ")
	title := HeaderTitleStyle.Render(" " + TruncateTitle(h.title, h.width-2))
	return padLine(brand, h.width) + "\n" + padLine(title, h.width)
}

// padLine pads a rendered line with spaces up to the given width.
func padLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}

// renderGradient renders text with a per-cluster background fading from the
// primary color toward the theme background. Grapheme clusters keep combining
// marks on the same colored cell.
func renderGradient(text string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(CurrentTheme().Primary)
	endR, endG, endB := parseHexColor(CurrentTheme().Bg)

	var b strings.Builder
	for i, cluster := range clusters {
		t := 0.0
		if len(clusters) > 1 {
			t = float64(i) / float64(len(clusters)-1)
		}
		cr := int(float64(startR) + t*float64(endR-startR))
		cg := int(float64(startG) + t*float64(endG-startG))
		cb := int(float64(startB) + t*float64(endB-startB))
		color := fmt.Sprintf("#%02X%02X%02X", cr, cg, cb)

		style := lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextInverse).
			Background(lipgloss.Color(color))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// parseHexColor parses a "#RRGGBB" color into its components. Malformed input
// yields black.
func parseHexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// TruncateTitle shortens a title to fit a given width
func TruncateTitle(title string, width int) string {
	return runewidth.Truncate(title, width, "…")
}
