package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dlapp/crmdeck/internal/nav"
)

// MenuStrip renders the one-line quick-link strip under the header. The strip
// is horizontally scrollable: the offset is clamped by the width-tier limits
// in the nav package, so narrow terminals get more scroll room.
type MenuStrip struct {
	links  []nav.Link
	width  int
	offset int
}

// NewMenuStrip creates a strip over the given quick links
func NewMenuStrip(links []nav.Link) *MenuStrip {
	return &MenuStrip{links: links}
}

// SetWidth sets the strip width and re-clamps the scroll offset for the new
// width tier.
func (m *MenuStrip) SetWidth(width int) {
	m.width = width
	m.offset = nav.Clamp(m.offset, 0, nav.ScrollLeft, nav.StripLimit(width))
}

// Offset returns the current scroll offset
func (m *MenuStrip) Offset() int {
	return m.offset
}

// Scroll moves the strip one step in the given direction, pinning at the
// tier limit and at zero.
func (m *MenuStrip) Scroll(dir nav.Direction) {
	m.offset = nav.Clamp(m.offset, nav.StripStep, dir, nav.StripLimit(m.width))
}

// CanScroll reports whether the strip can move in the given direction
func (m *MenuStrip) CanScroll(dir nav.Direction) bool {
	return nav.CanScroll(m.offset, dir, nav.StripLimit(m.width))
}

// View renders the strip with scroll arrows at each end. Arrows dim when the
// offset is pinned at the corresponding bound.
func (m *MenuStrip) View(activeLink string) string {
	left := StripArrowStyle.Render("‹")
	if !m.CanScroll(nav.ScrollLeft) {
		left = StripArrowDisabledStyle.Render("‹")
	}
	right := StripArrowStyle.Render("›")
	if !m.CanScroll(nav.ScrollRight) {
		right = StripArrowDisabledStyle.Render("›")
	}

	var parts []string
	for _, l := range m.links {
		if l.ID == activeLink {
			parts = append(parts, StripActiveStyle.Render(l.Title))
		} else {
			parts = append(parts, StripLinkStyle.Render(l.Title))
		}
	}
	row := strings.Join(parts, "")

	// The offset is negative or zero; shift the row left by its magnitude.
	if shift := -m.offset; shift > 0 {
		row = ansi.TruncateLeft(row, shift, "")
	}

	inner := m.width - 4
	if inner < 0 {
		inner = 0
	}
	row = ansi.Truncate(row, inner, "")
	if pad := inner - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}

	return " " + left + " " + row + " " + right
}
