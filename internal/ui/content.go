package ui

import (
	"fmt"
	"strings"

	"github.com/dlapp/crmdeck/internal/nav"
)

// Content renders the main panel for the active route. Pages are plain line
// lists scrolled by a vertical offset; the offset drives the header shrink
// and the back-to-top hint.
type Content struct {
	registry *nav.Registry

	width  int
	height int

	offset int
	lines  []string
	linkID string
}

// NewContent creates the content panel over the given registry
func NewContent(registry *nav.Registry) *Content {
	return &Content{registry: registry}
}

// SetSize sets the panel dimensions
func (c *Content) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.clampOffset()
}

// ShowLink loads the page for the given link and resets the scroll offset
func (c *Content) ShowLink(linkID string) {
	if linkID == c.linkID {
		return
	}
	c.linkID = linkID
	c.offset = 0
	c.lines = c.buildPage(linkID)
}

// LinkID returns the link the panel is currently showing
func (c *Content) LinkID() string {
	return c.linkID
}

// Offset returns the current scroll offset in lines
func (c *Content) Offset() int {
	return c.offset
}

// ScrollDown moves the view down by n lines
func (c *Content) ScrollDown(n int) {
	c.offset += n
	c.clampOffset()
}

// ScrollUp moves the view up by n lines
func (c *Content) ScrollUp(n int) {
	c.offset -= n
	c.clampOffset()
}

// ScrollToTop jumps back to the top of the page
func (c *Content) ScrollToTop() {
	c.offset = 0
}

// ScrollToBottom jumps to the end of the page
func (c *Content) ScrollToBottom() {
	c.offset = len(c.lines) - c.visibleLines()
	if c.offset < 0 {
		c.offset = 0
	}
}

// HeaderCompact reports whether the page is scrolled far enough for the
// header to shrink.
func (c *Content) HeaderCompact() bool {
	return c.offset > HeaderShrinkThreshold
}

// ShowBackToTop reports whether the back-to-top hint should be shown
func (c *Content) ShowBackToTop() bool {
	return c.offset > BackToTopThreshold
}

func (c *Content) clampOffset() {
	maxOffset := len(c.lines) - c.visibleLines()
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

func (c *Content) visibleLines() int {
	v := c.height - BorderSize
	if v < 1 {
		v = 1
	}
	return v
}

// buildPage produces the placeholder page body for a route. Real record
// listings come from the CRM backend; the shell only needs stable, scrollable
// pages per route.
func (c *Content) buildPage(linkID string) []string {
	link, group, ok := c.registry.Link(linkID)
	if !ok {
		return []string{ContentMutedStyle.Render("No page selected.")}
	}

	lines := []string{
		ContentTitleStyle.Render(link.Title),
		ContentMutedStyle.Render(group.Title + "  " + link.Href),
		"",
	}
	for i := 1; i <= 60; i++ {
		lines = append(lines, fmt.Sprintf("  %s row %d", link.Title, i))
	}
	return lines
}

// View renders the visible slice of the current page
func (c *Content) View() string {
	if c.lines == nil {
		c.lines = c.buildPage(c.linkID)
	}

	visible := c.visibleLines()
	end := c.offset + visible
	if end > len(c.lines) {
		end = len(c.lines)
	}
	start := c.offset
	if start > len(c.lines) {
		start = len(c.lines)
	}

	body := strings.Join(c.lines[start:end], "\n")
	return PanelStyle.Width(c.width - BorderSize).Height(c.height - BorderSize).Render(body)
}
