package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/dlapp/crmdeck/internal/nav"
)

func testContent() *Content {
	c := NewContent(nav.DefaultRegistry())
	c.SetSize(80, 20)
	c.ShowLink("patient-list")
	return c
}

func TestContent_ShowLink_ResetsScroll(t *testing.T) {
	c := testContent()

	c.ScrollDown(5)
	if c.Offset() != 5 {
		t.Fatalf("Expected offset 5, got %d", c.Offset())
	}

	c.ShowLink("dashboard")
	if c.Offset() != 0 {
		t.Errorf("Expected offset reset on page change, got %d", c.Offset())
	}
	if c.LinkID() != "dashboard" {
		t.Errorf("Expected link dashboard, got %q", c.LinkID())
	}
}

func TestContent_ShowLink_SamePageKeepsScroll(t *testing.T) {
	c := testContent()

	c.ScrollDown(5)
	c.ShowLink("patient-list")

	if c.Offset() != 5 {
		t.Errorf("Expected offset preserved on same page, got %d", c.Offset())
	}
}

func TestContent_Scroll_Clamps(t *testing.T) {
	c := testContent()

	c.ScrollUp(10)
	if c.Offset() != 0 {
		t.Errorf("Expected offset pinned at 0, got %d", c.Offset())
	}

	c.ScrollDown(1000)
	maxOffset := c.Offset()
	c.ScrollDown(1)
	if c.Offset() != maxOffset {
		t.Errorf("Expected offset pinned at %d, got %d", maxOffset, c.Offset())
	}
}

func TestContent_ScrollToTop(t *testing.T) {
	c := testContent()

	c.ScrollDown(12)
	c.ScrollToTop()

	if c.Offset() != 0 {
		t.Errorf("Expected offset 0 after jump to top, got %d", c.Offset())
	}
}

func TestContent_ScrollToBottom(t *testing.T) {
	c := testContent()

	c.ScrollDown(1000)
	maxOffset := c.Offset()
	c.ScrollToTop()

	c.ScrollToBottom()
	if c.Offset() != maxOffset {
		t.Errorf("Expected offset %d after jump to bottom, got %d", maxOffset, c.Offset())
	}
}

func TestContent_HeaderCompact(t *testing.T) {
	c := testContent()

	if c.HeaderCompact() {
		t.Error("Expected tall header at the top of the page")
	}

	c.ScrollDown(HeaderShrinkThreshold)
	if c.HeaderCompact() {
		t.Error("Expected tall header at the threshold")
	}

	c.ScrollDown(1)
	if !c.HeaderCompact() {
		t.Error("Expected compact header past the threshold")
	}
}

func TestContent_ShowBackToTop(t *testing.T) {
	c := testContent()

	c.ScrollDown(BackToTopThreshold)
	if c.ShowBackToTop() {
		t.Error("Expected no back-to-top hint at the threshold")
	}

	c.ScrollDown(1)
	if !c.ShowBackToTop() {
		t.Error("Expected back-to-top hint past the threshold")
	}

	c.ScrollToTop()
	if c.ShowBackToTop() {
		t.Error("Expected hint cleared at the top")
	}
}

func TestContent_View_ShowsPageTitle(t *testing.T) {
	c := testContent()

	out := ansi.Strip(c.View())

	if !strings.Contains(out, "All Patients") {
		t.Errorf("Expected page title in view, got %q", out)
	}
	if !strings.Contains(out, "/patients/") {
		t.Error("Expected route path in view")
	}
}

func TestContent_View_UnknownLink(t *testing.T) {
	c := NewContent(nav.DefaultRegistry())
	c.SetSize(80, 20)
	c.ShowLink("bogus")

	out := ansi.Strip(c.View())
	if !strings.Contains(out, "No page selected") {
		t.Errorf("Expected placeholder for unknown link, got %q", out)
	}
}
