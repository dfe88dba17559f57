package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_View_Tall(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetTitle("All Patients")

	out := ansi.Strip(h.View())
	lines := strings.Split(out, "\n")

	if len(lines) != HeaderTallHeight {
		t.Errorf("Expected %d header lines, got %d", HeaderTallHeight, len(lines))
	}
	if !strings.Contains(out, "crmdeck") {
		t.Error("Expected brand mark in header")
	}
	if !strings.Contains(out, "All Patients") {
		t.Error("Expected page title in header")
	}
}

func TestHeader_View_Compact(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetTitle("Dashboard")
	h.SetCompact(true)

	out := ansi.Strip(h.View())
	lines := strings.Split(out, "\n")

	if len(lines) != HeaderCompactHeight {
		t.Errorf("Expected %d header line, got %d", HeaderCompactHeight, len(lines))
	}
	if !strings.Contains(out, "crmdeck") || !strings.Contains(out, "Dashboard") {
		t.Errorf("Expected brand and title on one line, got %q", out)
	}
}

func TestHeader_SetTitle(t *testing.T) {
	h := NewHeader()
	h.SetTitle("Finance Report")

	if h.Title() != "Finance Report" {
		t.Errorf("Expected title Finance Report, got %q", h.Title())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b int
	}{
		{"#FFFFFF", 255, 255, 255},
		{"#000000", 0, 0, 0},
		{"#6366F1", 99, 102, 241},
		{"not-a-color", 0, 0, 0},
		{"#FFF", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.input)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.input, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestRenderGradient_PreservesText(t *testing.T) {
	out := ansi.Strip(renderGradient("crmdeck"))
	if out != "crmdeck" {
		t.Errorf("Expected gradient to preserve text, got %q", out)
	}
}
