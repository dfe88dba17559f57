package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	footer.SetFlash("Path copied", FlashSuccess)

	if !footer.HasFlash() {
		t.Fatal("Expected flash to be set")
	}

	out := ansi.Strip(footer.View())
	if !strings.Contains(out, "Path copied") {
		t.Errorf("Expected flash text in view, got %q", out)
	}
	if strings.Contains(out, "quit") {
		t.Error("Expected bindings hidden while flash is showing")
	}
}

func TestFooter_ClearFlash_RestoresBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	footer.SetFlash("Saved", FlashInfo)
	footer.ClearFlash()

	if footer.HasFlash() {
		t.Error("Expected flash cleared")
	}

	out := ansi.Strip(footer.View())
	if !strings.Contains(out, "quit") {
		t.Errorf("Expected default bindings, got %q", out)
	}
}

func TestFooter_DefaultBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(160)

	out := ansi.Strip(footer.View())

	for _, want := range []string{"search", "sidebar", "theme", "help", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected binding %q in footer, got %q", want, out)
		}
	}
}

func TestFooter_SearchModeBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetSearchMode(true)

	out := ansi.Strip(footer.View())

	if !strings.Contains(out, "cancel") {
		t.Errorf("Expected search bindings, got %q", out)
	}
	if strings.Contains(out, "quit") {
		t.Error("Expected default bindings replaced in search mode")
	}
}

func TestFooter_ModalBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetModalVisible(true)

	out := ansi.Strip(footer.View())

	if !strings.Contains(out, "close") {
		t.Errorf("Expected modal bindings, got %q", out)
	}
}

func TestFooter_OverlayBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetOverlayMode(true)

	out := ansi.Strip(footer.View())

	if !strings.Contains(out, "close menu") {
		t.Errorf("Expected overlay bindings, got %q", out)
	}
}

func TestFooter_BackToTopHint(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)

	footer.SetBackToTop(true)
	out := ansi.Strip(footer.View())
	if !strings.Contains(out, "top") {
		t.Errorf("Expected back-to-top hint, got %q", out)
	}

	footer.SetBackToTop(false)
	out = ansi.Strip(footer.View())
	if strings.Contains(out, "⤒") {
		t.Error("Expected back-to-top hint hidden")
	}
}
