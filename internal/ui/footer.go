package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a key and its action description
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType classifies a transient footer message
type FlashType int

const (
	FlashSuccess FlashType = iota
	FlashInfo
	FlashWarning
	FlashError
)

// FlashDuration is how long a flash message stays visible
const FlashDuration = 3 * time.Second

// FlashTickMsg clears the flash when its duration elapses
type FlashTickMsg struct{}

// FlashTick schedules the flash clear
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// Footer renders the bottom help bar. It shows context-sensitive key bindings
// and temporarily replaces them with flash messages.
type Footer struct {
	width int

	flash     string
	flashType FlashType

	searchMode   bool
	modalVisible bool
	overlayMode  bool
	backToTop    bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash sets a transient message shown instead of the key bindings
func (f *Footer) SetFlash(msg string, flashType FlashType) {
	f.flash = msg
	f.flashType = flashType
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flash = ""
}

// HasFlash returns whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flash != ""
}

// SetSearchMode updates the search context flag
func (f *Footer) SetSearchMode(active bool) {
	f.searchMode = active
}

// SetModalVisible updates the modal context flag
func (f *Footer) SetModalVisible(visible bool) {
	f.modalVisible = visible
}

// SetOverlayMode updates the narrow-terminal overlay flag
func (f *Footer) SetOverlayMode(active bool) {
	f.overlayMode = active
}

// SetBackToTop toggles the back-to-top hint
func (f *Footer) SetBackToTop(show bool) {
	f.backToTop = show
}

// bindings returns the key bindings for the current context
func (f *Footer) bindings() []KeyBinding {
	if f.modalVisible {
		return []KeyBinding{
			{"esc", "close"},
			{"enter", "confirm"},
		}
	}
	if f.searchMode {
		return []KeyBinding{
			{"enter", "open"},
			{"esc", "cancel"},
			{"↑/↓", "move"},
		}
	}
	if f.overlayMode {
		return []KeyBinding{
			{"esc", "close menu"},
			{"enter", "open"},
			{"↑/↓", "move"},
		}
	}
	return []KeyBinding{
		{"↑/↓", "move"},
		{"enter", "open"},
		{"s", "sidebar"},
		{"/", "search"},
		{"g", "go to"},
		{"t", "theme"},
		{"?", "help"},
		{"q", "quit"},
	}
}

// View renders the footer line
func (f *Footer) View() string {
	if f.flash != "" {
		var style = FlashInfoStyle
		switch f.flashType {
		case FlashSuccess:
			style = FlashSuccessStyle
		case FlashWarning:
			style = FlashWarningStyle
		case FlashError:
			style = StatusErrorStyle
		}
		return FooterStyle.Width(f.width).Render(style.Render(f.flash))
	}

	var parts []string
	for _, b := range f.bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+" "+FooterDescStyle.Render(b.Desc))
	}
	line := strings.Join(parts, FooterDescStyle.Render(" | "))

	if f.backToTop {
		line += FooterDescStyle.Render(" | ") + BackToTopStyle.Render("⤒ top")
	}

	return FooterStyle.Width(f.width).Render(ansi.Truncate(line, f.width-2, "…"))
}
