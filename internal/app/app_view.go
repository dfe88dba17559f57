package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dlapp/crmdeck/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	m.updateFooterContext()

	state := m.controller.State()

	header := m.header.View()
	strip := m.strip.View(state.ActiveLink)
	sidebar := m.sidebar.View(state)
	content := m.content.View()
	footer := m.footer.View()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebar,
		content,
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strip,
		panels,
		footer,
	)

	if m.controller.OverlayVisible() {
		hint := ui.OverlayHintStyle.Render(" esc closes the menu ")
		view = lipgloss.JoinVertical(lipgloss.Left, view, hint)
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		v.SetContent(m.modal.View())
		return v
	}

	v.SetContent(view)
	return v
}
