package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ModalState is the interface all modal content states implement. The marker
// method keeps the union closed to this package's states.
type ModalState interface {
	modalState()
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal is the container that positions and frames the active modal state.
type Modal struct {
	state   ModalState
	width   int
	height  int
	errText string
}

// NewModal creates an empty modal container
func NewModal() *Modal {
	return &Modal{}
}

// SetSize sets the terminal area the modal centers within
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show displays the given modal state
func (m *Modal) Show(state ModalState) {
	m.state = state
	m.errText = ""
}

// Hide dismisses the modal
func (m *Modal) Hide() {
	m.state = nil
	m.errText = ""
}

// IsVisible returns whether a modal is showing
func (m *Modal) IsVisible() bool {
	return m.state != nil
}

// State returns the active modal state, nil when hidden
func (m *Modal) State() ModalState {
	return m.state
}

// SetError shows an error line inside the modal
func (m *Modal) SetError(text string) {
	m.errText = text
}

// Update forwards a message to the active state
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if m.state == nil {
		return nil
	}
	var cmd tea.Cmd
	m.state, cmd = m.state.Update(msg)
	return cmd
}

// View renders the modal centered in the terminal area
func (m *Modal) View() string {
	if m.state == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(m.state.Title()))
	b.WriteString("\n")
	b.WriteString(m.state.Render())
	if m.errText != "" {
		b.WriteString("\n" + StatusErrorStyle.Render(m.errText))
	}
	if help := m.state.Help(); help != "" {
		b.WriteString("\n" + ModalHelpStyle.Render(help))
	}

	box := ModalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// HelpState lists the full key map.
type HelpState struct{}

// NewHelpState creates the help modal state
func NewHelpState() *HelpState {
	return &HelpState{}
}

func (h *HelpState) modalState() {}

// Title returns the modal title
func (h *HelpState) Title() string { return "Keyboard Shortcuts" }

// Help returns the modal footer hint
func (h *HelpState) Help() string { return "esc to close" }

// Render draws the key map
func (h *HelpState) Render() string {
	rows := []KeyBinding{
		{"↑/k, ↓/j", "move cursor"},
		{"enter, l", "open section or link"},
		{"h", "collapse section"},
		{"s", "toggle sidebar"},
		{"/", "search links"},
		{"g", "go to page by name"},
		{"[ / ]", "history back / forward"},
		{"y", "copy route path"},
		{"pgup/pgdn", "scroll page"},
		{"ctrl+u/d", "scroll half page"},
		{"home/end", "top / bottom"},
		{"←/→", "scroll quick links"},
		{"t", "toggle light/dark"},
		{"T", "pick theme"},
		{"q, ctrl+c", "quit"},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(FooterKeyStyle.Render(padRight(r.Key, 12)))
		b.WriteString(FooterDescStyle.Render(r.Desc))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Update handles input; the container handles esc
func (h *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return h, nil
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// GoToState prompts for a page name and jumps to the first link whose route
// contains it.
type GoToState struct {
	input textinput.Model
}

// NewGoToState creates the go-to modal state
func NewGoToState() *GoToState {
	ti := textinput.New()
	ti.Placeholder = "page name"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()
	return &GoToState{input: ti}
}

func (g *GoToState) modalState() {}

// Title returns the modal title
func (g *GoToState) Title() string { return "Go to Page" }

// Help returns the modal footer hint
func (g *GoToState) Help() string { return "enter to go, esc to cancel" }

// Render draws the input
func (g *GoToState) Render() string {
	return g.input.View()
}

// Value returns the entered page name
func (g *GoToState) Value() string {
	return g.input.Value()
}

// Update feeds input to the text field
func (g *GoToState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}
