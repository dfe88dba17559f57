package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dlapp/crmdeck/internal/nav"
)

// RowKind discriminates the flattened sidebar rows
type RowKind int

const (
	// RowGroup is an accordion section header or a plain top-level item
	RowGroup RowKind = iota
	// RowLink is a link inside an expanded section (or a search match)
	RowLink
)

// Row is one selectable line in the sidebar
type Row struct {
	Kind    RowKind
	GroupID string
	LinkID  string
}

// Sidebar renders the accordion navigation tree. It owns only presentation
// state (cursor, scroll, search); the accordion and active-link state lives in
// the nav controller and is passed to View each frame.
type Sidebar struct {
	registry *nav.Registry

	width   int
	height  int
	focused bool

	cursor       int
	scrollOffset int

	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a sidebar over the given registry
func NewSidebar(registry *nav.Registry) *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(SidebarWidth - 6)

	return &Sidebar{
		registry:    registry,
		searchInput: ti,
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets whether the sidebar has keyboard focus
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns whether the sidebar has keyboard focus
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// Rows returns the selectable rows for the current nav state: every group in
// display order, with the expanded group's links inlined after its header.
// In search mode only matching links are listed.
func (s *Sidebar) Rows(state nav.State) []Row {
	if s.searchMode {
		return s.searchRows()
	}

	var rows []Row
	for _, g := range s.registry.Groups() {
		rows = append(rows, Row{Kind: RowGroup, GroupID: g.ID})
		if g.ID == state.ExpandedGroup && !g.IsLeaf() {
			for _, l := range g.Links {
				rows = append(rows, Row{Kind: RowLink, GroupID: g.ID, LinkID: l.ID})
			}
		}
	}
	return rows
}

// searchRows returns link rows matching the search query, in display order.
func (s *Sidebar) searchRows() []Row {
	query := strings.ToLower(s.searchInput.Value())
	var rows []Row
	for _, g := range s.registry.Groups() {
		for _, l := range g.Links {
			if query != "" &&
				!strings.Contains(strings.ToLower(l.Title), query) &&
				!strings.Contains(strings.ToLower(l.Href), query) {
				continue
			}
			rows = append(rows, Row{Kind: RowLink, GroupID: g.ID, LinkID: l.ID})
		}
	}
	return rows
}

// CursorRow returns the row under the cursor, if any.
func (s *Sidebar) CursorRow(state nav.State) (Row, bool) {
	rows := s.Rows(state)
	if len(rows) == 0 {
		return Row{}, false
	}
	idx := s.cursor
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	return rows[idx], true
}

// MoveUp moves the cursor one row up
func (s *Sidebar) MoveUp(state nav.State) {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor one row down
func (s *Sidebar) MoveDown(state nav.State) {
	if s.cursor < len(s.Rows(state))-1 {
		s.cursor++
	}
}

// MoveToTop moves the cursor to the first row
func (s *Sidebar) MoveToTop() {
	s.cursor = 0
}

// MoveCursorTo places the cursor on the row for the given link, if visible.
func (s *Sidebar) MoveCursorTo(state nav.State, linkID string) {
	for i, row := range s.Rows(state) {
		if row.Kind == RowLink && row.LinkID == linkID {
			s.cursor = i
			return
		}
	}
}

// ClampCursor keeps the cursor within the current row list. Call after any
// state change that can shrink the list (collapse, search filter).
func (s *Sidebar) ClampCursor(state nav.State) {
	rows := s.Rows(state)
	if s.cursor >= len(rows) {
		s.cursor = len(rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// EnterSearchMode activates the search filter
func (s *Sidebar) EnterSearchMode() {
	s.searchMode = true
	s.searchInput.SetValue("")
	s.searchInput.Focus()
	s.cursor = 0
	s.scrollOffset = 0
}

// ExitSearchMode deactivates the search filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.cursor = 0
	s.scrollOffset = 0
}

// IsSearchMode returns whether the search filter is active
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// SearchQuery returns the current search query
func (s *Sidebar) SearchQuery() string {
	return s.searchInput.Value()
}

// UpdateSearch feeds a message to the search input
func (s *Sidebar) UpdateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.searchInput, cmd = s.searchInput.Update(msg)
	s.cursor = 0
	return cmd
}

// View renders the sidebar for the given nav state. In collapsed mode only
// the icon rail is drawn.
func (s *Sidebar) View(state nav.State) string {
	if state.ShellCollapsed {
		return s.viewRail(state)
	}

	innerWidth := s.width - BorderSize
	var b strings.Builder

	if s.searchMode {
		b.WriteString(" / " + s.searchInput.View() + "\n")
	} else {
		b.WriteString(PanelTitleStyle.Render("Navigation") + "\n")
	}

	rows := s.Rows(state)
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, s.renderRow(state, row, i == s.cursor && s.focused, innerWidth))
	}

	// Keep the cursor visible: the list area is the height minus title line.
	listHeight := s.height - BorderSize - 1
	if listHeight < 1 {
		listHeight = 1
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+listHeight {
		s.scrollOffset = s.cursor - listHeight + 1
	}
	end := s.scrollOffset + listHeight
	if end > len(lines) {
		end = len(lines)
	}
	start := s.scrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	b.WriteString(strings.Join(lines[start:end], "\n"))

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}
	return style.Width(s.width - BorderSize).Height(s.height - BorderSize).Render(b.String())
}

// renderRow renders a single sidebar line, truncated to the panel width.
func (s *Sidebar) renderRow(state nav.State, row Row, selected bool, width int) string {
	var text string
	var style lipgloss.Style

	switch row.Kind {
	case RowGroup:
		g, ok := s.registry.Group(row.GroupID)
		if !ok {
			return ""
		}
		if g.IsLeaf() {
			marker := "  "
			style = SidebarItemStyle
			if len(g.Links) == 1 && g.Links[0].ID == state.ActiveLink {
				marker = "› "
				style = SidebarActiveStyle
			}
			text = marker + g.Title
		} else {
			marker := "▸ "
			if g.ID == state.ExpandedGroup {
				marker = "▾ "
			}
			style = SidebarGroupStyle
			text = marker + g.Title
		}
	case RowLink:
		link, _, ok := s.registry.Link(row.LinkID)
		if !ok {
			return ""
		}
		marker := "    "
		style = SidebarItemStyle
		if link.ID == state.ActiveLink {
			marker = "  › "
			style = SidebarActiveStyle
		}
		text = marker + link.Title
	}

	if selected {
		style = SidebarSelectedStyle
	}
	return style.Render(runewidth.Truncate(text, width-2, "…"))
}

// viewRail renders the collapsed icon rail: one glyph per group, the group
// containing the active link highlighted.
func (s *Sidebar) viewRail(state nav.State) string {
	activeGroup := ""
	if state.ActiveLink != "" {
		if _, g, ok := s.registry.Link(state.ActiveLink); ok {
			activeGroup = g.ID
		}
	}

	var lines []string
	for _, g := range s.registry.Groups() {
		style := SidebarIconStyle
		if g.ID == activeGroup {
			style = SidebarIconActiveStyle
		}
		lines = append(lines, style.Render(" "+g.Icon+" "))
	}

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}
	return style.Width(s.width - BorderSize).Height(s.height - BorderSize).
		Render(strings.Join(lines, "\n"))
}
