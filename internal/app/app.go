package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dlapp/crmdeck/internal/config"
	"github.com/dlapp/crmdeck/internal/nav"
	"github.com/dlapp/crmdeck/internal/ui"
)

// NavigateMsg is the programmatic navigation entry point. External drivers
// (the CLI, deep links) send it with a page-name fragment; the first link
// whose route contains the fragment becomes active.
type NavigateMsg struct {
	Name string
}

// Model is the main Bubble Tea model
type Model struct {
	config     *config.Config
	controller *nav.Controller
	version    string // App version (injected at build time)

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	strip   *ui.MenuStrip
	content *ui.Content
	modal   *ui.Modal

	width  int
	height int

	startName string // page-name fragment to activate on startup
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	registry := nav.DefaultRegistry()
	m := &Model{
		config:     cfg,
		controller: nav.NewController(registry, cfg),
		version:    version,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		sidebar:    ui.NewSidebar(registry),
		strip:      ui.NewMenuStrip(quickLinks(registry)),
		content:    ui.NewContent(registry),
		modal:      ui.NewModal(),
	}
	m.sidebar.SetFocused(true)

	start := cfg.GetStartPath()
	if start == "" {
		start = "/dashboard/"
	}
	m.controller.Visit(start)
	m.syncRoute()

	return m
}

// SetStartName queues a page-name fragment to activate once the app starts.
// Used by the --open flag.
func (m *Model) SetStartName(name string) {
	m.startName = name
}

// Controller exposes the navigation controller, mainly for tests
func (m *Model) Controller() *nav.Controller {
	return m.controller
}

// quickLinks returns the strip entries: the first link of every group.
func quickLinks(registry *nav.Registry) []nav.Link {
	var links []nav.Link
	for _, g := range registry.Groups() {
		if len(g.Links) > 0 {
			links = append(links, g.Links[0])
		}
	}
	return links
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.startName == "" {
		return nil
	}
	name := m.startName
	return func() tea.Msg {
		return NavigateMsg{Name: name}
	}
}

// syncRoute pushes the controller's active link into the widgets that track
// the current page.
func (m *Model) syncRoute() {
	state := m.controller.State()
	if state.ActiveLink == "" {
		return
	}
	link, _, ok := m.controller.Registry().Link(state.ActiveLink)
	if !ok {
		return
	}
	m.header.SetTitle(link.Title)
	m.content.ShowLink(link.ID)
	m.sidebar.MoveCursorTo(state, link.ID)
}

// updateSizes recomputes the layout after a resize or a mode change
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	state := m.controller.State()
	m.header.SetCompact(m.content.HeaderCompact())

	vc := ui.GetViewContext()
	vc.UpdateLayout(m.width, m.height, state.ShellCollapsed, m.header.IsCompact())

	m.header.SetWidth(vc.TerminalWidth)
	m.footer.SetWidth(vc.TerminalWidth)
	m.strip.SetWidth(vc.TerminalWidth)
	m.sidebar.SetSize(vc.SidebarWidth, vc.ContentHeight)
	m.content.SetSize(vc.ContentWidth, vc.ContentHeight)
	m.modal.SetSize(vc.TerminalWidth, vc.TerminalHeight)
}

// updateFooterContext refreshes the conditional footer bindings
func (m *Model) updateFooterContext() {
	m.footer.SetSearchMode(m.sidebar.IsSearchMode())
	m.footer.SetModalVisible(m.modal.IsVisible())
	m.footer.SetOverlayMode(m.controller.OverlayVisible())
	m.footer.SetBackToTop(m.content.ShowBackToTop())
}
