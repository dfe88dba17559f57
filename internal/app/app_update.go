package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dlapp/crmdeck/internal/clipboard"
	"github.com/dlapp/crmdeck/internal/keys"
	"github.com/dlapp/crmdeck/internal/logger"
	"github.com/dlapp/crmdeck/internal/nav"
	"github.com/dlapp/crmdeck/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to the appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.controller.Resize(msg.Width)
		m.sidebar.ClampCursor(m.controller.State())
		m.updateSizes()
		return m, nil

	case NavigateMsg:
		return m.handleNavigate(msg)

	case ui.FlashTickMsg:
		m.footer.ClearFlash()
		return m, nil

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	// Anything else goes to the modal while one is open
	if m.modal.IsVisible() {
		return m, m.modal.Update(msg)
	}

	return m, nil
}

// handleNavigate applies the external navigation entry point
func (m *Model) handleNavigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	m.controller.ActivateByName(msg.Name)

	state := m.controller.State()
	if state.ActiveLink == "" {
		logger.Debug("Navigate: no link matches %q", msg.Name)
		return m, m.ShowFlashWarning("No page matches \"" + msg.Name + "\"")
	}

	if link, _, ok := m.controller.Registry().Link(state.ActiveLink); ok {
		m.controller.Visit(link.Href)
	}
	m.syncRoute()
	m.updateSizes()
	return m, nil
}

// handleMouseWheel scrolls the content viewport. Direction comes from the
// sign of the wheel delta in Y.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m, m.modal.Update(msg)
	}
	if msg.Y < 0 {
		m.content.ScrollUp(ui.ContentWheelStep)
	} else if msg.Y > 0 {
		m.content.ScrollDown(ui.ContentWheelStep)
	}
	m.updateSizes()
	return m, nil
}

// handleKeyPress routes a key press by context: modal first, then search,
// then the global shortcuts, then sidebar movement.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.sidebar.IsSearchMode() {
		return m.handleSearchKey(msg)
	}

	if handler, ok := shortcutHandlers[key]; ok {
		return handler(m)
	}

	return m.handleMovementKey(key)
}

// handleModalKey drives the active modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.handleModalConfirm()
	}
	return m, m.modal.Update(msg)
}

// handleModalConfirm applies the active modal state on enter
func (m *Model) handleModalConfirm() (tea.Model, tea.Cmd) {
	switch state := m.modal.State().(type) {
	case *ui.HelpState:
		m.modal.Hide()

	case *ui.GoToState:
		m.controller.ActivateByName(state.Value())
		navState := m.controller.State()
		if navState.ActiveLink == "" {
			m.modal.SetError("No page matches \"" + state.Value() + "\"")
			return m, nil
		}
		m.modal.Hide()
		if link, _, ok := m.controller.Registry().Link(navState.ActiveLink); ok {
			m.controller.Visit(link.Href)
		}
		m.syncRoute()
		m.updateSizes()

	case *ui.ThemePickerState:
		m.modal.Hide()
		return m, m.applyTheme(state.Selected())
	}
	return m, nil
}

// handleSearchKey drives the sidebar search filter
func (m *Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.sidebar.ExitSearchMode()
		return m, nil
	case keys.Enter:
		row, ok := m.sidebar.CursorRow(m.controller.State())
		m.sidebar.ExitSearchMode()
		if ok && row.Kind == ui.RowLink {
			return m, m.openLink(row.LinkID)
		}
		return m, nil
	case keys.Up:
		m.sidebar.MoveUp(m.controller.State())
		return m, nil
	case keys.Down:
		m.sidebar.MoveDown(m.controller.State())
		return m, nil
	}
	return m, m.sidebar.UpdateSearch(msg)
}

// handleMovementKey covers cursor movement and accordion toggling
func (m *Model) handleMovementKey(key string) (tea.Model, tea.Cmd) {
	state := m.controller.State()

	switch key {
	case keys.Up, "k":
		m.sidebar.MoveUp(state)
	case keys.Down, "j":
		m.sidebar.MoveDown(state)
	case keys.Enter, "l":
		return m.handleSelect()
	case "h":
		// Collapse whatever section is open
		if state.ExpandedGroup != "" {
			m.controller.ToggleGroup(state.ExpandedGroup)
			m.sidebar.ClampCursor(m.controller.State())
			m.saveConfig()
		}
	}
	return m, nil
}

// handleSelect opens the row under the cursor: groups toggle, links navigate
func (m *Model) handleSelect() (tea.Model, tea.Cmd) {
	state := m.controller.State()
	row, ok := m.sidebar.CursorRow(state)
	if !ok {
		return m, nil
	}

	switch row.Kind {
	case ui.RowGroup:
		g, found := m.controller.Registry().Group(row.GroupID)
		if !found {
			return m, nil
		}
		if g.IsLeaf() {
			return m, m.openLink(g.Links[0].ID)
		}
		m.controller.ToggleGroup(row.GroupID)
		m.sidebar.ClampCursor(m.controller.State())
		m.saveConfig()

	case ui.RowLink:
		return m, m.openLink(row.LinkID)
	}
	return m, nil
}

// openLink navigates to a sidebar link and records it in the history
func (m *Model) openLink(linkID string) tea.Cmd {
	link, _, ok := m.controller.Registry().Link(linkID)
	if !ok {
		return nil
	}

	m.controller.Visit(link.Href)
	// Opening a page from an overlaid sidebar dismisses the overlay
	m.controller.CloseOverlay()
	m.syncRoute()
	m.updateSizes()
	logger.Debug("Opened link %s (%s)", linkID, link.Href)
	return nil
}

// applyTheme switches the theme and persists it
func (m *Model) applyTheme(name ui.ThemeName) tea.Cmd {
	ui.SetTheme(name)
	m.config.SetTheme(string(name))
	if err := m.config.Save(); err != nil {
		logger.Error("Failed to persist theme: %v", err)
		return m.ShowFlashError("Theme not saved: " + err.Error())
	}
	return m.ShowFlashSuccess("Theme: " + ui.CurrentTheme().Name)
}

// saveConfig flushes persisted preferences, logging rather than surfacing
// failures: navigation must keep working with a read-only home directory.
func (m *Model) saveConfig() {
	if err := m.config.Save(); err != nil {
		logger.Error("Failed to save config: %v", err)
	}
}

// shortcutHandlers maps global keys to their actions. Movement keys live in
// handleMovementKey; modal and search contexts intercept before this table.
var shortcutHandlers = map[string]func(*Model) (tea.Model, tea.Cmd){
	"q":        func(m *Model) (tea.Model, tea.Cmd) { return m, tea.Quit },
	keys.CtrlC: func(m *Model) (tea.Model, tea.Cmd) { return m, tea.Quit },

	"s": func(m *Model) (tea.Model, tea.Cmd) {
		m.controller.ToggleShell()
		m.saveConfig()
		m.updateSizes()
		return m, nil
	},

	"t": func(m *Model) (tea.Model, tea.Cmd) {
		return m, m.applyTheme(ui.ToggleThemeName())
	},

	"T": func(m *Model) (tea.Model, tea.Cmd) {
		m.modal.Show(ui.NewThemePickerState())
		return m, nil
	},

	"/": func(m *Model) (tea.Model, tea.Cmd) {
		m.sidebar.EnterSearchMode()
		return m, nil
	},

	"g": func(m *Model) (tea.Model, tea.Cmd) {
		m.modal.Show(ui.NewGoToState())
		return m, nil
	},

	"?": func(m *Model) (tea.Model, tea.Cmd) {
		m.modal.Show(ui.NewHelpState())
		return m, nil
	},

	keys.Escape: func(m *Model) (tea.Model, tea.Cmd) {
		m.controller.CloseOverlay()
		m.sidebar.ClampCursor(m.controller.State())
		m.updateSizes()
		return m, nil
	},

	"y": func(m *Model) (tea.Model, tea.Cmd) {
		path := m.controller.CurrentPath()
		if path == "" {
			return m, nil
		}
		if err := clipboard.WriteText(path); err != nil {
			return m, m.ShowFlashError("Copy failed: " + err.Error())
		}
		return m, m.ShowFlashSuccess("Copied " + path)
	},

	"[": func(m *Model) (tea.Model, tea.Cmd) {
		if _, ok := m.controller.Back(); ok {
			m.syncRoute()
			m.updateSizes()
		}
		return m, nil
	},

	"]": func(m *Model) (tea.Model, tea.Cmd) {
		if _, ok := m.controller.Forward(); ok {
			m.syncRoute()
			m.updateSizes()
		}
		return m, nil
	},

	keys.Left: func(m *Model) (tea.Model, tea.Cmd) {
		m.strip.Scroll(nav.ScrollLeft)
		return m, nil
	},

	keys.Right: func(m *Model) (tea.Model, tea.Cmd) {
		m.strip.Scroll(nav.ScrollRight)
		return m, nil
	},

	keys.PgUp: func(m *Model) (tea.Model, tea.Cmd) {
		m.content.ScrollUp(ui.ContentPageStep)
		m.updateSizes()
		return m, nil
	},

	keys.PgDown: func(m *Model) (tea.Model, tea.Cmd) {
		m.content.ScrollDown(ui.ContentPageStep)
		m.updateSizes()
		return m, nil
	},

	keys.Home: func(m *Model) (tea.Model, tea.Cmd) {
		m.content.ScrollToTop()
		m.updateSizes()
		return m, nil
	},

	keys.End: func(m *Model) (tea.Model, tea.Cmd) {
		m.content.ScrollToBottom()
		m.updateSizes()
		return m, nil
	},

	keys.CtrlU: func(m *Model) (tea.Model, tea.Cmd) {
		m.content.ScrollUp(ui.ContentHalfPageStep)
		m.updateSizes()
		return m, nil
	},

	keys.CtrlD: func(m *Model) (tea.Model, tea.Cmd) {
		m.content.ScrollDown(ui.ContentHalfPageStep)
		m.updateSizes()
		return m, nil
	},
}
