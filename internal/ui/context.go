package ui

import (
	"sync"

	"github.com/dlapp/crmdeck/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ContentWidth  int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderTallHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateLayout recalculates all dimensions for the terminal size, the sidebar
// collapse mode, and the header shrink state. This method is thread-safe and
// should be called from the main event loop on resize and on any state change
// that affects the frame.
func (v *ViewContext) UpdateLayout(width, height int, sidebarCollapsed, headerCompact bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	if headerCompact {
		v.HeaderHeight = HeaderCompactHeight
	} else {
		v.HeaderHeight = HeaderTallHeight
	}
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer, minus the strip
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight - MenuStripHeight

	if sidebarCollapsed {
		v.SidebarWidth = RailWidth
	} else {
		v.SidebarWidth = SidebarWidth
	}
	v.ContentWidth = width - v.SidebarWidth

	log := logger.ComponentLogger("ui")
	log.Debug("Layout updated",
		"width", width,
		"height", height,
		"headerHeight", v.HeaderHeight,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"contentWidth", v.ContentWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
