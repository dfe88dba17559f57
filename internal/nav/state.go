package nav

// Store persists the handful of navigation preferences that survive restarts.
// internal/config implements it; tests substitute an in-memory fake.
type Store interface {
	LastOpenGroup() string
	SetLastOpenGroup(id string)
	ShellCollapsed() bool
	SetShellCollapsed(collapsed bool)
}

// ShellBreakpoint is the terminal width (in columns) below which the shell is
// forced into collapsed rail mode, the analog of the theme's narrow-viewport
// breakpoint.
const ShellBreakpoint = 110

// State is the explicit navigation state record. Holding the expanded group
// and active link as single fields makes the accordion-exclusivity and
// single-active-link invariants structural rather than enforced by sweeps.
type State struct {
	ExpandedGroup  string // ID of the open accordion group, "" when all closed
	ActiveLink     string // ID of the highlighted link, "" when none
	ShellCollapsed bool   // icon-only rail mode
}

// Controller owns the navigation state and applies the event semantics:
// accordion toggling, active-link resolution from the current route, shell
// collapse, and history walking. All methods are synchronous and run on the
// event loop; absent IDs and unmatched paths are silent no-ops.
type Controller struct {
	registry *Registry
	store    Store
	state    State
	width    int
	hist     history
}

// NewController creates a controller with the initial state: shell mode from
// the persisted preference, expanded group from the persisted last-open group.
// The group containing the active link takes precedence once the first route
// is visited.
func NewController(registry *Registry, store Store) *Controller {
	c := &Controller{registry: registry, store: store}
	c.state.ShellCollapsed = store.ShellCollapsed()
	if last := store.LastOpenGroup(); last != "" {
		if g, ok := registry.Group(last); ok && !g.IsLeaf() {
			c.state.ExpandedGroup = last
		}
	}
	return c
}

// Registry returns the sidebar registry the controller drives.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// State returns the current state record.
func (c *Controller) State() State {
	return c.state
}

// Width returns the last viewport width passed to Resize.
func (c *Controller) Width() int {
	return c.width
}

// ToggleGroup expands the given group, collapsing any sibling, or collapses it
// when it is already open. The last-open group is persisted on expand and
// cleared on collapse. Leaf groups cannot stay expanded; toggling one closes
// whatever accordion section is open. Unknown IDs are no-ops.
func (c *Controller) ToggleGroup(groupID string) {
	g, ok := c.registry.Group(groupID)
	if !ok {
		return
	}

	if c.state.ExpandedGroup == groupID || g.IsLeaf() {
		c.state.ExpandedGroup = ""
		c.store.SetLastOpenGroup("")
		return
	}

	c.state.ExpandedGroup = groupID
	c.store.SetLastOpenGroup(groupID)
}

// ActivateByPath resolves the active link from the current route path using
// trailing-slash-normalized exact matching. On a match all previous markers
// are replaced and the containing group is expanded if it was collapsed. On no
// match the state is left untouched: the shell must not fight user-opened
// groups while on pages that have no sidebar entry.
func (c *Controller) ActivateByPath(path string) {
	link, group, ok := c.registry.LinkByPath(path)
	if !ok {
		return
	}
	c.state.ActiveLink = link.ID
	if !group.IsLeaf() {
		c.state.ExpandedGroup = group.ID
	} else {
		c.state.ExpandedGroup = ""
	}
}

// ActivateByName is the programmatic navigation entry point for external
// drivers. Unlike ActivateByPath it unconditionally clears all markers and
// collapses every group before matching the first link whose href contains
// the fragment.
func (c *Controller) ActivateByName(fragment string) {
	c.state.ActiveLink = ""
	c.state.ExpandedGroup = ""
	if fragment == "" {
		return
	}
	link, group, ok := c.registry.LinkByFragment(fragment)
	if !ok {
		return
	}
	c.state.ActiveLink = link.ID
	if !group.IsLeaf() {
		c.state.ExpandedGroup = group.ID
	}
}

// ToggleShell flips the collapsed rail mode and persists it.
func (c *Controller) ToggleShell() {
	c.state.ShellCollapsed = !c.state.ShellCollapsed
	c.store.SetShellCollapsed(c.state.ShellCollapsed)
}

// Resize applies the breakpoint rule on every resize tick: narrow viewports
// force the rail collapsed, wide ones force it expanded. This intentionally
// overrides a manual toggle on the next tick below the breakpoint; the quirk
// is preserved from the shipped behavior. The forced mode is not persisted,
// only explicit toggles are.
func (c *Controller) Resize(width int) {
	c.width = width
	c.state.ShellCollapsed = width < ShellBreakpoint
}

// OverlayVisible reports whether the click-outside-to-close backdrop is
// needed: only below the breakpoint while the rail is expanded.
func (c *Controller) OverlayVisible() bool {
	return c.width > 0 && c.width < ShellBreakpoint && !c.state.ShellCollapsed
}

// CloseOverlay collapses the rail when the backdrop is dismissed.
func (c *Controller) CloseOverlay() {
	if c.OverlayVisible() {
		c.state.ShellCollapsed = true
	}
}

// Visit records the path in the navigation history and resolves the active
// link for it.
func (c *Controller) Visit(path string) {
	c.hist.visit(NormalizePath(path))
	c.ActivateByPath(path)
}

// Back walks one entry back in the history, re-resolving the active link.
// Returns the path navigated to, or false at the start of the stack.
func (c *Controller) Back() (string, bool) {
	path, ok := c.hist.back()
	if !ok {
		return "", false
	}
	c.ActivateByPath(path)
	return path, true
}

// Forward walks one entry forward in the history, re-resolving the active
// link. Returns the path navigated to, or false at the end of the stack.
func (c *Controller) Forward() (string, bool) {
	path, ok := c.hist.forward()
	if !ok {
		return "", false
	}
	c.ActivateByPath(path)
	return path, true
}

// CurrentPath returns the path at the history cursor, or "" before the first
// visit.
func (c *Controller) CurrentPath() string {
	return c.hist.current()
}
