// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderTallHeight is the header height before the content is scrolled
	HeaderTallHeight = 2

	// HeaderCompactHeight is the header height once the content is scrolled
	HeaderCompactHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MenuStripHeight is the height of the quick-link strip in lines
	MenuStripHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidth is the full sidebar width in columns
	SidebarWidth = 28

	// RailWidth is the sidebar width in collapsed icon-rail mode
	RailWidth = 6

	// MinTerminalWidth is the smallest width the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest height the layout is computed for
	MinTerminalHeight = 10
)

// Scroll affordances
const (
	// HeaderShrinkThreshold is the content scroll offset (in lines) past which
	// the header drops to its compact height
	HeaderShrinkThreshold = 3

	// BackToTopThreshold is the content scroll offset past which the
	// back-to-top hint appears in the footer
	BackToTopThreshold = 8

	// ContentPageStep is the number of lines pgup/pgdown move the content
	ContentPageStep = 10

	// ContentHalfPageStep is the number of lines ctrl+u/ctrl+d move the content
	ContentHalfPageStep = 5

	// ContentWheelStep is the number of lines one mouse wheel tick moves
	ContentWheelStep = 3
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 56

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 128

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 44
)
