// Package ui provides the user interface components for the crmdeck TUI.
//
// # Overview
//
// The ui package implements the visual components of crmdeck using the Bubble
// Tea framework and Lipgloss styling library. It follows the Model-Update-View
// pattern established by Bubble Tea. All navigation semantics live in
// internal/nav; the components here only render the nav.State record they are
// handed.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (2 lines, 1 when scrolled)                   │
//	├─────────────────────────────────────────────────────┤
//	│ Quick strip (1 line)                                │
//	├─────────────────┬───────────────────────────────────┤
//	│   Sidebar       │                                   │
//	│   (28 cols, or  │         Content Panel             │
//	│    6-col rail)  │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Application brand with a gradient background plus the current page
// title. Collapses to a single line once the content panel is scrolled.
//
// Sidebar: The accordion navigation tree. Renders the groups and links of the
// nav registry, highlighting the expanded group and active link. Collapses to
// an icon rail in mini mode and supports an inline search filter.
//
// MenuStrip: A single-line horizontal strip of quick links above the content,
// paged with left/right arrows.
//
// Content: Placeholder record views for the current route, with scrolling and
// a back-to-top hint once the reader is deep into the page.
//
// Footer: Shows context-aware keyboard shortcuts and transient flash messages.
//
// Modal: Popup dialogs (help, theme picker, go-to-route).
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and regenerated whenever
// the theme changes. The default palette is the Light theme.
package ui
