package ui

import "charm.land/lipgloss/v2"

// Color palette - defaults match the Light theme, regenerated on theme change
var (
	ColorPrimary     = lipgloss.Color("#6366F1") // Indigo
	ColorSecondary   = lipgloss.Color("#0891B2") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#D1D5DB") // Light gray
	ColorBorderFocus = lipgloss.Color("#6366F1") // Indigo when focused
	ColorBg          = lipgloss.Color("#FFFFFF") // Light background
	ColorText        = lipgloss.Color("#1F2937") // Dark text
	ColorTextMuted   = lipgloss.Color("#6B7280") // Muted text
	ColorTextInverse = lipgloss.Color("#FFFFFF") // Light text for dark backgrounds
	ColorSuccess     = lipgloss.Color("#16A34A") // Green for confirmations
	ColorWarning     = lipgloss.Color("#D97706") // Amber for warnings
	ColorInfo        = lipgloss.Color("#0891B2") // Cyan for info
	ColorError       = lipgloss.Color("#DC2626") // Red for errors
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarGroupStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Padding(0, 1)

	// SidebarActiveStyle marks the link matching the current route
	SidebarActiveStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	// SidebarSelectedStyle uses theme's BgSelected color - initialized properly in regenerateStyles()
	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)

	SidebarIconStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	SidebarIconActiveStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// Menu strip styles
var (
	StripLinkStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	StripActiveStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	StripArrowStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	StripArrowDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status and flash styles
var (
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	FlashSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FlashInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	FlashWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Content styles
var (
	ContentTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	ContentMutedStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	// BackToTopStyle renders the footer hint shown deep into a page
	BackToTopStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	// OverlayHintStyle renders the dismiss hint when the sidebar overlays
	// the content on a narrow terminal
	OverlayHintStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)
