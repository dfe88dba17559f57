package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/dlapp/crmdeck/internal/keys"
)

// ModalTheme returns a huh theme matching the application palette. It is
// built per form so it picks up the colors of the active theme.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		return t
	})
}

// ThemePickerState selects one of the built-in themes.
type ThemePickerState struct {
	form     *huh.Form
	selected ThemeName
}

// NewThemePickerState creates the theme picker preselected on the current theme
func NewThemePickerState() *ThemePickerState {
	s := &ThemePickerState{selected: CurrentThemeName()}

	options := make([]huh.Option[ThemeName], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		options = append(options, huh.NewOption(GetTheme(name).Name, name))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ThemeName]().
				Title("Theme").
				Options(options...).
				Value(&s.selected),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	// Init eagerly so the first render is correct
	s.form.Init()
	return s
}

func (t *ThemePickerState) modalState() {}

// Title returns the modal title
func (t *ThemePickerState) Title() string { return "Theme" }

// Help returns the modal footer hint
func (t *ThemePickerState) Help() string { return "enter to apply, esc to cancel" }

// Render draws the form
func (t *ThemePickerState) Render() string {
	return t.form.View()
}

// Selected returns the theme name under the select cursor
func (t *ThemePickerState) Selected() ThemeName {
	return t.selected
}

// Update feeds input to the form. Enter and escape are left to the app-layer
// modal handlers.
func (t *ThemePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return t, nil
		}
	}
	model, cmd := t.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		t.form = form
	}
	return t, cmd
}
