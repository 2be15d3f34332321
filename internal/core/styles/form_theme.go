package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme using the active palette. huh still renders
// with lipgloss v1, so palette colors are passed through as hex strings.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := v1Color(ColorPrimary)
	accent := v1Color(ColorAccent)
	muted := v1Color(ColorMuted)
	errc := v1Color(ColorError)
	fg := v1Color(ColorForeground)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(primary)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errc)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errc)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}

func v1Color(c color.Color) lipglossv1.TerminalColor {
	if hex := colorHexPtr(c); hex != nil {
		return lipglossv1.Color(*hex)
	}
	return lipglossv1.NoColor{}
}
