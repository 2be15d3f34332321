// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorAccent     color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	BannerStyle        lipgloss.Style
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	LabelStyle         lipgloss.Style
	ValueStyle         lipgloss.Style

	// TUI shared styles.
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	CardStyle        lipgloss.Style
	CardTitleStyle   lipgloss.Style
	TextMutedStyle   lipgloss.Style
	TextSuccessStyle lipgloss.Style
	TextWarningStyle lipgloss.Style
	TextErrorStyle   lipgloss.Style
	SelectedStyle    lipgloss.Style
	HelpStyle        lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style

	ChatUserStyle lipgloss.Style
	ChatBotStyle  lipgloss.Style

	// Toast styles, one per level.
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastTitleStyle   lipgloss.Style
	ToastActionStyle  lipgloss.Style
)

// Banner is printed above interactive CLI forms.
const Banner = "道場  dojo"

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorAccent = p.Accent
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	LabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(18)
	ValueStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	SelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	ChatBotStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorSecondary)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)
	ToastTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	ToastActionStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// ProgressBar renders a horizontal bar of width cells filled to pct (0..100).
// The filled portion blends from the primary to the accent color.
func ProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct = min(max(pct, 0), 100)
	filled := int(pct / 100 * float64(width))

	from, okFrom := colorful.MakeColor(ColorPrimary)
	to, okTo := colorful.MakeColor(ColorAccent)

	var b strings.Builder
	for i := range filled {
		cell := lipgloss.NewStyle()
		if okFrom && okTo {
			t := 0.0
			if width > 1 {
				t = float64(i) / float64(width-1)
			}
			cell = cell.Foreground(lipgloss.Color(from.BlendLab(to, t).Clamped().Hex()))
		} else {
			cell = cell.Foreground(ColorPrimary)
		}
		b.WriteString(cell.Render("█"))
	}
	b.WriteString(TextMutedStyle.Render(strings.Repeat("░", width-filled)))
	return b.String()
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Document.Margin = nil
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.Emph.Color = secondary
	cfg.Strong.Color = fg
	cfg.BlockQuote.Color = muted
	cfg.Item.Color = fg

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
