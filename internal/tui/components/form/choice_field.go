package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
)

// ChoiceField picks one value from a short fixed list with left/right.
type ChoiceField struct {
	label    string
	options  []string
	selected int
	focused  bool
}

// NewChoiceField creates a choice field preselecting defaultVal when it is
// one of options.
func NewChoiceField(label string, options []string, defaultVal string) *ChoiceField {
	f := &ChoiceField{label: label, options: options}
	for i, o := range options {
		if o == defaultVal {
			f.selected = i
		}
	}
	return f
}

func (f *ChoiceField) Update(msg tea.Msg) (Field, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !f.focused || !ok || len(f.options) == 0 {
		return f, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		f.selected = (f.selected - 1 + len(f.options)) % len(f.options)
	case "right", "l", "space":
		f.selected = (f.selected + 1) % len(f.options)
	}
	return f, nil
}

func (f *ChoiceField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	opts := make([]string, len(f.options))
	for i, o := range f.options {
		if i == f.selected {
			opts[i] = styles.SelectedStyle.Render("[" + o + "]")
		} else {
			opts[i] = styles.TextMutedStyle.Render(" " + o + " ")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(f.label), strings.Join(opts, " "))

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(content)
}

func (f *ChoiceField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *ChoiceField) Blur() { f.focused = false }

func (f *ChoiceField) Focused() bool { return f.focused }
func (f *ChoiceField) Label() string { return f.label }

func (f *ChoiceField) Value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.selected]
}

func (f *ChoiceField) Validate() error { return nil }
