package form

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/styles"
)

// SelectFormField is a single-select field wrapping list.Model. An option
// with an empty value acts as a placeholder and renders as the field's
// placeholder text.
type SelectFormField struct {
	Wrapper

	list        list.Model
	options     []string
	label_      string
	placeholder string
	focused     bool
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct {
	placeholder string
}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	style := styles.TextForegroundStyle
	cursor := "  "
	if isSelected {
		style = styles.SelectFieldItemSelectedStyle
		cursor = styles.IconSelected + " "
	}

	label := item.label
	if label == "" {
		label = d.placeholder
		if !isSelected {
			style = styles.TextMutedStyle
		}
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(label))
}

// NewSelectFormField creates a single-select field from static options.
// The first option starts selected.
func NewSelectFormField(label, placeholder string, options []string, hint string) *SelectFormField {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	const maxVisible = 8
	height := max(min(len(options), maxVisible), 1)

	l := list.New(items, selectDelegate{placeholder: placeholder}, 40, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.DisableQuitKeybindings()

	return &SelectFormField{
		Wrapper:     Wrapper{Hint: hint},
		list:        l,
		options:     options,
		label_:      label,
		placeholder: placeholder,
	}
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	return f.frame(f.label_, f.focused, f.list.View())
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }

func (f *SelectFormField) Value() string {
	item := f.list.SelectedItem()
	if item == nil {
		return ""
	}
	if si, ok := item.(selectItem); ok && si.index >= 0 && si.index < len(f.options) {
		return f.options[si.index]
	}
	return ""
}

// SetValue selects the option equal to v. Unknown values are ignored.
func (f *SelectFormField) SetValue(v string) {
	for i, opt := range f.options {
		if opt == v {
			f.list.Select(i)
			return
		}
	}
}

// Reset selects the first option.
func (f *SelectFormField) Reset() {
	if len(f.options) > 0 {
		f.list.Select(0)
	}
}

func (f *SelectFormField) Label() string { return f.label_ }
