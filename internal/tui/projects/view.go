// Package projects renders the projects showcase with category filtering.
package projects

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/project"
	"github.com/jarospm/folio/internal/core/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	// header, status line, blank, help
	chromeHeight = 4
)

// View is the projects showcase. The active category is view state; it is
// not shared with any other screen.
type View struct {
	catalog        project.Catalog
	activeCategory string

	viewport viewport.Model
	keys     KeyMap
	help     help.Model
	width    int
	height   int
}

// New returns a showcase over catalog with every category shown.
func New(catalog project.Catalog) *View {
	v := &View{
		catalog:        catalog,
		activeCategory: project.CategoryAll,
		viewport:       viewport.New(defaultWidth, defaultHeight-chromeHeight),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		width:          defaultWidth,
		height:         defaultHeight,
	}
	v.refresh()
	return v
}

// ActiveCategory returns the category currently filtered on.
func (v *View) ActiveCategory() string { return v.activeCategory }

// Visible returns the projects shown under the active category.
func (v *View) Visible() []project.Project { return v.catalog.Filter(v.activeCategory) }

// SetCatalog swaps the catalog. The active category is kept when the new
// catalog still has it.
func (v *View) SetCatalog(c project.Catalog) {
	v.catalog = c
	if !slices.Contains(c.Categories(), v.activeCategory) {
		v.activeCategory = project.CategoryAll
	}
	v.refresh()
}

// SetCategory filters on category. Unknown categories are ignored.
func (v *View) SetCategory(category string) {
	if !slices.Contains(v.catalog.Categories(), category) {
		return
	}
	v.activeCategory = category
	v.refresh()
	v.viewport.GotoTop()
}

func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.viewport.Width = width
	v.viewport.Height = max(height-chromeHeight, 1)
	v.refresh()
}

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, v.keys.Prev):
			v.cycle(-1)
			return v, nil
		case key.Matches(msg, v.keys.Next):
			v.cycle(1)
			return v, nil
		case key.Matches(msg, v.keys.All):
			v.SetCategory(project.CategoryAll)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) cycle(step int) {
	categories := v.catalog.Categories()
	i := slices.Index(categories, v.activeCategory)
	next := (i + step + len(categories)) % len(categories)
	v.SetCategory(categories[next])
}

func (v *View) refresh() {
	visible := v.Visible()
	if len(visible) == 0 {
		v.viewport.SetContent(styles.TextMutedStyle.Render("No projects in this category."))
		return
	}

	cards := make([]string, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, renderCard(p, v.width))
	}
	v.viewport.SetContent(strings.Join(cards, "\n"))
}

// Status returns the "Showing <visible> of <total>" line.
func (v *View) Status() string {
	return fmt.Sprintf("Showing %d of %d", len(v.Visible()), v.catalog.Len())
}

func (v *View) filterBar() string {
	categories := v.catalog.Categories()
	tabs := make([]string, 0, len(categories))
	for _, c := range categories {
		style := styles.FilterNormalStyle
		if c == v.activeCategory {
			style = styles.FilterActiveStyle
		}
		tabs = append(tabs, style.Render(c))
	}
	return styles.TextMutedStyle.Render(styles.IconArrowL+" ") +
		strings.Join(tabs, "  ") +
		styles.TextMutedStyle.Render(" "+styles.IconArrowR)
}

func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.filterBar(),
		styles.TextMutedStyle.Render(v.Status()),
		v.viewport.View(),
		styles.HelpStyle.Render(v.help.ShortHelpView(v.keys.ShortHelp())),
	)
}
