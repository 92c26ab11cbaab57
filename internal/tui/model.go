// Package tui implements the Bubble Tea TUI for folio.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jarospm/folio/internal/core/config"
	"github.com/jarospm/folio/internal/core/logging"
	"github.com/jarospm/folio/internal/core/partial"
	"github.com/jarospm/folio/internal/core/project"
	"github.com/jarospm/folio/internal/core/styles"
	"github.com/jarospm/folio/internal/tui/contactform"
	"github.com/jarospm/folio/internal/tui/projects"
)

// Options configures the TUI.
type Options struct {
	Config  config.Config
	Catalog project.Catalog
	// Watcher reloads the catalog when a source changes. Optional.
	Watcher *project.Watcher
	Tab     Tab
	Build   BuildInfo
}

type keyMap struct {
	Quit     key.Binding
	Projects key.Binding
	Contact  key.Binding
	Switch   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Projects: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "projects")),
		Contact:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "contact")),
		Switch:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch tab")),
	}
}

// Model is the root TUI model. It owns the tab bar and the footer and hosts
// the projects and contact screens.
type Model struct {
	opts Options
	tab  Tab
	keys keyMap
	log  zerolog.Logger

	projects *projects.View
	contact  *contactform.Controller

	footerMarkdown string
	footer         string

	width  int
	height int
}

// New creates the root model.
func New(opts Options) *Model {
	return &Model{
		opts:     opts,
		tab:      opts.Tab,
		keys:     defaultKeyMap(),
		log:      logging.Component("tui"),
		projects: projects.New(opts.Catalog),
		contact:  contactform.NewController(opts.Config.Contact),
	}
}

// Tab returns the active tab.
func (m *Model) Tab() Tab { return m.tab }

// Contact returns the contact form controller.
func (m *Model) Contact() *contactform.Controller { return m.contact }

// Projects returns the projects showcase.
func (m *Model) Projects() *projects.View { return m.projects }

// Footer returns the rendered footer, empty until the fragment has loaded.
func (m *Model) Footer() string { return m.footer }

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.contact.Init(),
		loadFooter(m.opts.Config.FooterPath()),
	}
	if m.opts.Watcher != nil {
		cmds = append(cmds, watchCatalog(m.opts.Watcher, m.opts.Config.ProjectSources()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderFooter()
		m.resize()
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd

	case footerLoadedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("footer load failed")
			return m, nil
		}
		m.footerMarkdown = msg.markdown
		m.renderFooter()
		m.resize()
		return m, nil

	case catalogChangedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("path", msg.path).Msg("catalog reload failed")
		} else {
			m.projects.SetCatalog(msg.catalog)
			m.log.Info().Str("path", msg.path).Int("projects", msg.catalog.Len()).Msg("catalog reloaded")
		}
		return m, watchCatalog(m.opts.Watcher, m.opts.Config.ProjectSources())
	}

	// Timers and cursor blinks belong to the contact form even while the
	// projects tab is showing.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.contact, cmd = m.contact.Update(msg)
	cmds = append(cmds, cmd)

	if m.tab == TabProjects {
		m.projects, cmd = m.projects.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Projects):
		m.setTab(TabProjects)
		return nil
	case key.Matches(msg, m.keys.Contact):
		m.setTab(TabContact)
		return nil
	case key.Matches(msg, m.keys.Switch):
		m.setTab((m.tab + 1) % Tab(len(tabNames)))
		return nil
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabContact:
		m.contact, cmd = m.contact.Update(msg)
	default:
		m.projects, cmd = m.projects.Update(msg)
	}
	return cmd
}

func (m *Model) setTab(t Tab) {
	if t == m.tab {
		return
	}
	m.log.Debug().Stringer("tab", t).Msg("switch tab")
	m.tab = t
}

func (m *Model) renderFooter() {
	if m.footerMarkdown == "" {
		return
	}

	out, err := partial.Render(m.footerMarkdown, m.width)
	if err != nil {
		m.log.Warn().Err(err).Msg("footer render failed")
		m.footer = ""
		return
	}
	m.footer = out
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	used := lipgloss.Height(m.header()) + 1
	if m.footer != "" {
		used += lipgloss.Height(m.footer) + 1
	}
	m.projects.SetSize(m.width, max(m.height-used, 1))
}

func (m *Model) header() string {
	tabs := make([]string, 0, len(tabNames))
	for i := range tabNames {
		t := Tab(i)
		style := styles.TabInactiveStyle
		if t == m.tab {
			style = styles.TabActiveStyle
		}
		tabs = append(tabs, style.Render(t.Title()))
	}

	title := styles.CommandHeaderStyle.Render("folio") +
		styles.TextMutedStyle.Render(" "+m.opts.Build.Label())
	hint := styles.HelpStyle.Render("f1/f2 switch · ctrl+c quit")

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, " "), "  ", hint)
}

func (m *Model) View() string {
	var body string
	switch m.tab {
	case TabContact:
		body = m.contact.View()
	default:
		body = m.projects.View()
	}

	parts := []string{m.header(), body}
	if m.footer != "" {
		divider := styles.DividerStyle.Render(strings.Repeat("─", max(m.width, 1)))
		parts = append(parts, divider, m.footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
