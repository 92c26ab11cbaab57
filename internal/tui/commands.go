package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jarospm/folio/internal/core/partial"
	"github.com/jarospm/folio/internal/core/project"
)

const footerLoadTimeout = 2 * time.Second

// footerLoadedMsg carries the footer fragment once it has been read.
type footerLoadedMsg struct {
	markdown string
	err      error
}

// catalogChangedMsg is sent after a catalog source changed and the catalog
// was reloaded.
type catalogChangedMsg struct {
	path    string
	catalog project.Catalog
	err     error
}

func loadFooter(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), footerLoadTimeout)
		defer cancel()

		md, err := partial.Load(ctx, path)
		return footerLoadedMsg{markdown: md, err: err}
	}
}

// watchCatalog waits for the next change event and reloads the catalog. It
// returns nil once the watcher is closed, which ends the watch loop.
func watchCatalog(w *project.Watcher, patterns []string) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}

		c, err := project.Load(patterns)
		return catalogChangedMsg{path: ev.Path, catalog: c, err: err}
	}
}
