package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/jarospm/folio/internal/core/project"
	"github.com/jarospm/folio/internal/profiler"
	"github.com/jarospm/folio/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo
	tab   string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tab",
			Usage:       "tab to open on start (projects, contact)",
			Sources:     cli.EnvVars("FOLIO_TAB"),
			Value:       tui.TabProjects.String(),
			Destination: &cmd.tab,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("FOLIO_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	tab, err := tui.ParseTab(cmd.tab)
	if err != nil {
		return err
	}

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	cfg := cmd.flags.Config
	sources := cfg.ProjectSources()

	catalog, err := project.Load(sources)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}

	var watcher *project.Watcher
	if cfg.Projects.Watch && len(sources) > 0 {
		watcher, err = project.NewWatcher(sources)
		if err != nil {
			return fmt.Errorf("watch projects: %w", err)
		}
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close project watcher")
			}
		}()
	}

	m := tui.New(tui.Options{
		Config:  *cfg,
		Catalog: catalog,
		Watcher: watcher,
		Tab:     tab,
		Build:   cmd.build,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
