package commands

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/jarospm/folio/internal/core/project"
	"github.com/jarospm/folio/internal/core/styles"
	"github.com/jarospm/folio/internal/printer"
	"github.com/jarospm/folio/pkg/iojson"
)

type ProjectsCmd struct {
	flags *Flags

	category string
	tech     string
	json     bool
}

// NewProjectsCmd creates the projects command.
func NewProjectsCmd(flags *Flags) *ProjectsCmd {
	return &ProjectsCmd{flags: flags}
}

// Register adds the projects command to the application.
func (cmd *ProjectsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "projects",
		Usage:     "List portfolio projects",
		UsageText: "folio projects [--category NAME] [--tech NAME] [--json]",
		Description: `Lists the projects in the catalog. The catalog comes from the
projects.sources globs in the config, or the built-in catalog when none are set.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Usage:       "only show projects in this category",
				Value:       project.CategoryAll,
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "tech",
				Usage:       "only show projects using this technology",
				Destination: &cmd.tech,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output one JSON object per line",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ProjectsCmd) run(ctx context.Context, c *cli.Command) error {
	catalog, err := project.Load(cmd.flags.Config.ProjectSources())
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}

	if !slices.Contains(catalog.Categories(), cmd.category) {
		return fmt.Errorf("unknown category %q (available: %s)", cmd.category, strings.Join(catalog.Categories(), ", "))
	}

	visible := project.WithTechnology(catalog.Filter(cmd.category), cmd.tech)

	if cmd.json {
		for _, p := range visible {
			if err := iojson.WriteLine(c.Root().Writer, p); err != nil {
				return err
			}
		}
		return nil
	}

	p := printer.Ctx(ctx)
	if len(visible) > 0 {
		p.Printf("%s", renderProjectTable(visible))
	}
	p.Printf("Showing %d of %d", len(visible), catalog.Len())
	return nil
}

func renderProjectTable(projects []project.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Category,
			strings.Join(p.Technologies, ", "),
			p.Link,
		})
	}

	header := lipgloss.NewStyle().Foreground(styles.ColorPrimary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.DividerStyle).
		Headers("ID", "TITLE", "CATEGORY", "TECHNOLOGIES", "LINK").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
