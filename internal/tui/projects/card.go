package projects

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/project"
	"github.com/jarospm/folio/internal/core/styles"
)

const minCardWidth = 24

// renderCard draws one project at the given outer width.
func renderCard(p project.Project, width int) string {
	inner := max(width-styles.CardStyle.GetHorizontalFrameSize(), minCardWidth)

	pills := make([]string, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		pills = append(pills, styles.TechPillStyle.Render(tech))
	}

	parts := []string{
		styles.CategoryBadgeStyle(p.Category).Render(strings.ToUpper(p.Category)),
		styles.CardTitleStyle.Render(p.Title),
	}
	if p.Description != "" {
		parts = append(parts, styles.CardBodyStyle.Width(inner).Render(p.Description))
	}
	if len(pills) > 0 {
		parts = append(parts, lipgloss.NewStyle().Width(inner).Render(strings.Join(pills, " ")))
	}
	if p.Link != "" {
		parts = append(parts, styles.LinkStyle.Render(p.Link)+" "+styles.IconLink)
	}

	return styles.CardStyle.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
