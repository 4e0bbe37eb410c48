package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitfield/caretrack/internal/models"
)

var (
	HeadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	ConcernStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	PositiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	badgeStrong = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	badgeEmerging = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	badgeEarly = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// ConfidenceBadge renders the confidence tier as a short styled tag.
func ConfidenceBadge(c models.InsightConfidence) string {
	switch c {
	case models.ConfidenceStrong:
		return badgeStrong.Render("[strong]")
	case models.ConfidenceEmerging:
		return badgeEmerging.Render("[emerging]")
	default:
		return badgeEarly.Render("[early]")
	}
}
