package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/archlint/archlint/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityInfo:     lipgloss.NewStyle().Foreground(info),
		domain.SeverityWarning:  lipgloss.NewStyle().Foreground(warning).Bold(true),
		domain.SeverityError:    lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityCritical: lipgloss.NewStyle().Foreground(danger).Bold(true).Underline(true),
	}
)

// RenderReport formats a lint report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("archlint")
	subtitle := dimStyle.Render(report.RepoID)
	summary := fmt.Sprintf("%d files  ·  %d issues", report.FilesLinted, len(report.Issues))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + titleStyle.Render(summary)))
	b.WriteString("\n\n")

	if len(report.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
		return b.String()
	}

	counts := report.CountBySeverity()
	b.WriteString("  " + titleStyle.Render("Issues") + "  ")
	for _, sev := range []domain.Severity{domain.SeverityCritical, domain.SeverityError, domain.SeverityWarning, domain.SeverityInfo} {
		if n := counts[sev]; n > 0 {
			b.WriteString(severityStyles[sev].Render(fmt.Sprintf("%d %s", n, sev)))
			b.WriteString("  ")
		}
	}
	b.WriteString("\n\n")

	for _, issue := range report.Issues {
		renderIssue(&b, issue)
	}

	b.WriteString("\n  " + separatorLine + "\n")
	if report.CommitHash != "" {
		b.WriteString("  " + dimStyle.Render("commit "+shortHash(report.CommitHash)) + "\n")
	}

	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.ValidationIssue) {
	tag := severityStyles[issue.Severity].Render(strings.ToUpper(string(issue.Severity)))
	location := fileStyle.Render(fmt.Sprintf("%s:%d", issue.FilePath, issue.LineNumber))

	fmt.Fprintf(b, "  %s  %s  %s\n", tag, location, issue.Message)
	fmt.Fprintf(b, "        %s\n", dimStyle.Render(issue.Code+" · "+issue.RuleName))
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "        %s\n", faintStyle.Render("↳ "+issue.Suggestion))
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
