package plan

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(80)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Width(76)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)

	missingStyle = lipgloss.NewStyle().Faint(true)

	bodyStyle = lipgloss.NewStyle().Width(76)
)

// Render formats the document inside a box for terminal display.
func (d *Document) Render() string {
	if d == nil {
		return "No account plan available."
	}

	var lines []string
	lines = append(lines, headerStyle.Render("ACCOUNT PLAN"))
	lines = append(lines, "Generated: "+d.GeneratedAt.Format(time.RFC3339))
	if d.LastUpdated != nil {
		lines = append(lines, "Last Updated: "+d.LastUpdated.Format(time.RFC3339))
	}
	lines = append(lines, "")

	for _, section := range Sections() {
		lines = append(lines, sectionTitleStyle.Render(strings.ToUpper(section.Title())))
		if content, ok := d.Get(section); ok {
			lines = append(lines, bodyStyle.Render(content))
		} else {
			lines = append(lines, missingStyle.Render("[Not provided]"))
		}
		lines = append(lines, "")
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}
