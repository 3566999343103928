package formatter

import (
	"fmt"
	"strings"
	"time"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome(chartCount int) string {
	var b strings.Builder

	logo := StylePurple.Render("  chartwise")
	b.WriteString("\n")
	b.WriteString(logo + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  Ask anything about the %d charts in the catalog.", chartCount)) + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("Tell me about pie charts") + "\n")
	b.WriteString("  " + StyleGreen.Render("Which chart should I use for trends?") + "\n")
	b.WriteString("  " + StyleGreen.Render("recommend") + StyleDim.Render("    Pick data type and purpose") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Type 'help' for commands, 'exit' to quit.") + "\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and command rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Catalog",
			commands: [][]string{
				{"list", "List every chart"},
				{"categories", "List categories with chart counts"},
				{"category <name>", "Charts in one category"},
				{"show <chart-id>", "Full details for one chart"},
			},
		},
		{
			title: "Questions",
			commands: [][]string{
				{"<anything else>", "Answered by the Q&A engine"},
				{"recommend", "Guided recommendation"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"history", "Questions asked this session"},
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Quit chartwise"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Up/Down cycles through previous input."))

	return RenderBox("Commands", b.String())
}

// HistoryItem is one question/answer pair shown by FormatHistory.
type HistoryItem struct {
	Query    string
	Response string
	AskedAt  time.Time
}

// FormatHistory renders the questions asked in the current session.
func FormatHistory(items []HistoryItem) string {
	if len(items) == 0 {
		return Dim("No questions asked yet.")
	}
	var b strings.Builder
	for i, it := range items {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim(fmt.Sprintf("%2d.", i+1)),
			Dim(it.AskedAt.Format("15:04:05")),
			StyleBold.Render(it.Query)))
		b.WriteString("    " + Truncate(it.Response, 72) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
