package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chartwise/internal/domain"
	"github.com/alexanderramin/chartwise/internal/qa"
)

// FormatChartList renders the catalog as a table in catalog order.
func FormatChartList(charts []domain.Chart) string {
	if len(charts) == 0 {
		return Dim("No charts in catalog.") + "\n"
	}
	rows := make([][]string, 0, len(charts))
	for _, ch := range charts {
		rows = append(rows, []string{
			StyleGreen.Render(ch.ID),
			ch.Name,
			CategoryPill(ch.Category),
			Truncate(ch.FirstUseCase(), 40),
		})
	}
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "BEST FOR"}, rows)
}

// FormatChartDetail renders every field of a chart record.
func FormatChartDetail(ch domain.Chart) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim(ch.ID), CategoryPill(ch.Category)))
	b.WriteString("\n" + ch.Description + "\n\n")

	b.WriteString(Header("Use cases") + "\n")
	b.WriteString(Bullets(ch.UseCases) + "\n")
	b.WriteString(Header("Pros") + "\n")
	b.WriteString(Bullets(styleAll(ch.Pros, StyleGreen.Render)) + "\n")
	b.WriteString(Header("Cons") + "\n")
	b.WriteString(Bullets(styleAll(ch.Cons, StyleRed.Render)))

	if len(ch.DataTypes) > 0 {
		b.WriteString(fmt.Sprintf("\n%s %s", Dim("Data types:"), strings.Join(ch.DataTypes, ", ")))
	}
	if ch.Examples != "" {
		b.WriteString(fmt.Sprintf("\n%s %s", Dim("Examples:  "), ch.Examples))
	}
	b.WriteString(fmt.Sprintf("\n%s %s", Dim("Libraries: "), StyleAqua.Render(strings.Join(ch.Libraries, ", "))))

	return RenderBox(ch.Name, b.String())
}

// FormatCategories renders each category with the number of charts in it.
func FormatCategories(categories []domain.Category, counts map[domain.Category]int) string {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{CategoryPill(c), fmt.Sprintf("%d", counts[c])})
	}
	return RenderTable([]string{"CATEGORY", "CHARTS"}, rows)
}

// FormatAnswer renders an engine response. Fallback answers render in yellow.
func FormatAnswer(response string, fallback bool) string {
	if fallback {
		return StyleYellow.Render(response)
	}
	return StyleFg.Render(response)
}

// FormatTrace renders the intermediate decisions behind an answer.
func FormatTrace(tr qa.Trace) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  Intent:    %s\n", StyleBold.Render(string(tr.Intent))))
	keywords := Dim("(none)")
	if len(tr.Keywords) > 0 {
		keywords = strings.Join(tr.Keywords, ", ")
	}
	b.WriteString(fmt.Sprintf("  Keywords:  %s\n", keywords))
	if tr.Hint != nil {
		b.WriteString(fmt.Sprintf("  Hint:      %s / %s\n", tr.Hint.DataType, tr.Hint.Purpose))
	}
	chart := Dim("(none)")
	if tr.ChartID != "" {
		chart = StyleGreen.Render(tr.ChartID)
	}
	b.WriteString(fmt.Sprintf("  Chart:     %s\n", chart))
	if tr.Fallback {
		b.WriteString(fmt.Sprintf("  Fallback:  %s\n", StyleYellow.Render("yes")))
	}
	b.WriteString("\n" + FormatAnswer(tr.Response, tr.Fallback))

	return RenderBox("Explain", b.String())
}

func styleAll(items []string, style func(...string) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = style(it)
	}
	return out
}
