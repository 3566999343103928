package cli

import (
	"strings"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/alexanderramin/chartwise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// chartwiseHuhTheme returns a custom huh theme using the Gruvbox palette.
func chartwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// recommendChoices lists the data types and purposes offered by the
// recommendation wizard: those the catalog has rules for, in rule order,
// followed by the remaining known values.
func recommendChoices(c *catalog.Catalog) (dataTypes, purposes []string) {
	seenType := make(map[string]bool)
	seenPurpose := make(map[string]bool)
	addType := func(v string) {
		v = strings.ToLower(v)
		if v != "" && !seenType[v] {
			seenType[v] = true
			dataTypes = append(dataTypes, v)
		}
	}
	addPurpose := func(v string) {
		v = strings.ToLower(v)
		if v != "" && !seenPurpose[v] {
			seenPurpose[v] = true
			purposes = append(purposes, v)
		}
	}

	for _, r := range c.Rules() {
		addType(r.DataType)
		addPurpose(r.Purpose)
	}
	for _, v := range domain.DataTypes {
		addType(v)
	}
	for _, v := range domain.Purposes {
		addPurpose(v)
	}
	return dataTypes, purposes
}

// wizardRecommend creates a huh form asking for a data type and purpose.
// Values already set are kept as the initial selection.
func wizardRecommend(c *catalog.Catalog, dataType, purpose *string) *huh.Form {
	dataTypes, purposes := recommendChoices(c)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What kind of data do you have?").
				Options(huh.NewOptions(dataTypes...)...).
				Value(dataType),
			huh.NewSelect[string]().
				Title("What should the chart show?").
				Options(huh.NewOptions(purposes...)...).
				Value(purpose),
		),
	).WithTheme(chartwiseHuhTheme()).WithShowHelp(false)
}
