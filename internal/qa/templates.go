package qa

import (
	"sort"
	"strings"
)

// Response templates. Placeholders are written {name} and filled by render.
const (
	TemplateChartInfo      = "The {chart_name} is ideal for {use_case}. {description} Pros: {pros}. Cons: {cons}."
	TemplateRecommendation = "Based on your data type ({data_type}) and purpose ({purpose}), I recommend using a {chart_name} chart."
	TemplateVisualization  = "Use a {chart_name} for {use_case}. Best libraries: {libraries}"
	TemplateNotFound       = "I don't have specific information about that chart type. Ask about common charts like bar, line, pie, or scatter plots."

	// TemplateComparison has no synthesis path yet: comparison queries fall
	// through to TemplateNotFound.
	TemplateComparison = "Both {chart1} and {chart2} work for comparing data, but {chart1} is better for {comparison_reason}."
)

// Fixed prompts that are not templated.
const (
	EmptyQueryPrompt     = "Please ask me about chart types, recommendations, or visualization techniques."
	ClarificationPrompt  = "To recommend a chart, tell me: (1) Your data type (categorical/continuous), (2) Your purpose (comparison/trend/correlation)"
	categoryListTemplate = "Charts for {category}: {charts}"
	categoryNoneTemplate = "No charts found for category: {category}"
)

// Templates returns every named response template, including unwired ones.
func Templates() map[string]string {
	return map[string]string{
		"chart_info":       TemplateChartInfo,
		"recommendation":   TemplateRecommendation,
		"visualization":    TemplateVisualization,
		"chart_comparison": TemplateComparison,
		"not_found":        TemplateNotFound,
	}
}

// render substitutes {key} placeholders. Missing keys are left verbatim.
func render(tmpl string, values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(values)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", values[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// joinFirst joins at most n items with ", ".
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
