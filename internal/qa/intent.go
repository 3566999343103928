package qa

import "strings"

// Intent is the classified purpose of a query.
type Intent string

const (
	IntentRecommendation    Intent = "recommendation"
	IntentComparison        Intent = "comparison"
	IntentInformation       Intent = "information"
	IntentVisualizationType Intent = "visualization_type"
	IntentGeneral           Intent = "general"
)

// IntentRule pairs an intent with the substrings that select it.
type IntentRule struct {
	Intent   Intent
	Patterns []string
}

// intentRules is evaluated top to bottom; the first rule with a matching
// pattern wins. Recommendation and comparison must precede information,
// which would otherwise absorb "what chart should I use" style queries.
var intentRules = []IntentRule{
	{Intent: IntentRecommendation, Patterns: []string{"recommend", "suggest", "best", "which", "should"}},
	{Intent: IntentComparison, Patterns: []string{"compare", "difference", "vs", "versus", "better"}},
	{Intent: IntentInformation, Patterns: []string{"what", "how", "tell", "info", "about"}},
	{Intent: IntentVisualizationType, Patterns: []string{"visualize", "show", "display", "represent", "plot"}},
}

// IntentRules returns a copy of the ordered classification table.
func IntentRules() []IntentRule {
	out := make([]IntentRule, len(intentRules))
	for i, r := range intentRules {
		out[i] = IntentRule{Intent: r.Intent, Patterns: append([]string(nil), r.Patterns...)}
	}
	return out
}

// Matches reports whether the case-folded query contains any pattern.
func (r IntentRule) Matches(lowerQuery string) bool {
	for _, p := range r.Patterns {
		if strings.Contains(lowerQuery, p) {
			return true
		}
	}
	return false
}

// ClassifyIntent returns the first intent whose rule matches the query,
// or IntentGeneral. Patterns are plain substrings, so "show" also matches
// "showing".
func ClassifyIntent(query string) Intent {
	lower := strings.ToLower(query)
	for _, r := range intentRules {
		if r.Matches(lower) {
			return r.Intent
		}
	}
	return IntentGeneral
}
