package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"Can you recommend a chart", IntentRecommendation},
		{"What chart should I use for sales data", IntentRecommendation},
		{"which is better, bar or line", IntentRecommendation},
		{"Compare line chart with bar chart", IntentComparison},
		{"bar vs line", IntentComparison},
		{"difference between pie and bar", IntentComparison},
		{"Tell me about scatter plots", IntentInformation},
		{"What is a histogram", IntentInformation},
		{"display histogram", IntentVisualizationType},
		{"Plot the sales", IntentVisualizationType},
		{"Display a pie", IntentVisualizationType},
		{"xyz abc def", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.query))
		})
	}
}

func TestClassifyIntent_CaseInsensitive(t *testing.T) {
	assert.Equal(t, ClassifyIntent("compare bar and line"), ClassifyIntent("COMPARE BAR AND LINE"))
}

func TestClassifyIntent_PriorityOrder(t *testing.T) {
	// Every later rule's keywords lose to an earlier rule's keyword.
	assert.Equal(t, IntentRecommendation, ClassifyIntent("suggest and compare"))
	assert.Equal(t, IntentComparison, ClassifyIntent("tell me the difference"))
	assert.Equal(t, IntentInformation, ClassifyIntent("how do I display this"))
}

func TestClassifyIntent_SubstringPatterns(t *testing.T) {
	// "show" contains "how", so the information rule claims it first.
	assert.Equal(t, IntentInformation, ClassifyIntent("show trends"))
	assert.Equal(t, IntentVisualizationType, ClassifyIntent("visualize trends"))
}

func TestIntentRules_Order(t *testing.T) {
	rules := IntentRules()
	require.Len(t, rules, 4)
	assert.Equal(t, IntentRecommendation, rules[0].Intent)
	assert.Equal(t, IntentComparison, rules[1].Intent)
	assert.Equal(t, IntentInformation, rules[2].Intent)
	assert.Equal(t, IntentVisualizationType, rules[3].Intent)

	// Returned table is a copy.
	rules[0].Patterns[0] = "mutated"
	assert.Equal(t, "recommend", IntentRules()[0].Patterns[0])
}
