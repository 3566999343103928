package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/chartwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChart(id string, cat domain.Category) domain.Chart {
	return domain.Chart{
		ID:          id,
		Name:        strings.ReplaceAll(id, "_", " "),
		Category:    cat,
		Description: "desc for " + id,
		UseCases:    []string{"use"},
		Pros:        []string{"pro"},
		Cons:        []string{"con"},
		Libraries:   []string{"plotly"},
	}
}

func TestDefault_LoadsBuiltinCharts(t *testing.T) {
	c := Default()

	ids := make([]string, 0, c.Len())
	for _, ch := range c.All() {
		ids = append(ids, ch.ID)
	}
	assert.Equal(t, []string{
		"bar_chart", "line_chart", "pie_chart", "scatter_plot",
		"histogram", "box_plot", "heatmap", "bubble_chart",
	}, ids)
}

func TestDefault_EveryChartSatisfiesInvariants(t *testing.T) {
	for _, ch := range Default().All() {
		assert.NotEmpty(t, ch.Name, ch.ID)
		assert.NotEmpty(t, ch.Description, ch.ID)
		assert.NotEmpty(t, ch.UseCases, ch.ID)
		assert.NotEmpty(t, ch.Pros, ch.ID)
		assert.NotEmpty(t, ch.Cons, ch.ID)
		assert.NotEmpty(t, ch.Libraries, ch.ID)
		assert.True(t, ch.Category.IsValid(), ch.ID)
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	c := Default()

	ch, ok := c.Get("BAR_CHART")
	require.True(t, ok)
	assert.Equal(t, "Bar Chart", ch.Name)
	assert.Equal(t, domain.CategoryComparison, ch.Category)

	_, ok = c.Get("nonexistent_chart")
	assert.False(t, ok)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c := Default()

	ch, ok := c.Get("pie_chart")
	require.True(t, ok)
	ch.Pros[0] = "mutated"
	ch.Name = "mutated"

	again, _ := c.Get("pie_chart")
	assert.Equal(t, "Pie Chart", again.Name)
	assert.Equal(t, "Intuitive for part-to-whole", again.Pros[0])
}

func TestByCategory_OnlyReturnsMatchingCategory(t *testing.T) {
	c := Default()

	for _, cat := range c.Categories() {
		for _, query := range []string{string(cat), strings.ToLower(string(cat)), strings.ToUpper(string(cat))} {
			charts := c.ByCategory(query)
			require.NotEmpty(t, charts, query)
			for _, ch := range charts {
				assert.True(t, strings.EqualFold(string(ch.Category), query))
			}
		}
	}
}

func TestByCategory_Distribution(t *testing.T) {
	charts := Default().ByCategory("distribution")

	require.Len(t, charts, 2)
	assert.Equal(t, "histogram", charts[0].ID)
	assert.Equal(t, "box_plot", charts[1].ID)
}

func TestByCategory_UnknownIsEmpty(t *testing.T) {
	assert.Empty(t, Default().ByCategory("Geographic"))
}

func TestRecommend(t *testing.T) {
	c := Default()

	tests := []struct {
		dataType, purpose, want string
	}{
		{"categorical", "comparison", "bar_chart"},
		{"continuous", "trend", "line_chart"},
		{"continuous", "distribution", "histogram"},
		{"continuous", "correlation", "scatter_plot"},
		{"matrix", "pattern", "heatmap"},
		{"CONTINUOUS", "Trend", "line_chart"},
		{"unknown_type", "unknown_purpose", DefaultRecommendation},
		{"continuous", "comparison", DefaultRecommendation},
		{"", "", DefaultRecommendation},
	}
	for _, tt := range tests {
		t.Run(tt.dataType+"/"+tt.purpose, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Recommend(tt.dataType, tt.purpose))
		})
	}
}

func TestAll_StableOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, c.All(), c.All())
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	assert.Equal(t, []domain.Category{
		domain.CategoryComparison,
		domain.CategoryTrend,
		domain.CategoryComposition,
		domain.CategoryCorrelation,
		domain.CategoryDistribution,
		domain.CategoryPattern,
		domain.CategoryMultidimensional,
	}, Default().Categories())
}

func TestNew_NormalizesIDAndCategory(t *testing.T) {
	ch := validChart("Bar_Chart", "comparison")
	c, err := New([]domain.Chart{ch}, nil)
	require.NoError(t, err)

	got, ok := c.Get("bar_chart")
	require.True(t, ok)
	assert.Equal(t, "bar_chart", got.ID)
	assert.Equal(t, domain.CategoryComparison, got.Category)
}

func TestNew_RejectsMissingFields(t *testing.T) {
	partial := domain.Chart{ID: "bar_chart", Name: "Bar Chart", Category: "Sideways"}

	_, err := New([]domain.Chart{partial}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Problems))
	for _, p := range verr.Problems {
		fields = append(fields, p.Field)
	}
	assert.ElementsMatch(t, []string{"category", "description", "use_cases", "pros", "cons", "libraries"}, fields)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]domain.Chart{
		validChart("bar_chart", domain.CategoryComparison),
		validChart("BAR_CHART", domain.CategoryComparison),
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is duplicated")
}

func TestNew_RequiresDefaultRecommendation(t *testing.T) {
	_, err := New([]domain.Chart{validChart("line_chart", domain.CategoryTrend)}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default recommendation")
}

func TestNew_RejectsRuleWithUnknownChart(t *testing.T) {
	_, err := New(
		[]domain.Chart{validChart("bar_chart", domain.CategoryComparison)},
		[]domain.RecommendationRule{{DataType: "continuous", Purpose: "trend", ChartID: "line_chart"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown chart "line_chart"`)
}

func TestNew_RejectsDuplicateRules(t *testing.T) {
	_, err := New(
		[]domain.Chart{validChart("bar_chart", domain.CategoryComparison)},
		[]domain.RecommendationRule{
			{DataType: "categorical", Purpose: "comparison", ChartID: "bar_chart"},
			{DataType: "Categorical", Purpose: " Comparison", ChartID: "bar_chart"},
		},
	)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 1)
	assert.Equal(t, "recommendations[1]", verr.Problems[0].Field)
	assert.Equal(t, "duplicates recommendations[0]", verr.Problems[0].Message)
}

func TestNew_RejectsEmptyCatalog(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestMarshalParse_PreservesOrderAndRules(t *testing.T) {
	original := Default()

	data, err := Marshal(original)
	require.NoError(t, err)

	reloaded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, original.All(), reloaded.All())
	assert.Equal(t, original.Rules(), reloaded.Rules())
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("charts: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charts.yaml")
	doc := `
charts:
  - id: bar_chart
    name: Bar Chart
    category: comparison
    description: Bars
    use_cases: [Comparing]
    pros: [Simple]
    cons: [Boring]
    libraries: [plotly]
recommendations:
  - {data_type: categorical, purpose: comparison, chart: bar_chart}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "bar_chart", c.Recommend("Categorical", "Comparison"))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog file")
}
