package testutil

import (
	"strings"
	"testing"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/domain"
)

// Chart options
type ChartOption func(*domain.Chart)

func WithCategory(c domain.Category) ChartOption {
	return func(ch *domain.Chart) {
		ch.Category = c
	}
}

func WithName(name string) ChartOption {
	return func(ch *domain.Chart) {
		ch.Name = name
	}
}

func WithUseCases(uc ...string) ChartOption {
	return func(ch *domain.Chart) {
		ch.UseCases = uc
	}
}

func WithLibraries(libs ...string) ChartOption {
	return func(ch *domain.Chart) {
		ch.Libraries = libs
	}
}

// NewTestChart returns a chart that satisfies every catalog invariant.
// The display name is derived from the id ("area_chart" -> "Area Chart").
func NewTestChart(id string, opts ...ChartOption) domain.Chart {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	ch := domain.Chart{
		ID:          id,
		Name:        strings.Join(words, " "),
		Category:    domain.CategoryComparison,
		Description: "Test chart " + id,
		UseCases:    []string{"Testing " + id},
		Pros:        []string{"Fast", "Simple"},
		Cons:        []string{"Synthetic"},
		DataTypes:   []string{"Numerical"},
		Examples:    "Unit tests",
		Libraries:   []string{"plotly"},
	}
	for _, opt := range opts {
		opt(&ch)
	}
	return ch
}

// NewTestCatalog builds a validated catalog from the given charts. A
// bar_chart is prepended when missing so the default recommendation resolves.
func NewTestCatalog(t *testing.T, charts ...domain.Chart) *catalog.Catalog {
	t.Helper()
	all := charts
	hasDefault := false
	for _, ch := range charts {
		if ch.ID == catalog.DefaultRecommendation {
			hasDefault = true
		}
	}
	if !hasDefault {
		all = append([]domain.Chart{NewTestChart(catalog.DefaultRecommendation)}, charts...)
	}
	c, err := catalog.New(all, nil)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}
