// Package catalog holds the read-only collection of chart metadata and the
// fixed (data type, purpose) recommendation table.
//
// A Catalog is immutable once New returns: every accessor hands out copies,
// so a single instance can be shared by concurrent readers without locking.
package catalog

import (
	"strings"

	"github.com/alexanderramin/chartwise/internal/domain"
)

// DefaultRecommendation is returned by Recommend when a (data type, purpose)
// pair has no entry in the recommendation table.
const DefaultRecommendation = "bar_chart"

type ruleKey struct {
	dataType string
	purpose  string
}

// Catalog is an ordered, immutable set of charts.
type Catalog struct {
	charts []domain.Chart
	byID   map[string]int
	rules  []domain.RecommendationRule
	lookup map[ruleKey]string
}

// New validates the given charts and recommendation rules and builds a
// Catalog. Chart order is preserved and defines iteration order. Ids are
// lower-cased and categories are normalized to their canonical spelling.
func New(charts []domain.Chart, rules []domain.RecommendationRule) (*Catalog, error) {
	normalized := make([]domain.Chart, len(charts))
	for i, ch := range charts {
		ch = ch.Clone()
		ch.ID = strings.ToLower(strings.TrimSpace(ch.ID))
		if cat, ok := domain.ParseCategory(string(ch.Category)); ok {
			ch.Category = cat
		}
		normalized[i] = ch
	}

	if err := validate(normalized, rules); err != nil {
		return nil, err
	}

	c := &Catalog{
		charts: normalized,
		byID:   make(map[string]int, len(normalized)),
		rules:  make([]domain.RecommendationRule, 0, len(rules)),
		lookup: make(map[ruleKey]string, len(rules)),
	}
	for i, ch := range normalized {
		c.byID[ch.ID] = i
	}
	for _, r := range rules {
		r.ChartID = strings.ToLower(strings.TrimSpace(r.ChartID))
		key := ruleKey{dataType: foldKey(r.DataType), purpose: foldKey(r.Purpose)}
		c.lookup[key] = r.ChartID
		c.rules = append(c.rules, r)
	}
	return c, nil
}

// Get returns the chart with the given id, ignoring case.
func (c *Catalog) Get(id string) (domain.Chart, bool) {
	i, ok := c.byID[foldKey(id)]
	if !ok {
		return domain.Chart{}, false
	}
	return c.charts[i].Clone(), true
}

// ByCategory returns the charts whose category equals category, ignoring
// case, in catalog order. Unknown categories yield an empty result.
func (c *Catalog) ByCategory(category string) []domain.Chart {
	want := strings.TrimSpace(category)
	var out []domain.Chart
	for _, ch := range c.charts {
		if strings.EqualFold(string(ch.Category), want) {
			out = append(out, ch.Clone())
		}
	}
	return out
}

// Recommend maps a (data type, purpose) pair to a chart id. Matching is
// case-insensitive. Unmapped pairs return DefaultRecommendation.
func (c *Catalog) Recommend(dataType, purpose string) string {
	if id, ok := c.lookup[ruleKey{dataType: foldKey(dataType), purpose: foldKey(purpose)}]; ok {
		return id
	}
	return DefaultRecommendation
}

// All returns every chart in catalog order. The order is stable across calls.
func (c *Catalog) All() []domain.Chart {
	out := make([]domain.Chart, len(c.charts))
	for i, ch := range c.charts {
		out[i] = ch.Clone()
	}
	return out
}

// Categories returns the distinct categories in first-seen catalog order.
func (c *Catalog) Categories() []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, ch := range c.charts {
		if seen[ch.Category] {
			continue
		}
		seen[ch.Category] = true
		out = append(out, ch.Category)
	}
	return out
}

// Rules returns the recommendation table in declaration order.
func (c *Catalog) Rules() []domain.RecommendationRule {
	out := make([]domain.RecommendationRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of charts.
func (c *Catalog) Len() int {
	return len(c.charts)
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
