package domain

import "strings"

// Chart describes a single chart type in the catalog.
type Chart struct {
	ID          string
	Name        string
	Category    Category
	Description string
	UseCases    []string
	Pros        []string
	Cons        []string
	DataTypes   []string
	Examples    string
	Libraries   []string
}

// Clone returns a deep copy so catalog-owned slices never leak to callers.
func (c Chart) Clone() Chart {
	c.UseCases = cloneStrings(c.UseCases)
	c.Pros = cloneStrings(c.Pros)
	c.Cons = cloneStrings(c.Cons)
	c.DataTypes = cloneStrings(c.DataTypes)
	c.Libraries = cloneStrings(c.Libraries)
	return c
}

// FirstUseCase returns the primary use case, or "" for a partial record.
func (c Chart) FirstUseCase() string {
	if len(c.UseCases) == 0 {
		return ""
	}
	return c.UseCases[0]
}

// NormalizedID returns the id with separators stripped, as used for
// keyword containment checks ("bar_chart" -> "barchart").
func (c Chart) NormalizedID() string {
	return strings.ReplaceAll(strings.ToLower(c.ID), "_", "")
}

// RecommendationRule maps a (data type, purpose) pair to a chart id.
type RecommendationRule struct {
	DataType string
	Purpose  string
	ChartID  string
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
