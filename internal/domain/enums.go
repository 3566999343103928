package domain

import "strings"

type Category string

const (
	CategoryComparison       Category = "Comparison"
	CategoryTrend            Category = "Trend"
	CategoryComposition      Category = "Composition"
	CategoryCorrelation      Category = "Correlation"
	CategoryDistribution     Category = "Distribution"
	CategoryPattern          Category = "Pattern"
	CategoryMultidimensional Category = "Multidimensional"
)

// Categories is the canonical, ordered set of accepted chart categories.
var Categories = []Category{
	CategoryComparison,
	CategoryTrend,
	CategoryComposition,
	CategoryCorrelation,
	CategoryDistribution,
	CategoryPattern,
	CategoryMultidimensional,
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is one of the canonical categories.
func (c Category) IsValid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// Data types and purposes understood by the recommendation table.
const (
	DataCategorical = "categorical"
	DataContinuous  = "continuous"
	DataMatrix      = "matrix"

	PurposeComparison   = "comparison"
	PurposeTrend        = "trend"
	PurposeDistribution = "distribution"
	PurposeCorrelation  = "correlation"
	PurposePattern      = "pattern"
)

// DataTypes lists the data types offered by the recommendation wizard.
var DataTypes = []string{DataCategorical, DataContinuous, DataMatrix}

// Purposes lists the purposes offered by the recommendation wizard.
var Purposes = []string{PurposeComparison, PurposeTrend, PurposeDistribution, PurposeCorrelation, PurposePattern}
