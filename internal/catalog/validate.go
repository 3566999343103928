package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/chartwise/internal/domain"
)

// ErrInvalidCatalog is matched by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// FieldError describes one invariant violation.
type FieldError struct {
	ChartID string `json:"chart_id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every invariant violation found while building
// a catalog, so a bad YAML file is reported in one pass.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.ChartID != "" {
			parts = append(parts, fmt.Sprintf("%s.%s: %s", p.ChartID, p.Field, p.Message))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Field, p.Message))
		}
	}
	return fmt.Sprintf("%s: %s", ErrInvalidCatalog, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidCatalog
}

func validate(charts []domain.Chart, rules []domain.RecommendationRule) error {
	var problems []FieldError
	add := func(id, field, msg string) {
		problems = append(problems, FieldError{ChartID: id, Field: field, Message: msg})
	}

	if len(charts) == 0 {
		add("", "charts", "at least one chart is required")
	}

	seen := make(map[string]bool, len(charts))
	for i, ch := range charts {
		id := ch.ID
		if id == "" {
			id = fmt.Sprintf("charts[%d]", i)
			add(id, "id", "is required")
		} else if seen[id] {
			add(id, "id", "is duplicated")
		}
		seen[ch.ID] = true

		if strings.TrimSpace(ch.Name) == "" {
			add(id, "name", "is required")
		}
		if !ch.Category.IsValid() {
			add(id, "category", fmt.Sprintf("%q is not a known category", ch.Category))
		}
		if strings.TrimSpace(ch.Description) == "" {
			add(id, "description", "is required")
		}
		if len(ch.UseCases) == 0 {
			add(id, "use_cases", "must not be empty")
		}
		if len(ch.Pros) == 0 {
			add(id, "pros", "must not be empty")
		}
		if len(ch.Cons) == 0 {
			add(id, "cons", "must not be empty")
		}
		if len(ch.Libraries) == 0 {
			add(id, "libraries", "must not be empty")
		}
	}

	if !seen[DefaultRecommendation] && len(charts) > 0 {
		add("", "charts", fmt.Sprintf("default recommendation %q is missing", DefaultRecommendation))
	}

	firstRule := make(map[ruleKey]int, len(rules))
	for i, r := range rules {
		field := fmt.Sprintf("recommendations[%d]", i)
		if strings.TrimSpace(r.DataType) == "" || strings.TrimSpace(r.Purpose) == "" {
			add("", field, "data_type and purpose are required")
		} else {
			key := ruleKey{dataType: foldKey(r.DataType), purpose: foldKey(r.Purpose)}
			if j, dup := firstRule[key]; dup {
				add("", field, fmt.Sprintf("duplicates recommendations[%d]", j))
			} else {
				firstRule[key] = i
			}
		}
		target := strings.ToLower(strings.TrimSpace(r.ChartID))
		if !seen[target] {
			add("", field, fmt.Sprintf("unknown chart %q", r.ChartID))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
