// Package qa answers natural-language questions about chart types.
//
// The pipeline is: classify the intent, extract keywords, match a chart
// from the catalog when the intent needs one, then fill a response
// template. Every step is pure; an Engine holds only its catalog and an
// observer and can be shared across goroutines.
package qa

import (
	"strings"
	"time"

	"github.com/alexanderramin/chartwise/internal/domain"
)

// Catalog is the read-only chart source the engine consults.
type Catalog interface {
	Get(id string) (domain.Chart, bool)
	ByCategory(category string) []domain.Chart
	Recommend(dataType, purpose string) string
	All() []domain.Chart
}

// Hint is a (data type, purpose) pair inferred from a recommendation query.
type Hint struct {
	DataType string
	Purpose  string
}

// hintRules is checked in order against the raw, case-folded query.
var hintRules = []struct {
	words []string
	hint  Hint
}{
	{words: []string{"categorical", "categories"}, hint: Hint{DataType: domain.DataCategorical, Purpose: domain.PurposeComparison}},
	{words: []string{"time", "trend"}, hint: Hint{DataType: domain.DataContinuous, Purpose: domain.PurposeTrend}},
	{words: []string{"correlation"}, hint: Hint{DataType: domain.DataContinuous, Purpose: domain.PurposeCorrelation}},
}

// InferHint looks for data-type/purpose signals in a recommendation query.
func InferHint(query string) (Hint, bool) {
	lower := strings.ToLower(query)
	for _, r := range hintRules {
		for _, w := range r.words {
			if strings.Contains(lower, w) {
				return r.hint, true
			}
		}
	}
	return Hint{}, false
}

// Trace records how a query was answered.
type Trace struct {
	Query    string
	Intent   Intent
	Keywords []string
	Hint     *Hint
	ChartID  string
	Response string
	Fallback bool
}

// Engine answers chart questions against a catalog.
type Engine struct {
	catalog  Catalog
	observer Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver sets the observer notified after every answer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(catalog Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: catalog, observer: NoopObserver{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Answer returns a non-empty response for any query, including empty or
// nonsensical input.
func (e *Engine) Answer(query string) string {
	return e.Explain(query).Response
}

// Explain runs the pipeline and returns the intermediate decisions along
// with the response.
func (e *Engine) Explain(query string) Trace {
	start := time.Now()
	tr := e.explain(query)
	e.observer.ObserveAnswer(AnswerEvent{
		Intent:       tr.Intent,
		KeywordCount: len(tr.Keywords),
		ChartID:      tr.ChartID,
		Fallback:     tr.Fallback,
		Duration:     time.Since(start),
	})
	return tr
}

func (e *Engine) explain(query string) Trace {
	tr := Trace{Query: query}
	if strings.TrimSpace(query) == "" {
		tr.Intent = IntentGeneral
		tr.Response = EmptyQueryPrompt
		tr.Fallback = true
		return tr
	}

	tr.Intent = ClassifyIntent(query)
	tr.Keywords = ExtractKeywords(query)

	switch tr.Intent {
	case IntentRecommendation:
		hint, ok := InferHint(query)
		if !ok {
			tr.Response = ClarificationPrompt
			tr.Fallback = true
			return tr
		}
		tr.Hint = &hint
		tr.ChartID = e.catalog.Recommend(hint.DataType, hint.Purpose)
		tr.Response, tr.Fallback = e.recommendation(hint.DataType, hint.Purpose, tr.ChartID)
		return tr

	case IntentInformation:
		if ch, ok := MatchChart(tr.Keywords, e.catalog.All()); ok {
			tr.ChartID = ch.ID
			tr.Response = chartInfo(ch)
			return tr
		}

	case IntentVisualizationType:
		if ch, ok := MatchChart(tr.Keywords, e.catalog.All()); ok {
			tr.ChartID = ch.ID
			tr.Response = render(TemplateVisualization, map[string]string{
				"chart_name": ch.Name,
				"use_case":   ch.FirstUseCase(),
				"libraries":  strings.Join(ch.Libraries, ", "),
			})
			return tr
		}
	}

	// Comparison and general queries have no synthesis path of their own.
	tr.Response = TemplateNotFound
	tr.Fallback = true
	return tr
}

// ChartInfo describes the chart with the given id, or returns the
// not-found text.
func (e *Engine) ChartInfo(id string) string {
	ch, ok := e.catalog.Get(id)
	if !ok {
		return TemplateNotFound
	}
	return chartInfo(ch)
}

// Recommendation resolves an explicit (data type, purpose) pair through the
// catalog table. Unmapped pairs use the catalog default.
func (e *Engine) Recommendation(dataType, purpose string) string {
	resp, _ := e.recommendation(dataType, purpose, e.catalog.Recommend(dataType, purpose))
	return resp
}

// ChartsByCategory lists chart names in a category.
func (e *Engine) ChartsByCategory(category string) string {
	charts := e.catalog.ByCategory(category)
	if len(charts) == 0 {
		return render(categoryNoneTemplate, map[string]string{"category": category})
	}
	names := make([]string, 0, len(charts))
	for _, ch := range charts {
		names = append(names, ch.Name)
	}
	return render(categoryListTemplate, map[string]string{
		"category": category,
		"charts":   strings.Join(names, ", "),
	})
}

func (e *Engine) recommendation(dataType, purpose, chartID string) (string, bool) {
	ch, ok := e.catalog.Get(chartID)
	if !ok {
		return TemplateNotFound, true
	}
	return render(TemplateRecommendation, map[string]string{
		"data_type":  dataType,
		"purpose":    purpose,
		"chart_name": ch.Name,
	}), false
}

func chartInfo(ch domain.Chart) string {
	return render(TemplateChartInfo, map[string]string{
		"chart_name":  ch.Name,
		"use_case":    ch.FirstUseCase(),
		"description": ch.Description,
		"pros":        joinFirst(ch.Pros, 2),
		"cons":        joinFirst(ch.Cons, 2),
	})
}
