package qa

import (
	"strings"

	"github.com/alexanderramin/chartwise/internal/domain"
)

// MatchChart returns the first chart referenced by a keyword. Keywords are
// tried in order and, for each keyword, charts in catalog order; a chart
// matches when its separator-free id or its lower-cased name contains the
// keyword.
func MatchChart(keywords []string, charts []domain.Chart) (domain.Chart, bool) {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		for _, ch := range charts {
			if strings.Contains(ch.NormalizedID(), kw) || strings.Contains(strings.ToLower(ch.Name), kw) {
				return ch, true
			}
		}
	}
	return domain.Chart{}, false
}
