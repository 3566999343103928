package qa

import (
	"strings"
	"unicode/utf8"
)

var stopWords = map[string]bool{
	"what": true, "is": true, "the": true, "a": true, "an": true,
	"about": true, "tell": true, "me": true, "how": true, "which": true,
	"best": true, "use": true, "for": true, "should": true, "can": true,
}

// minKeywordLen is the shortest token kept as a keyword.
const minKeywordLen = 3

// ExtractKeywords lower-cases the query, splits it on whitespace and drops
// stop words and tokens shorter than three characters. Order and
// duplicates are preserved.
func ExtractKeywords(query string) []string {
	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if stopWords[w] || utf8.RuneCountInString(w) < minKeywordLen {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// IsStopWord reports whether w is dropped by ExtractKeywords regardless of length.
func IsStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}
