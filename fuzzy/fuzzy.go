// Package fuzzy scores approximate string matches against closed vocabularies.
package fuzzy

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Match is the best-scoring choice for a query.
type Match struct {
	Choice string
	Index  int
	Score  float64 // 0-100
}

// Matcher is the fuzzy-matching capability handed to the resolvers.
type Matcher interface {
	// Enabled reports whether fuzzy fallbacks should run at all.
	Enabled() bool
	// ExtractOne returns the highest-scoring choice. Ties go to the earliest choice.
	ExtractOne(query string, choices []string) (Match, bool)
}

// RatioMatcher scores with the normalized indel similarity: 2*LCS/(len(a)+len(b))*100.
type RatioMatcher struct{}

// NewRatioMatcher returns the edit-distance backed matcher.
func NewRatioMatcher() *RatioMatcher {
	return &RatioMatcher{}
}

func (m *RatioMatcher) Enabled() bool { return true }

func (m *RatioMatcher) ExtractOne(query string, choices []string) (Match, bool) {
	best := Match{Index: -1}
	for i, c := range choices {
		score := Ratio(query, c)
		if best.Index < 0 || score > best.Score {
			best = Match{Choice: c, Index: i, Score: score}
		}
	}
	return best, best.Index >= 0
}

// Ratio is the 0-100 similarity of two strings.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	return float64(2*edlib.LCS(a, b)) * 100 / float64(total)
}

// NoopMatcher is selected when fuzzy matching is switched off; it never matches.
type NoopMatcher struct{}

// NewNoopMatcher returns the disabled matcher.
func NewNoopMatcher() *NoopMatcher {
	return &NoopMatcher{}
}

func (NoopMatcher) Enabled() bool { return false }

func (NoopMatcher) ExtractOne(string, []string) (Match, bool) { return Match{Index: -1}, false }

// New selects the matcher for the configured capability.
func New(enabled bool) Matcher {
	if enabled {
		return NewRatioMatcher()
	}
	return NewNoopMatcher()
}
