// Package corrector repairs common speech-to-text mistakes against the
// prayer-time domain vocabulary.
package corrector

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"solat-assistant/fuzzy"
)

// AcceptThreshold is the minimum fuzzy score for snapping a token to the vocabulary.
const AcceptThreshold = 78

var disallowed = regexp.MustCompile(`[^a-z0-9\s/-]`)

// Corrector normalizes transcripts and snaps tokens to the domain vocabulary.
type Corrector struct {
	matcher fuzzy.Matcher
}

// New builds a Corrector. With a disabled matcher Correct is equivalent to Normalize.
func New(matcher fuzzy.Matcher) *Corrector {
	return &Corrector{matcher: matcher}
}

// Normalize lowercases, folds accents, strips punctuation to spaces, collapses
// whitespace and applies the correction table to whole tokens. Date
// separators '/' and '-' survive so numeric dates reach the date resolver.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	t := foldAccents(strings.ToLower(raw))
	t = disallowed.ReplaceAllString(t, " ")
	words := strings.Fields(t)
	for i, w := range words {
		words[i] = rewrite(w)
	}
	return strings.Join(words, " ")
}

// rewrite runs one token through the correction table in order. No
// correction target is itself a correction source, so a rewritten token is final.
func rewrite(token string) string {
	for _, c := range corrections {
		if token == c.from {
			token = c.to
		}
	}
	return token
}

// Correct normalizes raw and replaces every token whose best vocabulary match
// scores at least AcceptThreshold.
func (c *Corrector) Correct(raw string) string {
	words := strings.Fields(Normalize(raw))
	if !c.matcher.Enabled() {
		return strings.Join(words, " ")
	}
	for i, w := range words {
		m, ok := c.matcher.ExtractOne(w, vocabulary)
		if ok && m.Score >= AcceptThreshold {
			words[i] = m.Choice
		}
	}
	return strings.Join(words, " ")
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
