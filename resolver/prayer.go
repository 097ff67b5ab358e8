package resolver

import (
	"regexp"

	"solat-assistant/fuzzy"
	"solat-assistant/models"
)

// PrayerAcceptThreshold is the minimum word score for a fuzzy prayer match.
const PrayerAcceptThreshold = 85

type prayerSynonyms struct {
	prayer   models.Prayer
	spelling []string
}

// synonyms is checked in this order against corrected text, so spellings the
// corrector already rewrites ("asa", "johor") are not listed.
var synonyms = []prayerSynonyms{
	{models.PrayerImsak, []string{"imsak"}},
	{models.PrayerSubuh, []string{"subuh", "fajr"}},
	{models.PrayerSyuruk, []string{"syuruk", "sunrise"}},
	{models.PrayerDhuha, []string{"dhuha", "duha"}},
	{models.PrayerZohor, []string{"zohor", "zuhur", "dzuhur", "dhuhr"}},
	{models.PrayerAsar, []string{"asar", "asr"}},
	{models.PrayerMaghrib, []string{"maghrib", "magrib", "magreb"}},
	{models.PrayerIsyak, []string{"isyak", "isyah", "isha"}},
}

var alphaWords = regexp.MustCompile(`[a-z]+`)

type synonymPattern struct {
	prayer models.Prayer
	re     *regexp.Regexp
}

// PrayerResolver identifies which canonical prayer an utterance is about.
type PrayerResolver struct {
	matcher   fuzzy.Matcher
	patterns  []synonymPattern
	flat      []string
	flatOwner []models.Prayer
}

func NewPrayerResolver(matcher fuzzy.Matcher) *PrayerResolver {
	r := &PrayerResolver{matcher: matcher}
	for _, s := range synonyms {
		for _, sp := range s.spelling {
			r.patterns = append(r.patterns, synonymPattern{prayer: s.prayer, re: wordPattern(sp)})
			r.flat = append(r.flat, sp)
			r.flatOwner = append(r.flatOwner, s.prayer)
		}
	}
	return r
}

// Resolve returns models.PrayerNone when nothing matches.
func (r *PrayerResolver) Resolve(text string) models.Prayer {
	for _, p := range r.patterns {
		if p.re.MatchString(text) {
			return p.prayer
		}
	}
	if !r.matcher.Enabled() {
		return models.PrayerNone
	}
	for _, w := range alphaWords.FindAllString(text, -1) {
		m, ok := r.matcher.ExtractOne(w, r.flat)
		if ok && m.Score >= PrayerAcceptThreshold {
			return r.flatOwner[m.Index]
		}
	}
	return models.PrayerNone
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}
