// Package resolver turns corrected utterances into a structured prayer-time
// intent: which prayer, which zone, which date and which sub-question.
//
// Every resolver is total. Unrecognised input degrades to the default zone,
// today, or no prayer; nothing here returns an error.
package resolver

import (
	"time"

	"solat-assistant/fuzzy"
	"solat-assistant/models"
)

// Resolver runs the entity resolvers and the classifier on the same text.
type Resolver struct {
	zones   *ZoneResolver
	prayers *PrayerResolver
	dates   *DateResolver
}

func New(matcher fuzzy.Matcher) *Resolver {
	return &Resolver{
		zones:   NewZoneResolver(matcher),
		prayers: NewPrayerResolver(matcher),
		dates:   NewDateResolver(),
	}
}

// Resolve builds the intent for text, with dates relative to today.
func (r *Resolver) Resolve(text string, today time.Time) models.ResolvedIntent {
	prayer := r.prayers.Resolve(text)
	c := Classify(text, prayer)
	return models.ResolvedIntent{
		Text:                 text,
		IsPrayerQuery:        c.IsPrayerQuery,
		Prayer:               prayer,
		Zone:                 r.zones.Resolve(text),
		Date:                 r.dates.Resolve(text, today),
		AsksMinutesRemaining: c.AsksMinutesRemaining,
		AsksHasStarted:       c.AsksHasStarted,
		WantsTimetable:       c.WantsTimetable,
	}
}
