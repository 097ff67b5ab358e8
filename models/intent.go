package models

import "time"

// DateKind tags which date matcher produced a TargetDate.
type DateKind string

const (
	DateKindNumeric   DateKind = "numeric"    // 05/01/2026, 5-1
	DateKindMonthName DateKind = "month_name" // 5 januari 2026
	DateKindWeekday   DateKind = "weekday"    // jumaat, jumaat minggu depan
	DateKindRelative  DateKind = "relative"   // esok, lusa
	DateKindAhead     DateKind = "ahead"      // minggu depan, bulan depan
	DateKindToday     DateKind = "today"
)

// TargetDate is the calendar date a query is about, with the label the
// resolver derived it from.
type TargetDate struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Kind  DateKind  `json:"kind"`
}

// Variant is the sub-question a prayer-time query asks.
type Variant string

const (
	VariantFullTimetable    Variant = "full_timetable"
	VariantPlainLookup      Variant = "plain_lookup"
	VariantMinutesRemaining Variant = "minutes_remaining"
	VariantHasStarted       Variant = "has_started"
)

// ResolvedIntent is built fresh for every utterance and consumed by the composer.
type ResolvedIntent struct {
	Text                 string     `json:"text"`
	IsPrayerQuery        bool       `json:"is_prayer_query"`
	Prayer               Prayer     `json:"prayer"`
	Zone                 Zone       `json:"zone"`
	Date                 TargetDate `json:"date"`
	AsksMinutesRemaining bool       `json:"asks_minutes_remaining"`
	AsksHasStarted       bool       `json:"asks_has_started"`
	WantsTimetable       bool       `json:"wants_timetable"`
}

// Variant picks a single sub-question from the independent flags.
// Has-started wins over minutes-remaining.
func (i ResolvedIntent) Variant() Variant {
	switch {
	case i.Prayer.IsNone() && i.WantsTimetable:
		return VariantFullTimetable
	case i.AsksHasStarted:
		return VariantHasStarted
	case i.AsksMinutesRemaining:
		return VariantMinutesRemaining
	default:
		return VariantPlainLookup
	}
}
