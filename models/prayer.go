package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Prayer is one of the canonical daily prayer or marker events.
type Prayer string

// PrayerNone marks an utterance where no prayer was identified.
const PrayerNone Prayer = ""

const (
	PrayerImsak   Prayer = "imsak"
	PrayerSubuh   Prayer = "subuh"
	PrayerSyuruk  Prayer = "syuruk"
	PrayerDhuha   Prayer = "dhuha"
	PrayerZohor   Prayer = "zohor"
	PrayerAsar    Prayer = "asar"
	PrayerMaghrib Prayer = "maghrib"
	PrayerIsyak   Prayer = "isyak"
)

// AllPrayers lists the canonical events in chronological order within a day.
var AllPrayers = []Prayer{
	PrayerImsak,
	PrayerSubuh,
	PrayerSyuruk,
	PrayerDhuha,
	PrayerZohor,
	PrayerAsar,
	PrayerMaghrib,
	PrayerIsyak,
}

// CorePrayers are the five obligatory prayers, without the marker-only events.
var CorePrayers = []Prayer{
	PrayerSubuh,
	PrayerZohor,
	PrayerAsar,
	PrayerMaghrib,
	PrayerIsyak,
}

// titles is filled once at init; a cases.Caser holds state and is not safe
// for concurrent use.
var titles = func() map[Prayer]string {
	caser := cases.Title(language.Malay)
	m := make(map[Prayer]string, len(AllPrayers))
	for _, p := range AllPrayers {
		m[p] = caser.String(string(p))
	}
	return m
}()

// Title returns the display form used in timetable answers, e.g. "Subuh".
func (p Prayer) Title() string {
	if t, ok := titles[p]; ok {
		return t
	}
	return cases.Title(language.Malay).String(string(p))
}

// IsNone reports whether no prayer was identified.
func (p Prayer) IsNone() bool {
	return p == PrayerNone
}
