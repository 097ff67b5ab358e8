package resolver

import (
	"strings"

	"solat-assistant/models"
)

var (
	prayerTimeTriggers = []string{"waktu solat", "waktu"}
	durationTriggers   = []string{"minit", "berapa lama", "dah masuk", "masuk belum"}
	timetableTriggers  = []string{"waktu solat", "waktu hari ini", "waktu esok", "waktu lusa"}
	minutesPhrases     = []string{"berapa minit", "minit lagi", "berapa lama"}
	startedPhrases     = []string{"dah masuk", "sudah masuk", "masuk belum"}
)

// Classification holds the independent intent flags for one utterance.
type Classification struct {
	IsPrayerQuery        bool
	AsksMinutesRemaining bool
	AsksHasStarted       bool
	WantsTimetable       bool
}

// Classify decides whether text is a prayer-time query and which
// sub-question phrasing it carries. The flags are not mutually exclusive.
func Classify(text string, prayer models.Prayer) Classification {
	return Classification{
		IsPrayerQuery: containsAny(text, prayerTimeTriggers) ||
			containsAny(text, durationTriggers) ||
			!prayer.IsNone(),
		AsksMinutesRemaining: containsAny(text, minutesPhrases),
		AsksHasStarted:       containsAny(text, startedPhrases),
		WantsTimetable:       containsAny(text, timetableTriggers),
	}
}

// IsGreeting reports whether text opens with the salam.
func IsGreeting(text string) bool {
	return strings.Contains(text, "assalamualaikum")
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
