package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solat-assistant/corrector"
	"solat-assistant/fuzzy"
	"solat-assistant/models"
)

func TestPrayerResolver_Synonyms(t *testing.T) {
	r := NewPrayerResolver(fuzzy.NewNoopMatcher())

	tests := []struct {
		text string
		want models.Prayer
	}{
		{"waktu solat asar gombak", models.PrayerAsar},
		{"subuh di klang esok", models.PrayerSubuh},
		{"bila fajr hari ini", models.PrayerSubuh},
		{"berapa minit lagi magreb", models.PrayerMaghrib},
		{"waktu imsak", models.PrayerImsak},
		{"pukul berapa sunrise", models.PrayerSyuruk},
		{"solat duha", models.PrayerDhuha},
		{"waktu isha di klang", models.PrayerIsyak},
		{"apa khabar", models.PrayerNone},
		{"", models.PrayerNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.text))
		})
	}
}

// "johor" doubles as a state name but is treated as an ASR mishearing of "zohor".
func TestPrayerResolver_JohorMeansZohor(t *testing.T) {
	r := NewPrayerResolver(fuzzy.NewNoopMatcher())
	c := corrector.New(fuzzy.NewNoopMatcher())
	assert.Equal(t, models.PrayerZohor, r.Resolve(c.Correct("waktu johor")))
	assert.Equal(t, models.PrayerZohor, r.Resolve(c.Correct("waktu solat di johor bahru")))
}

func TestPrayerResolver_WholeWordOnly(t *testing.T) {
	r := NewPrayerResolver(fuzzy.NewNoopMatcher())
	assert.Equal(t, models.PrayerNone, r.Resolve("jalan kasar"))
	assert.Equal(t, models.PrayerAsar, r.Resolve("asar"))
}

func TestPrayerResolver_Fuzzy(t *testing.T) {
	fz := NewPrayerResolver(fuzzy.NewRatioMatcher())
	assert.Equal(t, models.PrayerMaghrib, fz.Resolve("waktu maghrip"))
	// "magrip" scores 83 against "magrib", under the threshold.
	assert.Equal(t, models.PrayerNone, fz.Resolve("waktu magrip"))

	noop := NewPrayerResolver(fuzzy.NewNoopMatcher())
	assert.Equal(t, models.PrayerNone, noop.Resolve("waktu maghrip"))
}
