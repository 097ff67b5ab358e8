package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solat-assistant/corrector"
	"solat-assistant/fuzzy"
	"solat-assistant/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		prayer  models.Prayer
		want    Classification
		variant models.Variant
	}{
		{
			name:    "plain lookup",
			text:    "waktu solat asar gombak",
			prayer:  models.PrayerAsar,
			want:    Classification{IsPrayerQuery: true, WantsTimetable: true},
			variant: models.VariantPlainLookup,
		},
		{
			name:    "small talk",
			text:    "apa khabar",
			prayer:  models.PrayerNone,
			want:    Classification{},
			variant: models.VariantPlainLookup,
		},
		{
			name:    "prayer only",
			text:    "maghrib",
			prayer:  models.PrayerMaghrib,
			want:    Classification{IsPrayerQuery: true},
			variant: models.VariantPlainLookup,
		},
		{
			name:    "minutes remaining",
			text:    "berapa minit lagi maghrib",
			prayer:  models.PrayerMaghrib,
			want:    Classification{IsPrayerQuery: true, AsksMinutesRemaining: true},
			variant: models.VariantMinutesRemaining,
		},
		{
			name:    "has started",
			text:    "asar dah masuk ke",
			prayer:  models.PrayerAsar,
			want:    Classification{IsPrayerQuery: true, AsksHasStarted: true},
			variant: models.VariantHasStarted,
		},
		{
			name:    "has started wins over minutes",
			text:    "asar masuk belum berapa lama lagi",
			prayer:  models.PrayerAsar,
			want:    Classification{IsPrayerQuery: true, AsksMinutesRemaining: true, AsksHasStarted: true},
			variant: models.VariantHasStarted,
		},
		{
			name:    "full timetable",
			text:    "waktu solat esok",
			prayer:  models.PrayerNone,
			want:    Classification{IsPrayerQuery: true, WantsTimetable: true},
			variant: models.VariantFullTimetable,
		},
		{
			name:    "duration phrasing without prayer",
			text:    "berapa lama lagi",
			prayer:  models.PrayerNone,
			want:    Classification{IsPrayerQuery: true, AsksMinutesRemaining: true},
			variant: models.VariantMinutesRemaining,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tt.prayer)
			assert.Equal(t, tt.want, got)

			intent := models.ResolvedIntent{
				Prayer:               tt.prayer,
				AsksMinutesRemaining: got.AsksMinutesRemaining,
				AsksHasStarted:       got.AsksHasStarted,
				WantsTimetable:       got.WantsTimetable,
			}
			assert.Equal(t, tt.variant, intent.Variant())
		})
	}
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("assalamualaikum"))
	assert.True(t, IsGreeting("assalamualaikum waktu asar"))
	assert.False(t, IsGreeting("waktu asar"))
}

func TestResolver_Resolve(t *testing.T) {
	r := New(fuzzy.NewRatioMatcher())

	got := r.Resolve("waktu solat asar gombak", monday)
	assert.True(t, got.IsPrayerQuery)
	assert.Equal(t, models.PrayerAsar, got.Prayer)
	assert.Equal(t, models.Zone("SGR01"), got.Zone)
	assert.True(t, day(2026, 10, 19).Equal(got.Date.Date))
	assert.Equal(t, "hari ini", got.Date.Label)
	assert.Equal(t, models.VariantPlainLookup, got.Variant())

	got = r.Resolve("subuh di klang esok", monday)
	require.True(t, got.IsPrayerQuery)
	assert.Equal(t, models.PrayerSubuh, got.Prayer)
	assert.Equal(t, models.Zone("SGR03"), got.Zone)
	assert.True(t, day(2026, 10, 20).Equal(got.Date.Date))
	assert.Equal(t, "esok", got.Date.Label)

	got = r.Resolve("apa khabar", monday)
	assert.False(t, got.IsPrayerQuery)
	assert.Equal(t, models.PrayerNone, got.Prayer)
	assert.Equal(t, models.DefaultZone, got.Zone)
}

func TestResolver_CorrectedTextWithoutFuzzy(t *testing.T) {
	c := corrector.New(fuzzy.NewNoopMatcher())
	r := New(fuzzy.NewNoopMatcher())

	got := r.Resolve(c.Correct("waktu solat asar gombak"), monday)
	require.True(t, got.IsPrayerQuery)
	assert.Equal(t, models.PrayerAsar, got.Prayer)
	assert.Equal(t, models.Zone("SGR01"), got.Zone)

	got = r.Resolve(c.Correct("subuh hari selasa"), monday)
	require.True(t, got.IsPrayerQuery)
	assert.Equal(t, models.PrayerSubuh, got.Prayer)
	assert.True(t, day(2026, 10, 20).Equal(got.Date.Date))
	assert.Equal(t, "selasa", got.Date.Label)
	assert.Equal(t, models.DateKindWeekday, got.Date.Kind)
}
