package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solat-assistant/fuzzy"
	"solat-assistant/models"
)

func TestZoneResolver_ExactPlace(t *testing.T) {
	tests := []struct {
		text string
		want models.Zone
	}{
		{"waktu solat asar gombak", "SGR01"},
		{"subuh di klang esok", "SGR03"},
		{"waktu maghrib kuala selangor", "SGR02"},
		{"waktu isyak kuala langat", "SGR03"},
		{"zohor di tg karang", "SGR02"},
		{"asar shah alam", "SGR01"},
	}
	// Exact place names resolve the same with or without fuzzy matching.
	for _, matcher := range []fuzzy.Matcher{fuzzy.NewRatioMatcher(), fuzzy.NewNoopMatcher()} {
		r := NewZoneResolver(matcher)
		for _, tt := range tests {
			assert.Equal(t, tt.want, r.Resolve(tt.text), "text %q fuzzy=%v", tt.text, matcher.Enabled())
		}
	}
}

func TestZoneResolver_EveryPlaceMapsToItsZone(t *testing.T) {
	r := NewZoneResolver(fuzzy.NewNoopMatcher())
	for _, pz := range PlaceZones() {
		assert.Equal(t, pz.Zone, r.Resolve("waktu asar "+pz.Place), pz.Place)
	}
}

func TestZoneResolver_Fuzzy(t *testing.T) {
	r := NewZoneResolver(fuzzy.NewRatioMatcher())

	assert.Equal(t, models.Zone("SGR02"), r.Resolve("waktu kuala selangr"))
	assert.Equal(t, models.Zone("SGR03"), r.Resolve("waktu asar jenjarum"))
	// "banteng" scores just under the threshold against "banting".
	assert.Equal(t, models.DefaultZone, r.Resolve("waktu asar banteng"))
}

func TestZoneResolver_DefaultZone(t *testing.T) {
	noop := NewZoneResolver(fuzzy.NewNoopMatcher())
	assert.Equal(t, models.DefaultZone, noop.Resolve("waktu kuala selangr"))
	assert.Equal(t, models.DefaultZone, noop.Resolve("waktu asar"))
	assert.Equal(t, models.DefaultZone, noop.Resolve(""))

	// "johor" is not a Selangor place even though it reads as a prayer.
	fz := NewZoneResolver(fuzzy.NewRatioMatcher())
	assert.Equal(t, models.DefaultZone, fz.Resolve("waktu johor"))
}

func TestNgrams(t *testing.T) {
	got := ngrams([]string{"a", "b", "c"}, 3, 2, 1)
	assert.Equal(t, []string{"a b c", "a b", "b c", "a", "b", "c"}, got)
	assert.Empty(t, ngrams(nil, 3, 2, 1))
}

func TestZones(t *testing.T) {
	assert.Equal(t, []models.Zone{"SGR01", "SGR02", "SGR03"}, Zones())
}
