package resolver

import (
	"strings"

	"solat-assistant/fuzzy"
	"solat-assistant/models"
)

// ZoneAcceptThreshold is the minimum n-gram score for a fuzzy place match.
const ZoneAcceptThreshold = 86

// placeZones is scanned in order; the first substring hit wins.
var placeZones = []models.PlaceZone{
	// SGR01: Gombak and surroundings
	{Place: "gombak", Zone: "SGR01"},
	{Place: "petaling", Zone: "SGR01"},
	{Place: "shah alam", Zone: "SGR01"},
	{Place: "sepang", Zone: "SGR01"},
	{Place: "hulu langat", Zone: "SGR01"},
	{Place: "hulu selangor", Zone: "SGR01"},
	{Place: "rawang", Zone: "SGR01"},
	{Place: "kajang", Zone: "SGR01"},

	// SGR02: Kuala Selangor, Sabak Bernam
	{Place: "kuala selangor", Zone: "SGR02"},
	{Place: "sabak bernam", Zone: "SGR02"},
	{Place: "tanjong karang", Zone: "SGR02"},
	{Place: "tg karang", Zone: "SGR02"},

	// SGR03: Klang, Kuala Langat
	{Place: "klang", Zone: "SGR03"},
	{Place: "kuala langat", Zone: "SGR03"},
	{Place: "banting", Zone: "SGR03"},
	{Place: "jenjarom", Zone: "SGR03"},
}

// PlaceZones returns a copy of the place table in scan order.
func PlaceZones() []models.PlaceZone {
	out := make([]models.PlaceZone, len(placeZones))
	copy(out, placeZones)
	return out
}

// Zones returns each distinct zone of the place table, in first-seen order.
func Zones() []models.Zone {
	seen := make(map[models.Zone]bool)
	var out []models.Zone
	for _, pz := range placeZones {
		if !seen[pz.Zone] {
			seen[pz.Zone] = true
			out = append(out, pz.Zone)
		}
	}
	return out
}

// ZoneResolver maps place names in an utterance to an e-Solat zone.
type ZoneResolver struct {
	matcher fuzzy.Matcher
	places  []string
}

func NewZoneResolver(matcher fuzzy.Matcher) *ZoneResolver {
	places := make([]string, len(placeZones))
	for i, pz := range placeZones {
		places[i] = pz.Place
	}
	return &ZoneResolver{matcher: matcher, places: places}
}

// Resolve never fails: it falls back to models.DefaultZone.
func (r *ZoneResolver) Resolve(text string) models.Zone {
	for _, pz := range placeZones {
		if strings.Contains(text, pz.Place) {
			return pz.Zone
		}
	}
	if !r.matcher.Enabled() {
		return models.DefaultZone
	}

	bestIdx, bestScore := -1, 0.0
	for _, c := range ngrams(strings.Fields(text), 3, 2, 1) {
		m, ok := r.matcher.ExtractOne(c, r.places)
		if ok && m.Score > bestScore {
			bestIdx, bestScore = m.Index, m.Score
		}
	}
	if bestIdx >= 0 && bestScore >= ZoneAcceptThreshold {
		return placeZones[bestIdx].Zone
	}
	return models.DefaultZone
}

// ngrams returns the contiguous word n-grams for each size, in the order given.
func ngrams(words []string, sizes ...int) []string {
	var out []string
	for _, n := range sizes {
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Join(words[i:i+n], " "))
		}
	}
	return out
}
