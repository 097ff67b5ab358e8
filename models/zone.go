package models

// Zone is the e-Solat jurisdiction code a timetable is keyed by, e.g. "SGR01".
type Zone string

// DefaultZone is used when no place name is recognised.
const DefaultZone Zone = "SGR01"

// PlaceZone maps one lowercase place phrase to its zone.
type PlaceZone struct {
	Place string `json:"place"`
	Zone  Zone   `json:"zone"`
}
