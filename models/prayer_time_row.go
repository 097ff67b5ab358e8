package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date form used for cache keys and query args.
const DateLayout = "2006-01-02"

// PrayerTimeRow is one zone's timetable for one calendar date.
// It is owned by the provider; the resolution core only reads it.
type PrayerTimeRow struct {
	Zone  Zone                 `json:"zone"`
	Date  string               `json:"date"`
	Times map[Prayer]TimeOfDay `json:"times"`
}

// TimeOf returns the time for a prayer, if the provider published one.
func (r *PrayerTimeRow) TimeOf(p Prayer) (TimeOfDay, bool) {
	if r == nil || r.Times == nil {
		return TimeOfDay{}, false
	}
	t, ok := r.Times[p]
	return t, ok
}

// ESolatDay matches one element in the e-Solat 'prayerTime' array.
type ESolatDay struct {
	Hijri   string `json:"hijri"`
	Date    string `json:"date"` // e.g. "19-Oct-2026"
	Day     string `json:"day"`
	Imsak   string `json:"imsak"`
	Fajr    string `json:"fajr"`
	Syuruk  string `json:"syuruk"`
	Dhuha   string `json:"dhuha"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// ESolatDateLayout is the date format e-Solat uses in 'prayerTime' entries.
const ESolatDateLayout = "02-Jan-2006"

// ESolatResponse is the top-level JSON returned by esolatApi/takwimsolat.
type ESolatResponse struct {
	PrayerTime []ESolatDay `json:"prayerTime"`
	Status     string      `json:"status"`
	ServerTime string      `json:"serverTime"`
	PeriodType string      `json:"periodType"`
	Lang       string      `json:"lang"`
	Zone       string      `json:"zone"`
	Bearing    string      `json:"bearing"`
}

// fields pairs each canonical prayer with its e-Solat value.
func (d ESolatDay) fields() map[Prayer]string {
	return map[Prayer]string{
		PrayerImsak:   d.Imsak,
		PrayerSubuh:   d.Fajr,
		PrayerSyuruk:  d.Syuruk,
		PrayerDhuha:   d.Dhuha,
		PrayerZohor:   d.Dhuhr,
		PrayerAsar:    d.Asr,
		PrayerMaghrib: d.Maghrib,
		PrayerIsyak:   d.Isha,
	}
}

// ParsedDate returns the entry's calendar date in Malaysia time.
func (d ESolatDay) ParsedDate() (time.Time, error) {
	return time.ParseInLocation(ESolatDateLayout, d.Date, MalaysiaLocation)
}

// ToRow converts the wire entry into a PrayerTimeRow. Unparseable values are
// left out of the row; an entry with no usable time at all is an error.
func (d ESolatDay) ToRow(zone Zone) (*PrayerTimeRow, error) {
	date, err := d.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("invalid e-Solat date %q: %w", d.Date, err)
	}
	row := &PrayerTimeRow{
		Zone:  zone,
		Date:  date.Format(DateLayout),
		Times: make(map[Prayer]TimeOfDay, len(AllPrayers)),
	}
	for p, raw := range d.fields() {
		t, err := ParseTimeOfDay(raw)
		if err != nil {
			continue
		}
		row.Times[p] = t
	}
	if len(row.Times) == 0 {
		return nil, fmt.Errorf("e-Solat entry for %s has no usable times", d.Date)
	}
	return row, nil
}
