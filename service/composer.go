package services

import (
	"fmt"
	"strings"
	"time"

	"solat-assistant/models"
	"solat-assistant/util"
)

const (
	MsgGreeting     = "Waalaikumsalam."
	MsgUnavailable  = "Maaf, saya tak dapat capai data waktu solat sekarang. Cuba lagi sekejap ya."
	MsgClarify      = "Nak semak waktu solat yang mana? Subuh, zohor, asar, maghrib atau isyak?"
	MsgLLMUnreached = "Maaf, saya tak dapat hubungi pembantu AI sekarang. Cuba lagi sekejap ya."
)

// Compose selects the reply for a resolved prayer-time query. row is nil when
// the provider had nothing for the zone and date. Exactly one branch answers.
func Compose(intent models.ResolvedIntent, row *models.PrayerTimeRow, now time.Time) string {
	if row == nil {
		return MsgUnavailable
	}

	zone := intent.Zone
	label := dayLabel(intent.Date, now)

	if intent.Variant() == models.VariantFullTimetable {
		return composeTimetable(row, zone, label)
	}

	if intent.Prayer.IsNone() {
		return MsgClarify
	}

	tod, ok := row.TimeOf(intent.Prayer)
	if !ok {
		return MsgUnavailable
	}
	p, hhmm := string(intent.Prayer), tod.HHMM()

	// Minutes only make sense for today.
	if !util.SameDay(intent.Date.Date, now) {
		return fmt.Sprintf("Waktu solat %s %s untuk zon %s ialah %s.", p, label, zone, hhmm)
	}

	mins := util.MinutesUntil(tod, now)

	switch intent.Variant() {
	case models.VariantHasStarted:
		if mins <= 0 {
			return fmt.Sprintf("Ya, waktu %s dah masuk untuk zon %s (%s).", p, zone, hhmm)
		}
		return fmt.Sprintf("Belum. Waktu %s untuk zon %s pukul %s, lagi lebih kurang %d minit.", p, zone, hhmm, mins)
	case models.VariantMinutesRemaining:
		switch {
		case mins > 0:
			return fmt.Sprintf("Waktu %s untuk zon %s pukul %s. Lagi lebih kurang %d minit.", p, zone, hhmm, mins)
		case mins == 0:
			return fmt.Sprintf("Sekarang dah masuk waktu %s untuk zon %s (%s).", p, zone, hhmm)
		default:
			return fmt.Sprintf("Waktu %s untuk zon %s pukul %s. Waktu itu dah lepas hari ini.", p, zone, hhmm)
		}
	default:
		return fmt.Sprintf("Waktu solat %s %s untuk zon %s ialah %s.", p, label, zone, hhmm)
	}
}

func composeTimetable(row *models.PrayerTimeRow, zone models.Zone, label string) string {
	parts := make([]string, 0, len(models.CorePrayers))
	for _, p := range models.CorePrayers {
		if tod, ok := row.TimeOf(p); ok {
			parts = append(parts, p.Title()+" "+tod.HHMM())
		}
	}
	if len(parts) == 0 {
		return MsgUnavailable
	}
	return fmt.Sprintf("Waktu solat %s zon %s: %s.", label, zone, strings.Join(parts, ", "))
}

// dayLabel names the target day relative to now. Dates beyond the day after
// tomorrow keep the label the date resolver produced.
func dayLabel(target models.TargetDate, now time.Time) string {
	switch util.DaysFrom(now, target.Date) {
	case 0:
		return "hari ini"
	case 1:
		return "esok"
	case 2:
		return "lusa"
	}
	if target.Label != "" {
		return target.Label
	}
	return target.Date.In(models.MalaysiaLocation).Format(models.DateLayout)
}
