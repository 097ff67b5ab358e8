package util

import (
	"math"
	"time"

	"solat-assistant/models"
)

// MinutesUntil returns the signed whole minutes from now until tod on now's
// calendar date in Malaysia time. Negative means the time has passed today.
func MinutesUntil(tod models.TimeOfDay, now time.Time) int {
	now = now.In(models.MalaysiaLocation)
	target := tod.On(now)
	return int(math.Floor(target.Sub(now).Seconds() / 60))
}

// SameDay reports whether a and b fall on the same Malaysian calendar date.
func SameDay(a, b time.Time) bool {
	a, b = a.In(models.MalaysiaLocation), b.In(models.MalaysiaLocation)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysFrom returns the number of calendar days from a to b in Malaysia time.
func DaysFrom(a, b time.Time) int {
	a, b = a.In(models.MalaysiaLocation), b.In(models.MalaysiaLocation)
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
