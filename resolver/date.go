package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"solat-assistant/models"
)

const (
	labelToday    = "hari ini"
	labelTomorrow = "esok"
	labelDayAfter = "lusa"
	nextWeek      = "minggu depan"
	nextMonth     = "bulan depan"
)

var months = map[string]time.Month{
	"januari": time.January, "februari": time.February, "mac": time.March,
	"april": time.April, "mei": time.May, "jun": time.June,
	"julai": time.July, "ogos": time.August, "september": time.September,
	"oktober": time.October, "november": time.November, "disember": time.December,
}

type weekdayName struct {
	name string
	day  time.Weekday
	re   *regexp.Regexp
}

// weekdays is checked in this order.
var weekdays = []weekdayName{
	{"isnin", time.Monday, wordPattern("isnin")},
	{"selasa", time.Tuesday, wordPattern("selasa")},
	{"rabu", time.Wednesday, wordPattern("rabu")},
	{"khamis", time.Thursday, wordPattern("khamis")},
	{"jumaat", time.Friday, wordPattern("jumaat")},
	{"sabtu", time.Saturday, wordPattern("sabtu")},
	{"ahad", time.Sunday, wordPattern("ahad")},
}

var (
	numericDate = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}))?\b`)
	monthDate   = regexp.MustCompile(`\b(\d{1,2})\s+(januari|februari|mac|april|mei|jun|julai|ogos|september|oktober|november|disember)(?:\s+(\d{4}))?\b`)
)

// dateMatcher is one parse attempt. It either produces a date or declines.
type dateMatcher struct {
	kind  models.DateKind
	match func(text string, today time.Time) (time.Time, string, bool)
}

// DateResolver turns date phrasing into a calendar date. Matchers run in
// priority order and the first one that accepts wins.
type DateResolver struct {
	matchers []dateMatcher
}

func NewDateResolver() *DateResolver {
	return &DateResolver{matchers: []dateMatcher{
		{models.DateKindNumeric, matchNumeric},
		{models.DateKindMonthName, matchMonthName},
		{models.DateKindWeekday, matchWeekday},
		{models.DateKindRelative, matchRelative},
		{models.DateKindAhead, matchAhead},
	}}
}

// Resolve always returns a date; unrecognised text resolves to today.
func (r *DateResolver) Resolve(text string, today time.Time) models.TargetDate {
	today = midnight(today)
	for _, m := range r.matchers {
		if d, label, ok := m.match(text, today); ok {
			return models.TargetDate{Date: d, Label: label, Kind: m.kind}
		}
	}
	return models.TargetDate{Date: today, Label: labelToday, Kind: models.DateKindToday}
}

func matchNumeric(text string, today time.Time) (time.Time, string, bool) {
	m := numericDate.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, "", false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	d, ok := resolveDayMonth(day, time.Month(month), m[3], today)
	if !ok {
		return time.Time{}, "", false
	}
	return d, d.Format("02-01-2006"), true
}

func matchMonthName(text string, today time.Time) (time.Time, string, bool) {
	m := monthDate.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, "", false
	}
	day, _ := strconv.Atoi(m[1])
	d, ok := resolveDayMonth(day, months[m[2]], m[3], today)
	if !ok {
		return time.Time{}, "", false
	}
	return d, d.Format(models.ESolatDateLayout), true
}

func matchWeekday(text string, today time.Time) (time.Time, string, bool) {
	for _, wd := range weekdays {
		if !wd.re.MatchString(text) {
			continue
		}
		d := nextWeekday(today, wd.day)
		if strings.Contains(text, nextWeek) {
			d = d.AddDate(0, 0, 7)
		}
		return d, wd.name, true
	}
	return time.Time{}, "", false
}

// matchRelative checks "lusa" before "esok".
func matchRelative(text string, today time.Time) (time.Time, string, bool) {
	if strings.Contains(text, labelDayAfter) {
		return today.AddDate(0, 0, 2), labelDayAfter, true
	}
	if strings.Contains(text, labelTomorrow) {
		return today.AddDate(0, 0, 1), labelTomorrow, true
	}
	return time.Time{}, "", false
}

func matchAhead(text string, today time.Time) (time.Time, string, bool) {
	if strings.Contains(text, nextWeek) {
		return today.AddDate(0, 0, 7), nextWeek, true
	}
	if strings.Contains(text, nextMonth) {
		return addMonthClamped(today), nextMonth, true
	}
	return time.Time{}, "", false
}

// resolveDayMonth builds the date for an explicit year, or rolls a yearless
// day/month forward to its next valid occurrence on or after today.
func resolveDayMonth(day int, month time.Month, year string, today time.Time) (time.Time, bool) {
	if year != "" {
		y, _ := strconv.Atoi(year)
		return validDate(y, month, day)
	}
	for y := today.Year(); y <= today.Year()+8; y++ {
		d, ok := validDate(y, month, day)
		if ok && !d.Before(today) {
			return d, true
		}
	}
	return time.Time{}, false
}

func validDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, models.MalaysiaLocation)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// nextWeekday never returns today: a same-day match moves a full week ahead.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(today.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return today.AddDate(0, 0, delta)
}

// addMonthClamped keeps the day of month, clamped to the next month's length.
func addMonthClamped(today time.Time) time.Time {
	first := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
	last := first.AddDate(0, 1, -1).Day()
	day := today.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, today.Location())
}

func midnight(t time.Time) time.Time {
	t = t.In(models.MalaysiaLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, models.MalaysiaLocation)
}
