package esolat

import (
	"context"
	"errors"
	"time"

	"solat-assistant/models"
)

// ErrDateNotFound is returned when a response carries no entry for the requested date.
var ErrDateNotFound = errors.New("date not found in e-Solat response")

// ESolatAPI defines the interface for interacting with the JAKIM e-Solat takwim API
type ESolatAPI interface {
	GetWeek(ctx context.Context, zone models.Zone) (*models.ESolatResponse, error)
	GetDuration(ctx context.Context, zone models.Zone, start, end time.Time) (*models.ESolatResponse, error)
}

// FindDay returns the entry for date's calendar day.
func FindDay(resp *models.ESolatResponse, date time.Time) (models.ESolatDay, error) {
	if resp == nil {
		return models.ESolatDay{}, ErrDateNotFound
	}
	want := date.In(models.MalaysiaLocation).Format(models.ESolatDateLayout)
	for _, d := range resp.PrayerTime {
		if d.Date == want {
			return d, nil
		}
	}
	return models.ESolatDay{}, ErrDateNotFound
}

var (
	_ ESolatAPI = (*ESolatApiClient)(nil)
	_ ESolatAPI = (*ESolatApiClientMock)(nil)
)
