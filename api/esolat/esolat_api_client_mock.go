package esolat

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"solat-assistant/config"
	"solat-assistant/models"
	"solat-assistant/util"
)

// ESolatApiClientMock serves prayer times from the week fixture under resources/
type ESolatApiClientMock struct {
	path string
}

// NewESolatApiClientMock creates a mock reading the default week fixture
func NewESolatApiClientMock() *ESolatApiClientMock {
	return &ESolatApiClientMock{path: config.GetResourcePath(config.ESOLAT_WEEK_RESPONSE_RESOURCE)}
}

// NewESolatApiClientMockFromFile creates a mock reading the given fixture
func NewESolatApiClientMockFromFile(path string) *ESolatApiClientMock {
	return &ESolatApiClientMock{path: path}
}

// GetWeek returns the fixture as-is, stamped with the requested zone.
func (c *ESolatApiClientMock) GetWeek(ctx context.Context, zone models.Zone) (*models.ESolatResponse, error) {
	response, err := util.ReadESolatResponseFromJSON(c.path)
	if err != nil {
		log.Error().Err(err).Str("component", "esolat-mock").Msg("Could not read e-Solat week response from json")
		return nil, err
	}
	response.Zone = string(zone)
	return response, nil
}

// GetDuration returns the fixture entries falling within [start, end].
func (c *ESolatApiClientMock) GetDuration(ctx context.Context, zone models.Zone, start, end time.Time) (*models.ESolatResponse, error) {
	response, err := c.GetWeek(ctx, zone)
	if err != nil {
		return nil, err
	}
	from, to := start.In(models.MalaysiaLocation).Format(models.DateLayout), end.In(models.MalaysiaLocation).Format(models.DateLayout)
	kept := response.PrayerTime[:0]
	for _, d := range response.PrayerTime {
		date, err := d.ParsedDate()
		if err != nil {
			continue
		}
		if day := date.Format(models.DateLayout); day >= from && day <= to {
			kept = append(kept, d)
		}
	}
	response.PrayerTime = kept
	response.PeriodType = "duration"
	return response, nil
}
