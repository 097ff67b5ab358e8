package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"solat-assistant/api/esolat"
	"solat-assistant/dao/redis"
	"solat-assistant/logger"
	"solat-assistant/models"
)

// PrayerTimeProvider returns the row for a zone and date, or an error when
// the row is absent, unreachable or malformed.
type PrayerTimeProvider interface {
	GetPrayerTimes(ctx context.Context, zone models.Zone, date time.Time) (*models.PrayerTimeRow, error)
}

// PrayerTimeService serves rows from the Redis cache, falling back to e-Solat.
type PrayerTimeService struct {
	prayerTimeDao *redis.RedisPrayerTimeDAO
	esolatApi     esolat.ESolatAPI
	log           zerolog.Logger
}

// NewPrayerTimeService constructs a new PrayerTimeService. prayerTimeDao may
// be nil, in which case every lookup goes to e-Solat.
func NewPrayerTimeService(
	prayerTimeDao *redis.RedisPrayerTimeDAO,
	esolatApi esolat.ESolatAPI) *PrayerTimeService {

	return &PrayerTimeService{
		prayerTimeDao: prayerTimeDao,
		esolatApi:     esolatApi,
		log:           logger.Component("PrayerTimeService"),
	}
}

// GetPrayerTimes looks the row up in the cache, then in e-Solat's week
// window, then through a single-day duration query.
func (s *PrayerTimeService) GetPrayerTimes(ctx context.Context, zone models.Zone, date time.Time) (*models.PrayerTimeRow, error) {
	date = date.In(models.MalaysiaLocation)

	if s.prayerTimeDao != nil {
		row, err := s.prayerTimeDao.GetRow(ctx, zone, date)
		if err == nil {
			prayerTimeLookupsTotal.WithLabelValues(sourceCache).Inc()
			return row, nil
		}
		if !errors.Is(err, redis.ErrRowNotCached) {
			s.log.Warn().Err(err).Str("zone", string(zone)).Msg("Cache read failed, going to e-Solat")
		}
	}

	row, err := s.fetch(ctx, zone, date)
	if err != nil {
		prayerTimeLookupsTotal.WithLabelValues(sourceError).Inc()
		return nil, err
	}
	prayerTimeLookupsTotal.WithLabelValues(sourceESolat).Inc()
	return row, nil
}

func (s *PrayerTimeService) fetch(ctx context.Context, zone models.Zone, date time.Time) (*models.PrayerTimeRow, error) {
	week, err := s.esolatApi.GetWeek(ctx, zone)
	if err != nil {
		return nil, fmt.Errorf("week lookup: %w", err)
	}
	s.cacheRows(ctx, zone, week)

	day, err := esolat.FindDay(week, date)
	if errors.Is(err, esolat.ErrDateNotFound) {
		s.log.Debug().Str("zone", string(zone)).Str("date", date.Format(models.DateLayout)).Msg("Date outside week window, querying duration")
		var duration *models.ESolatResponse
		duration, err = s.esolatApi.GetDuration(ctx, zone, date, date)
		if err != nil {
			return nil, fmt.Errorf("duration lookup: %w", err)
		}
		s.cacheRows(ctx, zone, duration)
		day, err = esolat.FindDay(duration, date)
	}
	if err != nil {
		return nil, err
	}

	return day.ToRow(zone)
}

// GetWeek returns the usable rows of e-Solat's current week for zone.
func (s *PrayerTimeService) GetWeek(ctx context.Context, zone models.Zone) ([]*models.PrayerTimeRow, error) {
	week, err := s.esolatApi.GetWeek(ctx, zone)
	if err != nil {
		return nil, fmt.Errorf("week lookup: %w", err)
	}
	s.cacheRows(ctx, zone, week)
	return toRows(zone, week), nil
}

func (s *PrayerTimeService) cacheRows(ctx context.Context, zone models.Zone, resp *models.ESolatResponse) {
	if s.prayerTimeDao == nil {
		return
	}
	for _, row := range toRows(zone, resp) {
		if err := s.prayerTimeDao.UpsertRow(ctx, row); err != nil {
			s.log.Warn().Err(err).Str("zone", string(zone)).Str("date", row.Date).Msg("Cache write failed")
		}
	}
}

func toRows(zone models.Zone, resp *models.ESolatResponse) []*models.PrayerTimeRow {
	rows := make([]*models.PrayerTimeRow, 0, len(resp.PrayerTime))
	for _, d := range resp.PrayerTime {
		row, err := d.ToRow(zone)
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
