package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"solat-assistant/logger"
	"solat-assistant/models"
)

// PrayerTimesRefresherService periodically warms the cache with e-Solat's
// current week for every known zone.
type PrayerTimesRefresherService struct {
	prayerTimes *PrayerTimeService
	zones       []models.Zone
	log         zerolog.Logger
}

// NewPrayerTimesRefresherService constructs a new refresher over zones.
func NewPrayerTimesRefresherService(prayerTimes *PrayerTimeService, zones []models.Zone) *PrayerTimesRefresherService {
	return &PrayerTimesRefresherService{
		prayerTimes: prayerTimes,
		zones:       zones,
		log:         logger.Component("PrayerTimesRefresherService"),
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop ends when ctx is cancelled.
func (r *PrayerTimesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go r.startPeriodicJob(ctx, interval)
}

func (r *PrayerTimesRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("Stopping periodic prayer times refresher job.")
			return
		case <-ticker.C:
			r.log.Info().Msg("Running periodic prayer times refresher job.")
			refreshed := r.RefreshAllZones(ctx)
			r.log.Info().Int("zones", refreshed).Int("total", len(r.zones)).Msg("Refresh completed.")
		}
	}
}

// RefreshAllZones fetches and caches the week for each zone, returning how
// many zones succeeded. A failing zone is logged and skipped.
func (r *PrayerTimesRefresherService) RefreshAllZones(ctx context.Context) int {
	ok := 0
	for _, zone := range r.zones {
		rows, err := r.prayerTimes.GetWeek(ctx, zone)
		if err != nil {
			r.log.Warn().Err(err).Str("zone", string(zone)).Msg("Week refresh failed")
			continue
		}
		r.log.Debug().Str("zone", string(zone)).Int("rows", len(rows)).Msg("Week cached")
		ok++
	}
	return ok
}
