package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"solat-assistant/db"
	"solat-assistant/models"
)

// PRAYER_TIMES_KEY_FORMAT keys one zone's row for one date: zone, then YYYY-MM-DD.
const PRAYER_TIMES_KEY_FORMAT = "prayer_times_v1:%s:%s"
const PRAYER_TIMES_KEY_PATTERN = "prayer_times_v1:*"

// ErrRowNotCached is returned when no row is cached for a zone and date.
var ErrRowNotCached = errors.New("prayer time row not cached")

// RedisPrayerTimeDAO caches provider rows in Redis.
type RedisPrayerTimeDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisPrayerTimeDAO initializes a RedisPrayerTimeDAO with the Redis client.
func NewRedisPrayerTimeDAO(client db.RedisClient, ttl time.Duration) *RedisPrayerTimeDAO {
	return &RedisPrayerTimeDAO{client: client, ttl: ttl}
}

func prayerTimesKey(zone models.Zone, date string) string {
	return fmt.Sprintf(PRAYER_TIMES_KEY_FORMAT, zone, date)
}

// UpsertRow stores the row under its zone and date.
func (dao *RedisPrayerTimeDAO) UpsertRow(ctx context.Context, row *models.PrayerTimeRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal prayer times for %s %s: %w", row.Zone, row.Date, err)
	}
	if err := dao.client.Set(ctx, prayerTimesKey(row.Zone, row.Date), string(data), dao.ttl); err != nil {
		return fmt.Errorf("[RedisPrayerTimeDAO] failed to set prayer times: %w", err)
	}
	return nil
}

// GetRow retrieves the cached row for zone on date.
func (dao *RedisPrayerTimeDAO) GetRow(ctx context.Context, zone models.Zone, date time.Time) (*models.PrayerTimeRow, error) {
	day := date.In(models.MalaysiaLocation).Format(models.DateLayout)
	str, err := dao.client.Get(ctx, prayerTimesKey(zone, day))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, ErrRowNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("[RedisPrayerTimeDAO] failed to get prayer times: %w", err)
	}
	var row models.PrayerTimeRow
	if err := json.Unmarshal([]byte(str), &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prayer times JSON: %w", err)
	}
	return &row, nil
}

// ListCachedKeys returns the zone:date suffixes of every cached row.
func (dao *RedisPrayerTimeDAO) ListCachedKeys(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, PRAYER_TIMES_KEY_PATTERN)
	if err != nil {
		return nil, fmt.Errorf("failed to list prayer time keys: %w", err)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, "prayer_times_v1:"))
	}
	return out, nil
}

// DeleteRow evicts one cached row.
func (dao *RedisPrayerTimeDAO) DeleteRow(ctx context.Context, zone models.Zone, date string) error {
	if err := dao.client.Del(ctx, prayerTimesKey(zone, date)); err != nil {
		return fmt.Errorf("failed to delete prayer times for %s %s: %w", zone, date, err)
	}
	return nil
}
