package esolat

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solat-assistant/models"
)

func fixtureMock() *ESolatApiClientMock {
	return NewESolatApiClientMockFromFile(filepath.Join("..", "..", "resources", "esolat_week_response.json"))
}

func TestESolatApiClientMock_GetWeek(t *testing.T) {
	resp, err := fixtureMock().GetWeek(context.Background(), "SGR02")
	require.NoError(t, err)

	assert.Equal(t, "SGR02", resp.Zone)
	assert.Len(t, resp.PrayerTime, 7)

	day, err := FindDay(resp, time.Date(2026, 10, 19, 0, 0, 0, 0, models.MalaysiaLocation))
	require.NoError(t, err)
	assert.Equal(t, "16:16:00", day.Asr)
}

func TestESolatApiClientMock_GetDuration(t *testing.T) {
	start := time.Date(2026, 10, 21, 0, 0, 0, 0, models.MalaysiaLocation)
	end := time.Date(2026, 10, 22, 0, 0, 0, 0, models.MalaysiaLocation)

	resp, err := fixtureMock().GetDuration(context.Background(), "SGR01", start, end)
	require.NoError(t, err)
	require.Len(t, resp.PrayerTime, 2)
	assert.Equal(t, "21-Oct-2026", resp.PrayerTime[0].Date)
	assert.Equal(t, "22-Oct-2026", resp.PrayerTime[1].Date)

	outside := time.Date(2027, 1, 1, 0, 0, 0, 0, models.MalaysiaLocation)
	resp, err = fixtureMock().GetDuration(context.Background(), "SGR01", outside, outside)
	require.NoError(t, err)
	assert.Empty(t, resp.PrayerTime)
}

func TestESolatApiClientMock_MissingFixture(t *testing.T) {
	mock := NewESolatApiClientMockFromFile(filepath.Join(t.TempDir(), "nope.json"))
	_, err := mock.GetWeek(context.Background(), "SGR01")
	assert.Error(t, err)
}
