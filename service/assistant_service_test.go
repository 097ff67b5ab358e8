package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solat-assistant/api/ollama"
	"solat-assistant/corrector"
	"solat-assistant/fuzzy"
	"solat-assistant/models"
	"solat-assistant/resolver"
)

func newTestAssistant(provider PrayerTimeProvider, gen ollama.OllamaAPI) *AssistantService {
	matcher := fuzzy.NewRatioMatcher()
	return NewAssistantService(corrector.New(matcher), resolver.New(matcher), provider, gen).
		WithClock(func() time.Time { return composeNow })
}

func TestAssistantService_PrayerQueries(t *testing.T) {
	gen := ollama.NewOllamaClientMock("tak patut dipanggil")
	a := newTestAssistant(NewPrayerTimeService(nil, newCountingESolat()), gen)

	tests := []struct {
		raw       string
		corrected string
		want      string
	}{
		{"waktu solat asar gombak", "waktu solat asar gombak", "Waktu solat asar hari ini untuk zon SGR01 ialah 16:16."},
		{"sabuh di kelang esok", "subuh di klang esok", "Waktu solat subuh esok untuk zon SGR03 ialah 05:55."},
		{"Berapa minit lagi maghrib?", "berapa minit lagi maghrib", "Waktu maghrib untuk zon SGR01 pukul 19:09. Lagi lebih kurang 189 minit."},
		{"waktu solat esok", "waktu solat esok", "Waktu solat esok zon SGR01: Subuh 05:55, Zohor 13:08, Asar 16:16, Maghrib 19:09, Isyak 20:18."},
		{"subuh jumaat", "subuh jumaat", "Waktu solat subuh jumaat untuk zon SGR01 ialah 05:54."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := a.Respond(context.Background(), tt.raw)
			assert.Equal(t, RoutePrayer, got.Route)
			assert.Equal(t, tt.corrected, got.Corrected)
			assert.Equal(t, tt.want, got.Reply)
			require.NotNil(t, got.Intent)
			assert.True(t, got.Intent.IsPrayerQuery)
		})
	}
	assert.Empty(t, gen.Prompts)
}

func TestAssistantService_Greeting(t *testing.T) {
	gen := ollama.NewOllamaClientMock("")
	a := newTestAssistant(NewPrayerTimeService(nil, newCountingESolat()), gen)
	before := testutil.ToFloat64(repliesTotal.WithLabelValues(string(RouteGreeting)))

	got := a.Respond(context.Background(), "Assalamualaikum, waktu asar?")
	assert.Equal(t, RouteGreeting, got.Route)
	assert.Equal(t, MsgGreeting, got.Reply)
	assert.Nil(t, got.Intent)
	assert.Equal(t, before+1, testutil.ToFloat64(repliesTotal.WithLabelValues(string(RouteGreeting))))
}

func TestAssistantService_EmptyTranscript(t *testing.T) {
	api := newCountingESolat()
	gen := ollama.NewOllamaClientMock("")
	a := newTestAssistant(NewPrayerTimeService(nil, api), gen)

	for _, raw := range []string{"", "   ", "?!"} {
		got := a.Respond(context.Background(), raw)
		assert.Equal(t, RouteClarify, got.Route)
		assert.Equal(t, MsgClarify, got.Reply)
	}
	assert.Zero(t, api.weekCalls)
	assert.Empty(t, gen.Prompts)
}

func TestAssistantService_Fallback(t *testing.T) {
	gen := ollama.NewOllamaClientMock("Khabar baik.")
	api := newCountingESolat()
	a := newTestAssistant(NewPrayerTimeService(nil, api), gen)

	got := a.Respond(context.Background(), "apa khabar")
	assert.Equal(t, RouteFallback, got.Route)
	assert.Equal(t, "Khabar baik.", got.Reply)
	require.NotNil(t, got.Intent)
	assert.False(t, got.Intent.IsPrayerQuery)

	require.Len(t, gen.Prompts, 1)
	assert.Contains(t, gen.Prompts[0], "Bahasa Melayu")
	assert.Contains(t, gen.Prompts[0], "Soalan: apa khabar\nJawapan:")
	assert.Zero(t, api.weekCalls)
}

func TestAssistantService_FallbackFailure(t *testing.T) {
	gen := ollama.NewOllamaClientMock("")
	gen.Err = errors.New("connection refused")
	a := newTestAssistant(NewPrayerTimeService(nil, newCountingESolat()), gen)

	got := a.Respond(context.Background(), "apa khabar")
	assert.Equal(t, MsgLLMUnreached, got.Reply)
}

func TestAssistantService_ProviderDown(t *testing.T) {
	api := newCountingESolat()
	api.err = errors.New("timeout")
	a := newTestAssistant(NewPrayerTimeService(nil, api), ollama.NewOllamaClientMock(""))

	for _, raw := range []string{"waktu solat asar gombak", "waktu solat esok", "asar dah masuk"} {
		got := a.Respond(context.Background(), raw)
		assert.Equal(t, RoutePrayer, got.Route)
		assert.Equal(t, MsgUnavailable, got.Reply, raw)
	}
}

func TestAssistantService_UsesMalaysiaClock(t *testing.T) {
	// 17:30 UTC on the 19th is 01:30 on the 20th in Malaysia.
	a := newTestAssistant(NewPrayerTimeService(nil, newCountingESolat()), ollama.NewOllamaClientMock("")).
		WithClock(func() time.Time { return time.Date(2026, 10, 19, 17, 30, 0, 0, time.UTC) })

	got := a.Respond(context.Background(), "berapa minit lagi subuh")
	assert.Equal(t, "Waktu subuh untuk zon SGR01 pukul 05:55. Lagi lebih kurang 265 minit.", got.Reply)
	require.NotNil(t, got.Intent)
	assert.Equal(t, "2026-10-20", got.Intent.Date.Date.In(models.MalaysiaLocation).Format(models.DateLayout))
}
