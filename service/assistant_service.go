package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"solat-assistant/api/ollama"
	"solat-assistant/corrector"
	"solat-assistant/logger"
	"solat-assistant/models"
	"solat-assistant/resolver"
)

// Route names the path an utterance took through the assistant.
type Route string

const (
	RouteGreeting Route = "greeting"
	RouteClarify  Route = "clarify"
	RoutePrayer   Route = "prayer"
	RouteFallback Route = "fallback"
)

const fallbackPromptFormat = "Anda ialah pembantu suara ringkas dalam Bahasa Melayu.\n" +
	"Jawab pendek dan jelas.\n\n" +
	"Soalan: %s\nJawapan:"

// Response is the assistant's answer to one utterance.
type Response struct {
	Reply     string                 `json:"reply"`
	Corrected string                 `json:"corrected"`
	Route     Route                  `json:"route"`
	Intent    *models.ResolvedIntent `json:"intent,omitempty"`
}

// AssistantService runs an utterance through correction, resolution and
// composition, handing small talk to the generative model.
type AssistantService struct {
	corrector   *corrector.Corrector
	resolver    *resolver.Resolver
	prayerTimes PrayerTimeProvider
	generator   ollama.OllamaAPI
	now         func() time.Time
	log         zerolog.Logger
}

// NewAssistantService constructs a new AssistantService.
func NewAssistantService(
	corr *corrector.Corrector,
	res *resolver.Resolver,
	prayerTimes PrayerTimeProvider,
	generator ollama.OllamaAPI) *AssistantService {

	return &AssistantService{
		corrector:   corr,
		resolver:    res,
		prayerTimes: prayerTimes,
		generator:   generator,
		now:         time.Now,
		log:         logger.Component("AssistantService"),
	}
}

// WithClock replaces the wall clock, for tests and replays.
func (a *AssistantService) WithClock(now func() time.Time) *AssistantService {
	a.now = now
	return a
}

// Respond answers one raw transcript. It never fails: provider and model
// errors become fixed apology replies.
func (a *AssistantService) Respond(ctx context.Context, raw string) Response {
	resp := a.respond(ctx, raw)
	repliesTotal.WithLabelValues(string(resp.Route)).Inc()
	return resp
}

func (a *AssistantService) respond(ctx context.Context, raw string) Response {
	corrected := a.corrector.Correct(raw)

	if resolver.IsGreeting(corrected) {
		return Response{Reply: MsgGreeting, Corrected: corrected, Route: RouteGreeting}
	}
	if corrected == "" {
		return Response{Reply: MsgClarify, Corrected: corrected, Route: RouteClarify}
	}

	now := a.now().In(models.MalaysiaLocation)
	intent := a.resolver.Resolve(corrected, now)

	if !intent.IsPrayerQuery {
		return Response{Reply: a.fallback(ctx, raw), Corrected: corrected, Route: RouteFallback, Intent: &intent}
	}

	row, err := a.prayerTimes.GetPrayerTimes(ctx, intent.Zone, intent.Date.Date)
	if err != nil {
		a.log.Warn().Err(err).
			Str("zone", string(intent.Zone)).
			Str("date", intent.Date.Date.Format(models.DateLayout)).
			Msg("Prayer times unavailable")
		row = nil
	}

	a.log.Debug().
		Str("corrected", corrected).
		Str("prayer", string(intent.Prayer)).
		Str("zone", string(intent.Zone)).
		Str("variant", string(intent.Variant())).
		Msg("Resolved prayer query")

	return Response{Reply: Compose(intent, row, now), Corrected: corrected, Route: RoutePrayer, Intent: &intent}
}

func (a *AssistantService) fallback(ctx context.Context, raw string) string {
	prompt := fmt.Sprintf(fallbackPromptFormat, strings.TrimSpace(raw))
	reply, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		a.log.Error().Err(err).Msg("Generative fallback failed")
		return MsgLLMUnreached
	}
	return reply
}
