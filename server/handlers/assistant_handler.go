package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"solat-assistant/api/esolat"
	"solat-assistant/logger"
	"solat-assistant/models"
	"solat-assistant/resolver"
	services "solat-assistant/service"
)

const (
	ZONE_QUERY_ARG = "zone"
	DATE_QUERY_ARG = "date"

	maxAskBodyBytes = 4 << 10
)

var zonePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{2}$`)

// Assistant answers one utterance.
type Assistant interface {
	Respond(ctx context.Context, raw string) services.Response
}

// AskRequest is the body of POST /v1/ask.
type AskRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type AssistantHandler struct {
	assistant   Assistant
	prayerTimes services.PrayerTimeProvider
	now         func() time.Time
	log         zerolog.Logger
}

func NewAssistantHandler(assistant Assistant, prayerTimes services.PrayerTimeProvider) *AssistantHandler {
	return &AssistantHandler{
		assistant:   assistant,
		prayerTimes: prayerTimes,
		now:         time.Now,
		log:         logger.Component("AssistantHandler"),
	}
}

// WithClock replaces the wall clock used for the default date.
func (h *AssistantHandler) WithClock(now func() time.Time) *AssistantHandler {
	h.now = now
	return h
}

// Ask handles POST /v1/ask.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAskBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	resp := h.assistant.Respond(r.Context(), req.Text)
	h.log.Info().Str("route", string(resp.Route)).Str("corrected", resp.Corrected).Msg("Answered")
	writeJSON(w, http.StatusOK, resp)
}

// GetZones handles GET /v1/zones.
func (h *AssistantHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, resolver.PlaceZones())
}

// GetPrayerTimes handles GET /v1/times?zone={zone}&date={YYYY-MM-DD}. Both
// arguments are optional and default to the default zone and today.
func (h *AssistantHandler) GetPrayerTimes(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	zone := models.DefaultZone
	if z := strings.ToUpper(strings.TrimSpace(vals.Get(ZONE_QUERY_ARG))); z != "" {
		if !zonePattern.MatchString(z) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid argument " + ZONE_QUERY_ARG})
			return
		}
		zone = models.Zone(z)
	}

	date := h.now().In(models.MalaysiaLocation)
	if d := vals.Get(DATE_QUERY_ARG); d != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, d, models.MalaysiaLocation)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid argument " + DATE_QUERY_ARG})
			return
		}
		date = parsed
	}

	row, err := h.prayerTimes.GetPrayerTimes(r.Context(), zone, date)
	if errors.Is(err, esolat.ErrDateNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no prayer times for that date"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("zone", string(zone)).Msg("Error loading prayer times")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: services.MsgUnavailable})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// Ping handles GET /ping
func (h *AssistantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
