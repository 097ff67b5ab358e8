package di

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"solat-assistant/api"
	"solat-assistant/api/esolat"
	"solat-assistant/api/ollama"
	"solat-assistant/config"
	"solat-assistant/corrector"
	"solat-assistant/dao/redis"
	"solat-assistant/db"
	"solat-assistant/fuzzy"
	"solat-assistant/resolver"
	"solat-assistant/server"
	"solat-assistant/server/handlers"
	"solat-assistant/server/mqtt"
	services "solat-assistant/service"
)

const testingLLMReply = "Ini jawapan ujian."

// Container holds all application dependencies.
type Container struct {
	Config                      *config.Config
	RedisClient                 db.RedisClient
	RedisPrayerTimeDao          *redis.RedisPrayerTimeDAO
	ESolatAPI                   esolat.ESolatAPI
	OllamaAPI                   ollama.OllamaAPI
	Corrector                   *corrector.Corrector
	Resolver                    *resolver.Resolver
	PrayerTimeService           *services.PrayerTimeService
	AssistantService            *services.AssistantService
	PrayerTimesRefresherService *services.PrayerTimesRefresherService
	AssistantHandler            *handlers.AssistantHandler
	MuxRouter                   *mux.Router
	Router                      *server.Router
	AssistantHttpServer         *server.AssistantHttpServer
	VoiceBridge                 *mqtt.VoiceBridge
}

// NewContainer initializes and wires up all dependencies. In the testing
// environment every outbound collaborator is replaced by its mock.
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	log.Info().Str("environment", string(cfg.Environment)).Msg("Initializing container")

	redisClient := newRedisClient(ctx, cfg)
	var prayerTimeDao *redis.RedisPrayerTimeDAO
	if redisClient != nil {
		prayerTimeDao = redis.NewRedisPrayerTimeDAO(redisClient, config.PRAYER_TIMES_CACHE_TTL)
	}

	var esolatApi esolat.ESolatAPI
	var ollamaApi ollama.OllamaAPI
	if cfg.IsTesting() {
		log.Info().Msg("Using mock e-Solat and Ollama clients")
		esolatApi = esolat.NewESolatApiClientMock()
		ollamaApi = ollama.NewOllamaClientMock(testingLLMReply)
	} else {
		httpClient := api.NewHTTPClient(cfg.ESolatBaseURL, cfg.HTTPTimeout())
		esolatApi = esolat.NewESolatApiClient(httpClient).
			WithRetry(cfg.ESolatMaxRetries, config.ESOLAT_RETRY_INITIAL_BACKOFF)
		// Generation is slower than lookups; give it six times the budget.
		ollamaApi = ollama.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, 6*cfg.HTTPTimeout())
	}

	matcher := fuzzy.New(cfg.FuzzyEnabled)
	corr := corrector.New(matcher)
	res := resolver.New(matcher)

	prayerTimeService := services.NewPrayerTimeService(prayerTimeDao, esolatApi)
	assistantService := services.NewAssistantService(corr, res, prayerTimeService, ollamaApi)
	refresherService := services.NewPrayerTimesRefresherService(prayerTimeService, resolver.Zones())

	assistantHandler := handlers.NewAssistantHandler(assistantService, prayerTimeService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(assistantHandler, muxRouter)
	httpServer := server.NewAssistantHttpServer(router, muxRouter, cfg.GetHTTPAddr())
	voiceBridge := newVoiceBridge(cfg, assistantService)

	return &Container{
		Config:                      cfg,
		RedisClient:                 redisClient,
		RedisPrayerTimeDao:          prayerTimeDao,
		ESolatAPI:                   esolatApi,
		OllamaAPI:                   ollamaApi,
		Corrector:                   corr,
		Resolver:                    res,
		PrayerTimeService:           prayerTimeService,
		AssistantService:            assistantService,
		PrayerTimesRefresherService: refresherService,
		AssistantHandler:            assistantHandler,
		MuxRouter:                   muxRouter,
		Router:                      router,
		AssistantHttpServer:         httpServer,
		VoiceBridge:                 voiceBridge,
	}
}

// newRedisClient returns nil when Redis is unreachable; the assistant then
// runs without a cache.
func newRedisClient(ctx context.Context, cfg *config.Config) db.RedisClient {
	if cfg.IsTesting() {
		return db.NewMockRedisClient()
	}
	client, err := db.Connect(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, prayer times will not be cached")
		return nil
	}
	return client
}

// newVoiceBridge returns nil when no broker is configured or it cannot be reached.
func newVoiceBridge(cfg *config.Config, assistant mqtt.Assistant) *mqtt.VoiceBridge {
	if cfg.IsTesting() || cfg.MQTTBrokerURL == "" {
		return nil
	}
	client, err := mqtt.Connect(cfg.MQTTBrokerURL, cfg.MQTTClientID)
	if err != nil {
		log.Warn().Err(err).Msg("MQTT unavailable, voice devices will not be served")
		return nil
	}
	return mqtt.NewVoiceBridge(client, assistant)
}
