package di

import (
	"context"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"energy-viewer/api"
	"energy-viewer/api/smoothing"
	"energy-viewer/chart"
	"energy-viewer/config"
	"energy-viewer/dao/redis"
	"energy-viewer/db"
	"energy-viewer/server"
	"energy-viewer/server/handlers"
	services "energy-viewer/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                db.RedisClient
	RedisSeriesDao             *redis.RedisSeriesDAO
	SmoothingAPI               smoothing.SmoothingAPI
	ChartOptions               chart.Options
	ViewService                *services.ViewService
	ViewHandler                *handlers.ViewHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	EnergyViewHttpServer       *server.EnergyViewHttpServer
	EnergyDataRefresherService *services.EnergyDataRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg config.Config) *Container {
	log.Printf("[Container] Initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	redisClient := newRedisClient(ctx, cfg)

	// Initialize Redis Series DAO
	redisSeriesDao := redis.NewRedisSeriesDAO(redisClient, config.ENERGY_DATA_CACHE_TTL, config.SMOOTHING_RESULT_CACHE_TTL)

	// Initialize smoothing backend - mocked outside prod
	var smoothingAPI smoothing.SmoothingAPI
	if cfg.Env != "prod" {
		smoothingAPI = smoothing.NewDefaultSmoothingApiClientMock()
		log.Println("[Container] Using mock smoothing api")
	} else {
		log.Printf("[Container] Using smoothing api at %s", cfg.BackendURL)
		httpClient := api.NewHTTPClient(cfg.BackendURL)
		smoothingAPI = smoothing.NewSmoothingApiClient(httpClient)
	}

	chartOptions := chart.OptionsForPreset(cfg.UnitPreset)

	viewService := services.NewViewService(smoothingAPI, redisSeriesDao, chartOptions)
	viewHandler := handlers.NewViewHandler(viewService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(viewHandler, muxRouter)
	energyViewHttpServer := server.NewEnergyViewHttpServer(cfg.Addr, config.HTTP_SERVER_SHUTDOWN_TIMEOUT, router, muxRouter)

	energyDataRefresherService := services.NewEnergyDataRefresherService(redisSeriesDao, smoothingAPI)

	return &Container{
		RedisClient:                redisClient,
		RedisSeriesDao:             redisSeriesDao,
		SmoothingAPI:               smoothingAPI,
		ChartOptions:               chartOptions,
		ViewService:                viewService,
		ViewHandler:                viewHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		EnergyViewHttpServer:       energyViewHttpServer,
		EnergyDataRefresherService: energyDataRefresherService,
	}
}

// newRedisClient connects to Redis, falling back to the in-process cache when
// caching is disabled or Redis cannot be reached.
func newRedisClient(ctx context.Context, cfg config.Config) db.RedisClient {
	if !cfg.UseCache {
		log.Println("[Container] Redis cache disabled, using in-process cache")
		return db.NewMockRedisClient(ctx)
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		log.WithError(err).Warnf("[Container] Failed to connect to Redis at %s, using in-process cache", cfg.RedisAddr)
		redisInternalClient.Close()
		return db.NewMockRedisClient(ctx)
	}
	return redisClient
}
