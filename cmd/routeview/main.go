package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"flightdeck/routeview/internal/common"
	"flightdeck/routeview/internal/config"
	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/lookup"
	"flightdeck/routeview/internal/metrics"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/providers"
	"flightdeck/routeview/internal/render"
	"flightdeck/routeview/internal/routes"
	"flightdeck/routeview/internal/services"
	"flightdeck/routeview/internal/viewstate"
	"flightdeck/routeview/internal/workers"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Routeview starting up",
		"environment", cfg.AppEnv,
		"backend", cfg.BackendBaseURL,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry()

	// Cache backend for the shared conflict report
	var reportCache common.CacheInterface
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logging.Error("Failed to connect to Redis", "error", err.Error())
			log.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		reportCache = redisCache
		logging.Info("Using Redis cache backend", "host", cfg.RedisHost, "port", cfg.RedisPort)
	default:
		reportCache = common.NewCacheService(cfg.ConflictReportTTL, 5*time.Minute)
		logging.Info("Using in-memory cache backend")
	}
	defer reportCache.Close()

	provider := providers.NewSearchAPIProvider(cfg.BackendBaseURL, cfg.BackendTimeout)
	lookups := lookup.NewDirectory(provider, cfg.LookupRefreshTTL)

	store := viewstate.NewStore(cfg.SessionTTL, func(criterion, start string, legs []dtos.Leg) *dtos.MapOverlay {
		return render.BuildOverlay(criterion, start, legs, lookups)
	})

	svc := services.NewSearchService(
		provider, provider, lookups, store, reportCache, metricsReg, cfg.ConflictReportTTL,
	)

	workers.InitWorkers(provider, store, metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(svc, provider, metricsReg, upSince)

	logging.Info("Server starting",
		"port", cfg.ListenPort,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on :%s", cfg.ListenPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ListenPort, router))
}
