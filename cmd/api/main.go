package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"coaching-offers-api/internal/cache"
	"coaching-offers-api/internal/catalog"
	"coaching-offers-api/internal/cms"
	"coaching-offers-api/internal/config"
	"coaching-offers-api/internal/events"
	"coaching-offers-api/internal/features"
	"coaching-offers-api/internal/handler"
	"coaching-offers-api/internal/middleware"
	"coaching-offers-api/internal/service"
	"coaching-offers-api/internal/state"
	"coaching-offers-api/internal/tracing"
)

func main() {
	configFile := flag.String("config", "", "Path to JSON config file")
	flag.Parse()

	// Optional .env for local development; env vars win either way.
	_ = godotenv.Load(".env")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Catalog construction fails fast on authoring errors (duplicate slugs,
	// missing tiers); that is a deploy-time bug, not a runtime condition.
	store, err := catalog.NewStore()
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	flags := features.NewManager()
	flags.Register(features.FeatureCMSContent, cfg.CMS.BaseURL != "", "serve CMS-backed offers when documents are available")
	flags.Register(features.FeatureCacheEnabled, true, "cache CMS documents for the freshness window")
	flags.Register(features.FeatureEventHooksEnabled, true, "publish in-process domain events")

	var docCache cache.Cache
	if cfg.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		docCache = redisCache
	} else {
		docCache = cache.NewInMemoryCache()
	}

	gateway := cms.NewGateway(cms.Config{
		BaseURL:      cfg.CMS.BaseURL,
		FreshnessTTL: time.Duration(cfg.CMS.FreshnessTTLSec) * time.Second,
		Timeout:      time.Duration(cfg.CMS.TimeoutSec) * time.Second,
		CacheDocs:    func() bool { return flags.IsEnabled(features.FeatureCacheEnabled) },
	}, docCache)

	ev := events.NewManager(flags.IsEnabled(features.FeatureEventHooksEnabled))
	defer ev.Shutdown()

	ev.Subscribe(events.EventRecommendationComputed, func(ctx context.Context, e events.Event) error {
		if data, ok := e.Data.(events.RecommendationComputedData); ok {
			log.Printf("Quiz recommendation: %s", data.Plan.Slug)
		}
		return nil
	})

	selection := state.NewMemoryStore(ev)

	svc, err := service.NewService(store, gateway, selection, ev, flags)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	h := handler.NewHandlerWithOptions(svc, handler.Options{
		MaxBodySize: cfg.Security.MaxRequestBodySize,
	})

	if _, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: "coaching-offers-api",
		Environment: cfg.Tracing.Environment,
	}); err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracing: %v", err)
		}
	}()

	r := chi.NewRouter()

	// Middleware (order matters)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Rate, time.Duration(cfg.RateLimit.Window)*time.Second)
		defer rateLimiter.Stop()
		r.Use(middleware.RateLimit(rateLimiter))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.Security.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h.Routes(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if gateway.Enabled() {
		log.Printf("CMS content: %s (freshness %ds)", cfg.CMS.BaseURL, cfg.CMS.FreshnessTTLSec)
	} else {
		log.Printf("CMS content: disabled, serving static catalog")
	}

	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
