// ABOUTME: Entry point for the immersion cooling TCO calculator backend
// ABOUTME: Provides HTTP API comparing air and immersion cooling costs

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/zelenskymike/immersive-calculator-sub000/cache"
	"github.com/zelenskymike/immersive-calculator-sub000/config"
	"github.com/zelenskymike/immersive-calculator-sub000/handlers"
	"github.com/zelenskymike/immersive-calculator-sub000/logger"
	"github.com/zelenskymike/immersive-calculator-sub000/metrics"
	"github.com/zelenskymike/immersive-calculator-sub000/middleware"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting TCO Calculator Backend")
	slog.Info("Engine constants",
		"hours_per_year", cfg.HoursPerYear,
		"grid_carbon_intensity_kg_per_kwh", cfg.GridCarbonIntensity,
	)

	// Initialize result cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Request/error counters are constructed here and injected; no
	// package-level state.
	m := metrics.New()

	// Initialize handlers
	h := handlers.NewHandler(cfg, c, m)

	// Rate limiters: tighter budget for the compute endpoint
	var calcLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		calcLimiter = middleware.NewRateLimiter(cfg.RateLimitCalculate, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
	}

	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	// Register routes with logging, CORS, and rate limiting middleware
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.Method == http.MethodPost {
			limiter = calcLimiter
		}
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(
			route.Handler,
			middleware.LogRequest,
			cors,
			middleware.RateLimit(limiter, middleware.ClientIP),
		))
	}

	// Method-specific patterns never see OPTIONS; answer preflight here
	mux.HandleFunc("OPTIONS /api/", cors(func(w http.ResponseWriter, r *http.Request) {}))

	// Start server
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
