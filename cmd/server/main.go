package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/analysis"
	"github.com/GayaStar/adaptiveChess/internal/api"
	"github.com/GayaStar/adaptiveChess/internal/config"
	"github.com/GayaStar/adaptiveChess/internal/db"
	"github.com/GayaStar/adaptiveChess/internal/engine"
	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/policy"
	"github.com/GayaStar/adaptiveChess/internal/repository/sqlite"
	"github.com/GayaStar/adaptiveChess/internal/services"
	"github.com/GayaStar/adaptiveChess/internal/session"
	"github.com/GayaStar/adaptiveChess/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("adaptiveChess Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("stockfish_path=%s", cfg.StockfishPath)
	log.Debug("analysis_depth=%d", cfg.AnalysisDepth)
	log.Debug("analysis_pv_moves=%d", cfg.AnalysisPVMoves)
	log.Debug("policy_url=%s", cfg.PolicyURL)
	log.Debug("redis_addr=%s", cfg.RedisAddr)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("sync_worker_count=%d", cfg.SyncWorkerCount)
	log.Debug("sync_queue_size=%d", cfg.SyncQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Connect to redis for the session store
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Error("failed to reach redis at %s: %v", cfg.RedisAddr, err)
		os.Exit(1)
	}
	defer rdb.Close()

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewStore(rdb, sessionTTL)

	// Start the interactive play engine
	playEngine, err := engine.NewSession(cfg.StockfishPath)
	if err != nil {
		log.Error("failed to start engine at %s: %v", cfg.StockfishPath, err)
		os.Exit(1)
	}
	defer playEngine.Close()

	// Repositories
	userRepo := sqlite.NewUserRepository(database.DB)
	gameRepo := sqlite.NewGameRepository(database.DB)

	// Background persistence pool
	syncPool := worker.NewPool(cfg.SyncWorkerCount, cfg.SyncQueueSize)

	// Analysis oracle and report builder
	oracle := engine.NewClient(cfg.StockfishPath)
	builder := analysis.NewBuilder(oracle, analysis.Config{
		Depth:       cfg.AnalysisDepth,
		PVMoves:     cfg.AnalysisPVMoves,
		Concurrency: cfg.SyncWorkerCount,
	})

	// Initialize services
	authService := services.NewAuthService(userRepo, sessions)
	profileService := services.NewProfileService(userRepo)
	gameService := services.NewGameService(gameRepo, userRepo, syncPool)
	analysisService := services.NewAnalysisService(builder)
	playService := services.NewPlayService(
		playEngine,
		policy.New(cfg.PolicyURL),
		time.Duration(cfg.PlayTimeoutMS)*time.Millisecond,
	)

	srv := &api.Server{
		Auth:       authService,
		Profiles:   profileService,
		Games:      gameService,
		Analysis:   analysisService,
		Play:       playService,
		Sessions:   sessions,
		SessionTTL: sessionTTL,
	}

	ctx, cancel := context.WithCancel(context.Background())
	syncPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first so no new jobs arrive
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Stop workers and flush pending persistence jobs
	log.Debug("stopping sync pool")
	cancel()
	syncPool.Stop()

	log.Info("===========================================")
	log.Info("adaptiveChess Server Stopped")
	log.Info("===========================================")
}
