package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	StockfishPath   string
	AnalysisDepth   int
	AnalysisPVMoves int
	PlayTimeoutMS   int
	PolicyURL       string
	RedisAddr       string
	SessionTTLHours int
	LogLevel        string
	SyncWorkerCount int
	SyncQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8081"),
		DBPath:          envOr("DB_PATH", "file:adaptivechess.db"),
		StockfishPath:   envOr("STOCKFISH_PATH", "stockfish"),
		AnalysisDepth:   envIntOr("ANALYSIS_DEPTH", 12),
		AnalysisPVMoves: envIntOr("ANALYSIS_PV_MOVES", 6),
		PlayTimeoutMS:   envIntOr("PLAY_TIMEOUT_MS", 10000),
		PolicyURL:       envOr("POLICY_URL", "http://localhost:5001"),
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		SessionTTLHours: envIntOr("SESSION_TTL_HOURS", 24),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		SyncWorkerCount: envIntOr("SYNC_WORKER_COUNT", 2),
		SyncQueueSize:   envIntOr("SYNC_QUEUE_SIZE", 64),
	}
}

// Validate checks the configuration for values the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.AnalysisDepth < 1 || c.AnalysisDepth > 30 {
		return fmt.Errorf("ANALYSIS_DEPTH must be between 1 and 30, got %d", c.AnalysisDepth)
	}
	if c.AnalysisPVMoves < 1 {
		return fmt.Errorf("ANALYSIS_PV_MOVES must be positive, got %d", c.AnalysisPVMoves)
	}
	if c.PolicyURL == "" {
		return fmt.Errorf("POLICY_URL cannot be empty")
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if c.SyncWorkerCount < 1 {
		return fmt.Errorf("SYNC_WORKER_COUNT must be positive, got %d", c.SyncWorkerCount)
	}
	if c.SyncQueueSize < 1 {
		return fmt.Errorf("SYNC_QUEUE_SIZE must be positive, got %d", c.SyncQueueSize)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
