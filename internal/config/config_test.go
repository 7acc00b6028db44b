package config_test

import (
	"testing"

	"github.com/GayaStar/adaptiveChess/internal/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	return config.Config{
		Addr:            ":8081",
		DBPath:          "test.db",
		StockfishPath:   "stockfish",
		AnalysisDepth:   12,
		AnalysisPVMoves: 6,
		PlayTimeoutMS:   10000,
		PolicyURL:       "http://localhost:5001",
		RedisAddr:       "localhost:6379",
		SessionTTLHours: 24,
		LogLevel:        "INFO",
		SyncWorkerCount: 2,
		SyncQueueSize:   64,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidAnalysisDepth(t *testing.T) {
	tests := []struct {
		name  string
		depth int
	}{
		{name: "depth too low", depth: 0},
		{name: "depth too high", depth: 31},
		{name: "negative depth", depth: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.AnalysisDepth = tt.depth

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "ANALYSIS_DEPTH")
		})
	}
}

func TestValidate_InvalidPVMoves(t *testing.T) {
	cfg := validConfig()
	cfg.AnalysisPVMoves = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ANALYSIS_PV_MOVES")
}

func TestValidate_EmptyPolicyURL(t *testing.T) {
	cfg := validConfig()
	cfg.PolicyURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "POLICY_URL")
}

func TestValidate_InvalidSessionTTL(t *testing.T) {
	cfg := validConfig()
	cfg.SessionTTLHours = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL_HOURS")
}

func TestValidate_InvalidWorkerSettings(t *testing.T) {
	cfg := validConfig()
	cfg.SyncWorkerCount = 0
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SYNC_WORKER_COUNT")

	cfg = validConfig()
	cfg.SyncQueueSize = 0
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SYNC_QUEUE_SIZE")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "STOCKFISH_PATH", "ANALYSIS_DEPTH", "ANALYSIS_PV_MOVES",
		"PLAY_TIMEOUT_MS", "POLICY_URL", "REDIS_ADDR", "SESSION_TTL_HOURS",
		"LOG_LEVEL", "SYNC_WORKER_COUNT", "SYNC_QUEUE_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, 12, cfg.AnalysisDepth)
	assert.Equal(t, 6, cfg.AnalysisPVMoves)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("ANALYSIS_DEPTH", "16")
	t.Setenv("ANALYSIS_PV_MOVES", "4")
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 16, cfg.AnalysisDepth)
	assert.Equal(t, 4, cfg.AnalysisPVMoves)
	// Invalid ints fall back to the default.
	assert.Equal(t, 24, cfg.SessionTTLHours)
}
