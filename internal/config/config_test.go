package config

import (
	"testing"

	"github.com/gabapcia/reconwatch/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("NODE_RPC_ENDPOINT", "http://localhost:8545")
	t.Setenv("ORDER_STORE_BASE_URL", "http://orders.local")
	t.Setenv("LEDGER_BASE_URL", "http://ledger.local")
	t.Setenv("DEPOSIT_METHOD_ID", "eth-native")
	t.Setenv("DEPOSIT_ACCOUNT", "0xaccount")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "https://api.etherscan.io/api", cfg.ExplorerBaseURL)
		assert.Equal(t, "ETH", cfg.Asset)
		assert.Equal(t, "ethereum", cfg.Network)
		assert.Equal(t, 18, cfg.AssetDecimals)
		assert.Equal(t, 10, cfg.ScanConcurrency)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SCAN_CONCURRENCY", "4")
		t.Setenv("NETWORK", "sepolia")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 4, cfg.ScanConcurrency)
		assert.Equal(t, "sepolia", cfg.Network)
	})

	t.Run("missing required settings fail validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REDIS_ADDR", "")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("scan concurrency must be at least one", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SCAN_CONCURRENCY", "0")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestExplorerConfigured(t *testing.T) {
	assert.False(t, Config{}.ExplorerConfigured())
	assert.True(t, Config{ExplorerAPIKey: "key"}.ExplorerConfigured())
}
