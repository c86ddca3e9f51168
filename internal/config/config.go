// Package config loads the worker configuration from the environment and
// validates it before anything else starts.
package config

import (
	"github.com/gabapcia/reconwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting for the reconciliation worker.
//
// ExplorerAPIKey is deliberately not required: without explorer access the
// process can still serve the enqueue command, but the consumer refuses to
// start (checked at startup, not per task).
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	ExplorerBaseURL string `envconfig:"EXPLORER_BASE_URL" default:"https://api.etherscan.io/api"`
	ExplorerAPIKey  string `envconfig:"EXPLORER_API_KEY"`

	NodeRPCEndpoint string `envconfig:"NODE_RPC_ENDPOINT" validate:"required"`

	OrderStoreBaseURL string `envconfig:"ORDER_STORE_BASE_URL" validate:"required"`
	LedgerBaseURL     string `envconfig:"LEDGER_BASE_URL" validate:"required"`

	Asset           string `envconfig:"DEPOSIT_ASSET" default:"ETH"`
	DepositMethodID string `envconfig:"DEPOSIT_METHOD_ID" validate:"required"`
	DepositAccount  string `envconfig:"DEPOSIT_ACCOUNT" validate:"required"`
	Network         string `envconfig:"NETWORK" default:"ethereum"`
	AssetDecimals   int    `envconfig:"ASSET_DECIMALS" default:"18"`

	ScanConcurrency int `envconfig:"SCAN_CONCURRENCY" default:"10" validate:"gte=1"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ExplorerConfigured reports whether explorer access credentials are
// available. Absence is a startup-time condition for the consumer.
func (c Config) ExplorerConfigured() bool {
	return c.ExplorerAPIKey != ""
}
