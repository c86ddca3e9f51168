package main

import (
	"context"
	"log"

	"github.com/gabapcia/reconwatch/internal/config"
	"github.com/gabapcia/reconwatch/internal/handlers/cli"
	"github.com/gabapcia/reconwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/reconwatch/internal/infra/explorer/etherscan"
	ledgerhttp "github.com/gabapcia/reconwatch/internal/infra/ledger/http"
	orderstorehttp "github.com/gabapcia/reconwatch/internal/infra/orderstore/http"
	"github.com/gabapcia/reconwatch/internal/infra/storage/redis"
	"github.com/gabapcia/reconwatch/internal/pkg/logger"
	"github.com/gabapcia/reconwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/reconwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/reconwatch/internal/pkg/transport/http"
	"github.com/gabapcia/reconwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/reconwatch/internal/reconcile"
)

const serviceName = "reconwatch"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	telemetryShutdown, err := telemetry.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("initializing telemetry: %v", err)
	}
	defer telemetryShutdown(ctx)

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	redisClient, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "connecting to redis", "error", err)
	}
	defer redisClient.Close()

	httpClient := transporthttp.NewClient()

	var (
		explorerClient   = etherscan.NewClient(httpClient, cfg.ExplorerBaseURL, cfg.ExplorerAPIKey)
		nodeClient       = ethereum.NewClient(jsonrpc.NewClient(httpClient.StandardClient(), cfg.NodeRPCEndpoint))
		orderStoreClient = orderstorehttp.NewClient(httpClient, cfg.OrderStoreBaseURL)
		ledgerClient     = ledgerhttp.NewClient(httpClient, cfg.LedgerBaseURL)
	)

	method := reconcile.NativeMethod{
		Asset:    cfg.Asset,
		ID:       cfg.DepositMethodID,
		Account:  cfg.DepositAccount,
		Network:  cfg.Network,
		Decimals: cfg.AssetDecimals,
	}

	svc := reconcile.New(
		method,
		orderStoreClient,
		explorerClient,
		explorerClient,
		nodeClient,
		ledgerClient,
		redisClient,
		reconcile.WithScanConcurrency(cfg.ScanConcurrency),
		reconcile.WithDequeueRetry(retry.New()),
	)

	if err := cli.Run(ctx, svc, redisClient, cfg.Network, cfg.ExplorerConfigured()); err != nil {
		logger.Fatal(ctx, "reconwatch exited with error", "error", err)
	}
}
