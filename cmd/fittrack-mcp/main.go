// Package main runs the fittrack MCP server over stdio, for local agent use.
// The same tools are served by the main service at /mcp.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/logging"
	fittrackmcp "github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	log.SetLevel(logging.GetLevel(cfg.LogLevel))

	ctx := context.Background()
	storage, err := internal.OpenStorage(ctx, internal.StorageParams{
		Config:           cfg,
		RedisPassword:    config.Env("FITTRACK_REDIS_PASS"),
		PostgresPassword: config.Env("FITTRACK_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("open storage: %s", err)
	}
	defer storage.Close()

	metricsManager := metrics.NewManager("fittrack", "mcp", prometheus.NewRegistry())
	services := internal.NewServices(storage.Accessor(metricsManager), cfg, metricsManager)
	defer services.Close()

	server := fittrackmcp.NewServer(services.Tracker, services.Stats, services.Reminders)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
