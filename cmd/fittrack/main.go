package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        config.Env("SENTRY_DSN"),
		SentryServerName: "fittrack",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("using store: [%s]", cfg.StoreDriver)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(ctx, serverParams(cfg))
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// serverParams collects the secrets and switches that come from env vars.
func serverParams(cfg *config.Config) internal.NewServerParams {
	params := internal.NewServerParams{
		Config:                  cfg,
		RedisPassword:           config.Env("FITTRACK_REDIS_PASS"),
		PostgresPassword:        config.Env("FITTRACK_POSTGRES_PASS"),
		HoneycombTracingEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}

	if cfg.UseRedisLock && params.RedisPassword == "" {
		log.Errorf("redis password not set. use FITTRACK_REDIS_PASS")
	}
	if cfg.StoreDriver == config.StorePostgres && params.PostgresPassword == "" {
		log.Warnln("postgres password not set. use FITTRACK_POSTGRES_PASS")
	}
	if !params.HoneycombTracingEnabled {
		log.Debugln("honeycomb tracing disabled")
	} else if os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
		params.VersionInfo = versionInfo
	}

	return params
}

// tryGetLastCommitHash assumes the binary runs from within the repo
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
