// Package main runs the adherence MCP server over stdio, so an assistant can
// read a lifter's adherence report and workout history.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/history"
	adherencemcp "github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/routines"
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | docker]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	secrets, err := config.LoadSecrets(context.Background())
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	// metrics are not served from here
	metricsManager := metrics.NewManager("fittrack", "mcp", prometheus.NewRegistry())

	historyRepo := history.NewRepo(dbPool)
	reports := dashboard.NewService(
		historyRepo,
		routines.NewRepo(dbPool),
		cfg.DashboardCacheSizeMB,
		metricsManager,
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()
	go followUpdates(ctx, dashboard.NewNotifier(rdb), reports)

	server := adherencemcp.NewServer(reports, historyRepo, nil)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

const updatesRetryBackoff = 5 * time.Second

type updatesListener interface {
	Listen(ctx context.Context, onUpdate func(userID uuid.UUID)) error
}

type reportInvalidator interface {
	Invalidate(userID uuid.UUID)
}

// followUpdates drops cached reports when the service records a workout or
// changes a routine, like the service instances do.
func followUpdates(ctx context.Context, listener updatesListener, reports reportInvalidator) {
	dashboard.Follow(ctx, listener, updatesRetryBackoff, func(userID uuid.UUID) {
		log.Tracef("invalidating adherence report of %s", userID)
		reports.Invalidate(userID)
	})
}
