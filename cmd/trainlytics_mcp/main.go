// Package main runs the trainlytics MCP server over stdio, for local agent
// clients. The gateway also serves the same tools at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/trainlytics/internal/activity"
	"github.com/2beens/trainlytics/internal/benchpress"
	"github.com/2beens/trainlytics/internal/config"
	"github.com/2beens/trainlytics/internal/db"
	"github.com/2beens/trainlytics/internal/logging"
	"github.com/2beens/trainlytics/internal/store"
	"github.com/2beens/trainlytics/internal/tools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
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
	logging.Setup(logging.LoggerSetupParams{
		ServiceName:   "trainlytics-mcp",
		Environment:   cfg.Environment,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Console:       os.Stderr,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("TRAINLYTICS_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	var publisher interface {
		Publish(ctx context.Context, entry activity.Entry) error
		Close() error
	} = activity.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = activity.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorf("close activity publisher: %s", err)
		}
	}()

	bp := benchpress.NewService(benchpress.ServiceParams{
		Users:                 store.NewUsersRepo(dbPool),
		Workouts:              store.NewWorkoutsRepo(dbPool),
		Groups:                store.NewGroupsRepo(dbPool),
		Goals:                 store.NewGoalsRepo(dbPool),
		CoachFetchConcurrency: cfg.CoachFetchConcurrency,
	})
	act := activity.NewService(store.NewActivityRepo(dbPool), publisher, nil, nil)

	server := tools.NewServer(bp, act)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
