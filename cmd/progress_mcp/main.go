// Package main runs the progress MCP server over stdio (for local AI assistant use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/logging"
	"github.com/2beens/liftlog/internal/progress"
	progressmcp "github.com/2beens/liftlog/internal/progress/mcp"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout belongs to the MCP protocol
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToConsole:  true,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Console:       os.Stderr,
		Environment:   cfg.Environment,
	})

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDB,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("LIFTLOG_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	server := progressmcp.NewServer(newProgressService(dbPool))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

// newProgressService reads names straight from postgres. Workouts are written by the
// backend process, whose cache invalidations never reach this one, so a names cache
// here would serve stale lists.
func newProgressService(dbPool *pgxpool.Pool) *progress.Service {
	return progress.NewService(
		progressStore(dbPool),
		log.WithField("component", "progress-mcp"),
		nil,
	)
}

func progressStore(dbPool *pgxpool.Pool) progress.Store {
	return progress.NewRepo(dbPool)
}
