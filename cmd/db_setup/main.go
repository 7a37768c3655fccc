package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"
)

// creates the liftlog tables, safe to run more than once
func main() {
	fmt.Println("starting db setup ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDB,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("LIFTLOG_DB_PASS"),
	})
	if err != nil {
		fmt.Printf("db pool: %s\n", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := db.ApplySchema(ctx, dbPool); err != nil {
		fmt.Printf("db setup failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("\ndb setup completed")
}
