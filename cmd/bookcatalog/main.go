// Command bookcatalog connects to MongoDB and runs the catalog explorer
// sequence against the configured books collection, printing each result.
// Seed the collection first with cmd/seed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/catalog"
	"bookcatalog/config"
	"bookcatalog/explorer"
	"bookcatalog/logger"
	"bookcatalog/mongodb"
)

type appConfig struct {
	Mongo mongodb.Config

	AppName    string `env:"APP_NAME" envDefault:"bookcatalog"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	Database   string `env:"MONGODB_DATABASE" envDefault:"bookstore"`
	Collection string `env:"MONGODB_COLLECTION" envDefault:"books"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)

	client, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	fmt.Println("✅ connected to MongoDB")

	// Release the connection exactly once, success or failure.
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
		defer cancel()

		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("failed to disconnect from MongoDB", logger.Error(err))
			return
		}
		fmt.Println("🔌 connection closed")
	}()

	store := catalog.NewStore(client.Database(cfg.Database), cfg.Collection, log)
	runner := explorer.NewRunner(store, os.Stdout, log)

	start := time.Now()
	if err := runner.Run(ctx); err != nil {
		log.Error("explorer run failed", logger.Error(err))
		return err
	}

	log.Info("explorer run finished",
		logger.Database(cfg.Database),
		logger.Collection(cfg.Collection),
		logger.Elapsed(start))

	return nil
}
