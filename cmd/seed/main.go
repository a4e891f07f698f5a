// Command seed drops the configured books collection and inserts the sample
// fixture set, giving the explorer a known starting state. Run it before
// every bookcatalog run: the explorer's price update compounds and its
// delete step removes records.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookcatalog/catalog"
	"bookcatalog/config"
	"bookcatalog/logger"
	"bookcatalog/mongodb"
)

type seedConfig struct {
	Mongo mongodb.Config

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

	var cfg seedConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)

	client, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
			log.Error("failed to disconnect from MongoDB", logger.Error(err))
		}
	}()

	store := catalog.NewStore(client.Database(cfg.Database), cfg.Collection, log)

	if err := store.Drop(ctx); err != nil {
		return err
	}

	inserted, err := store.Seed(ctx, catalog.SampleBooks())
	if err != nil {
		return err
	}

	fmt.Printf("🌱 seeded %d books into %s.%s\n", inserted, cfg.Database, cfg.Collection)
	return nil
}
