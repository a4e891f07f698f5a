// Package mongodb provides MongoDB client initialization and health checking
// for the catalog explorer.
//
// It wraps the official MongoDB Go driver with application-level retry logic
// optimized for hosted deployments, particularly MongoDB Atlas, where cold
// starts (5-8 seconds) and brief network interruptions could otherwise cause
// startup failures. Both New and NewWithDatabase retry the initial connection
// and verify it with a Ping before returning.
//
// Basic usage:
//
//	import (
//		"context"
//		"log"
//
//		"bookcatalog/config"
//		"bookcatalog/mongodb"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		var cfg mongodb.Config
//		config.MustLoad(&cfg)
//
//		client, err := mongodb.New(ctx, cfg)
//		if err != nil {
//			log.Fatal("failed to connect to MongoDB:", err)
//		}
//		defer client.Disconnect(ctx)
//
//		// Or get a database handle directly
//		db, err := mongodb.NewWithDatabase(ctx, cfg, "bookstore")
//		if err != nil {
//			log.Fatal(err)
//		}
//		_ = db.Collection("books")
//	}
//
// # Configuration
//
// Configuration is handled through environment variables via the Config
// struct. Defaults are tuned for MongoDB Atlas:
//
//	MONGODB_URL                 (required)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_WRITES        (default: true)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
//
// # Errors
//
//	ErrFailedToConnectToMongo - all retry attempts exhausted
//	ErrHealthcheckFailed      - health check ping failed
package mongodb
