package mongodb

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when all connection retry
	// attempts are exhausted.
	ErrFailedToConnectToMongo = errors.New("failed to connect to MongoDB")

	// ErrHealthcheckFailed is returned when the health check ping fails.
	ErrHealthcheckFailed = errors.New("MongoDB healthcheck failed")
)
