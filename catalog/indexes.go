package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bookcatalog/logger"
)

// EnsureIndexes creates the indexes the explorer queries rely on: a
// single-field index on genre and a compound index on author plus
// published_year (newest first). Creation is a no-op for indexes that
// already exist. Returns the driver-assigned index names.
func (s *Store) EnsureIndexes(ctx context.Context) ([]string, error) {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "genre", Value: 1}}},
		{Keys: bson.D{
			{Key: "author", Value: 1},
			{Key: "published_year", Value: -1},
		}},
	}

	names, err := s.coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	s.log.DebugContext(ctx, "ensured indexes", logger.Count("indexes", int64(len(names))))

	return names, nil
}

// ListIndexes returns the name and key spec of every index on the
// collection, including the default _id index.
func (s *Store) ListIndexes(ctx context.Context) ([]IndexInfo, error) {
	cursor, err := s.coll.Indexes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list indexes: %w", err)
	}

	var indexes []IndexInfo
	if err := cursor.All(ctx, &indexes); err != nil {
		return nil, fmt.Errorf("decode index list: %w", err)
	}

	return indexes, nil
}
