package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"bookcatalog/logger"
)

// Store provides typed access to one books collection.
type Store struct {
	coll *mongo.Collection
	log  *slog.Logger
}

// NewStore returns a Store over the named collection. A nil log disables
// store-level debug logging.
func NewStore(db *mongo.Database, collection string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Store{
		coll: db.Collection(collection),
		log:  log.With(logger.Component("catalog"), logger.Collection(collection)),
	}
}

// ListOptions shapes a List call. A nil Filter matches everything, a nil
// Sort leaves server order, and Skip/Limit of zero are not applied.
type ListOptions struct {
	Filter bson.D
	Sort   bson.D
	Skip   int64
	Limit  int64
}

// FindByGenre returns all records with the given genre, projected down to
// title, author and price.
func (s *Store) FindByGenre(ctx context.Context, genre string) ([]BookSummary, error) {
	cursor, err := s.coll.Find(ctx, FilterByGenre(genre),
		options.Find().SetProjection(summaryProjection()))
	if err != nil {
		return nil, fmt.Errorf("find by genre %q: %w", genre, err)
	}

	var books []BookSummary
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode genre results: %w", err)
	}

	s.log.DebugContext(ctx, "found books by genre",
		slog.String("genre", genre), logger.Count("matched", int64(len(books))))

	return books, nil
}

// MultiplyPrices multiplies the price of every record in the given genre by
// factor and returns the number of records modified.
//
// Not idempotent: each invocation compounds on the previous one. Callers
// running this against live data repeatedly must reseed between runs.
func (s *Store) MultiplyPrices(ctx context.Context, genre string, factor float64) (int64, error) {
	result, err := s.coll.UpdateMany(ctx, FilterByGenre(genre), priceMultiplyUpdate(factor))
	if err != nil {
		return 0, fmt.Errorf("multiply prices: %w", err)
	}

	s.log.DebugContext(ctx, "multiplied prices",
		slog.String("genre", genre),
		slog.Float64("factor", factor),
		logger.Count("modified", result.ModifiedCount))

	return result.ModifiedCount, nil
}

// DeleteBefore removes every record published before year and returns the
// number deleted.
func (s *Store) DeleteBefore(ctx context.Context, year int32) (int64, error) {
	result, err := s.coll.DeleteMany(ctx, FilterPublishedBefore(year))
	if err != nil {
		return 0, fmt.Errorf("delete before %d: %w", year, err)
	}

	s.log.DebugContext(ctx, "deleted old books",
		slog.Int("year", int(year)), logger.Count("deleted", result.DeletedCount))

	return result.DeletedCount, nil
}

// List returns a filtered, sorted, paginated slice of full records.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Book, error) {
	filter := opts.Filter
	if filter == nil {
		filter = bson.D{}
	}

	findOpts := options.Find()
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	var books []Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode list results: %w", err)
	}

	return books, nil
}

// SortedByPrice returns the full record set ordered by price.
func (s *Store) SortedByPrice(ctx context.Context, ascending bool) ([]Book, error) {
	return s.List(ctx, ListOptions{Sort: SortBy("price", ascending)})
}

// AvgPriceByAuthor groups all records by author.
func (s *Store) AvgPriceByAuthor(ctx context.Context, limit int64) ([]GroupStat, error) {
	return s.aggregate(ctx, avgPricePipeline("$author", limit))
}

// AvgPriceByGenre groups all records by genre.
func (s *Store) AvgPriceByGenre(ctx context.Context, limit int64) ([]GroupStat, error) {
	return s.aggregate(ctx, avgPricePipeline("$genre", limit))
}

// AvgPriceByDecade groups all records by publication decade, derived
// arithmetically from published_year.
func (s *Store) AvgPriceByDecade(ctx context.Context, limit int64) ([]GroupStat, error) {
	return s.aggregate(ctx, avgPricePipeline(decadeExpr(), limit))
}

func (s *Store) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]GroupStat, error) {
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	var stats []GroupStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode aggregation results: %w", err)
	}

	return stats, nil
}

// Count returns the number of records matching filter; a nil filter counts
// the whole collection.
func (s *Store) Count(ctx context.Context, filter bson.D) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}

	return count, nil
}
