// Package explorer runs the fixed demonstration sequence over the book
// catalog: filtered reads, a bulk price update, a threshold delete,
// paginated reads, aggregations, index management, full sorts, and
// query-plan comparison. Steps run strictly in order; the first error
// aborts the remainder.
package explorer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"bookcatalog/catalog"
	"bookcatalog/logger"
)

const (
	demoGenre   = "Fantasy"
	secondGenre = "Science Fiction"
	priceFactor = 1.1
	cutoffYear  = int32(1950)
	pageSize    = 5
	topGroups   = 5
)

// Store is the slice of catalog.Store the runner needs. Narrow on purpose
// so the sequence can be unit-tested against a stub.
type Store interface {
	FindByGenre(ctx context.Context, genre string) ([]catalog.BookSummary, error)
	MultiplyPrices(ctx context.Context, genre string, factor float64) (int64, error)
	DeleteBefore(ctx context.Context, year int32) (int64, error)
	List(ctx context.Context, opts catalog.ListOptions) ([]catalog.Book, error)
	AvgPriceByAuthor(ctx context.Context, limit int64) ([]catalog.GroupStat, error)
	AvgPriceByGenre(ctx context.Context, limit int64) ([]catalog.GroupStat, error)
	AvgPriceByDecade(ctx context.Context, limit int64) ([]catalog.GroupStat, error)
	EnsureIndexes(ctx context.Context) ([]string, error)
	ListIndexes(ctx context.Context) ([]catalog.IndexInfo, error)
	SortedByPrice(ctx context.Context, ascending bool) ([]catalog.Book, error)
	Explain(ctx context.Context, filter bson.D) (*catalog.ExplainStats, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
}

// Runner executes the demonstration sequence, printing each result to out.
type Runner struct {
	store Store
	out   io.Writer
	log   *slog.Logger
}

// NewRunner returns a Runner writing human-readable results to out. A nil
// log disables step logging.
func NewRunner(store Store, out io.Writer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		store: store,
		out:   out,
		log:   log.With(logger.Component("explorer")),
	}
}

// Run executes every step in order. The first failing step aborts the rest
// and its error is returned; releasing the connection is the caller's job
// and happens regardless of the outcome.
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"filtered read", r.readByGenre},
		{"price update", r.multiplyPrices},
		{"threshold delete", r.deleteOldBooks},
		{"paginated reads", r.paginatedReads},
		{"aggregations", r.aggregations},
		{"index creation", r.createIndexes},
		{"index listing", r.listIndexes},
		{"price sorts", r.priceSorts},
		{"query plans", r.explainQueries},
	}

	for _, step := range steps {
		r.log.DebugContext(ctx, "running step", slog.String("step", step.name))

		if err := step.fn(ctx); err != nil {
			fmt.Fprintf(r.out, "❌ %s failed: %v\n", step.name, err)
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	fmt.Fprintln(r.out, "🎉 all steps completed")
	return nil
}

func (r *Runner) readByGenre(ctx context.Context) error {
	books, err := r.store.FindByGenre(ctx, demoGenre)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "📚 %s books (%d):\n", demoGenre, len(books))
	for _, b := range books {
		fmt.Fprintf(r.out, "   - %s by %s ($%.2f)\n", b.Title, b.Author, b.Price)
	}

	return nil
}

func (r *Runner) multiplyPrices(ctx context.Context) error {
	// Compounds on every invocation against live data; reseed between runs.
	fmt.Fprintf(r.out, "⚠️  price update is not idempotent: re-running without reseeding compounds %s prices\n", demoGenre)

	modified, err := r.store.MultiplyPrices(ctx, demoGenre, priceFactor)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "✅ multiplied %s prices by %.2f (%d modified)\n", demoGenre, priceFactor, modified)
	return nil
}

func (r *Runner) deleteOldBooks(ctx context.Context) error {
	deleted, err := r.store.DeleteBefore(ctx, cutoffYear)
	if err != nil {
		return err
	}

	remaining, err := r.store.Count(ctx, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "✅ deleted %d books published before %d (%d remaining)\n", deleted, cutoffYear, remaining)
	return nil
}

func (r *Runner) paginatedReads(ctx context.Context) error {
	inStock, err := r.store.List(ctx, catalog.ListOptions{
		Filter: catalog.FilterInStock(true),
		Sort:   catalog.SortBy("price", true),
		Limit:  pageSize,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "📖 first %d in-stock books, cheapest first:\n", pageSize)
	for _, b := range inStock {
		fmt.Fprintf(r.out, "   - %s ($%.2f)\n", b.Title, b.Price)
	}

	recent, err := r.store.List(ctx, catalog.ListOptions{
		Filter: catalog.FilterByGenre(secondGenre),
		Sort:   catalog.SortBy("published_year", false),
		Skip:   1,
		Limit:  pageSize,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "📖 %s books, newest first, skipping the newest:\n", secondGenre)
	for _, b := range recent {
		fmt.Fprintf(r.out, "   - %s (%d)\n", b.Title, b.PublishedYear)
	}

	return nil
}

func (r *Runner) aggregations(ctx context.Context) error {
	groups := []struct {
		label string
		fn    func(context.Context, int64) ([]catalog.GroupStat, error)
	}{
		{"author", r.store.AvgPriceByAuthor},
		{"genre", r.store.AvgPriceByGenre},
		{"decade", r.store.AvgPriceByDecade},
	}

	for _, g := range groups {
		stats, err := g.fn(ctx, topGroups)
		if err != nil {
			return err
		}

		fmt.Fprintf(r.out, "📊 average price by %s:\n", g.label)
		for _, stat := range stats {
			fmt.Fprintf(r.out, "   - %v: $%.2f over %d books\n", stat.Key, stat.AvgPrice, stat.Count)
		}
	}

	return nil
}

func (r *Runner) createIndexes(ctx context.Context) error {
	names, err := r.store.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "✅ created indexes: %v\n", names)
	return nil
}

func (r *Runner) listIndexes(ctx context.Context) error {
	indexes, err := r.store.ListIndexes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "🗂️  indexes on collection (%d):\n", len(indexes))
	for _, idx := range indexes {
		fmt.Fprintf(r.out, "   - %s %v\n", idx.Name, idx.Keys)
	}

	return nil
}

func (r *Runner) priceSorts(ctx context.Context) error {
	for _, dir := range []struct {
		label     string
		ascending bool
	}{
		{"ascending", true},
		{"descending", false},
	} {
		books, err := r.store.SortedByPrice(ctx, dir.ascending)
		if err != nil {
			return err
		}

		fmt.Fprintf(r.out, "💰 books by price, %s:\n", dir.label)
		for _, b := range books {
			fmt.Fprintf(r.out, "   - $%.2f %s\n", b.Price, b.Title)
		}
	}

	return nil
}

func (r *Runner) explainQueries(ctx context.Context) error {
	queries := []struct {
		label  string
		filter bson.D
	}{
		{"indexed field (genre)", catalog.FilterByGenre(demoGenre)},
		{"non-indexed field (in_stock)", catalog.FilterInStock(true)},
	}

	for _, q := range queries {
		stats, err := r.store.Explain(ctx, q.filter)
		if err != nil {
			return err
		}

		marker := "🐢"
		if stats.IndexUsed() {
			marker = "⚡"
		}

		fmt.Fprintf(r.out, "🔎 %s: stage=%s", q.label, stats.Stage)
		if stats.InputStage != "" {
			fmt.Fprintf(r.out, " input=%s", stats.InputStage)
		}
		fmt.Fprintf(r.out, " returned=%d keys=%d docs=%d time=%dms %s\n",
			stats.NReturned, stats.KeysExamined, stats.DocsExamined, stats.ExecTimeMillis, marker)

		// Full server response for side-by-side comparison.
		if len(stats.Raw) > 0 {
			fmt.Fprintf(r.out, "%s\n", stats.Raw.String())
		}
	}

	return nil
}
