package explorer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"bookcatalog/catalog"
	"bookcatalog/explorer"
)

// stubStore records the order of store calls and can fail a chosen method.
type stubStore struct {
	calls    []string
	failOn   string
	failWith error
}

func (s *stubStore) record(name string) error {
	s.calls = append(s.calls, name)
	if s.failOn == name {
		return s.failWith
	}
	return nil
}

func (s *stubStore) FindByGenre(_ context.Context, _ string) ([]catalog.BookSummary, error) {
	if err := s.record("FindByGenre"); err != nil {
		return nil, err
	}
	return []catalog.BookSummary{{Title: "The Hobbit", Author: "J.R.R. Tolkien", Price: 14.99}}, nil
}

func (s *stubStore) MultiplyPrices(_ context.Context, _ string, _ float64) (int64, error) {
	if err := s.record("MultiplyPrices"); err != nil {
		return 0, err
	}
	return 3, nil
}

func (s *stubStore) DeleteBefore(_ context.Context, _ int32) (int64, error) {
	if err := s.record("DeleteBefore"); err != nil {
		return 0, err
	}
	return 2, nil
}

func (s *stubStore) List(_ context.Context, _ catalog.ListOptions) ([]catalog.Book, error) {
	if err := s.record("List"); err != nil {
		return nil, err
	}
	return []catalog.Book{{Title: "Dune", Price: 16.25, PublishedYear: 1965}}, nil
}

func (s *stubStore) AvgPriceByAuthor(_ context.Context, _ int64) ([]catalog.GroupStat, error) {
	if err := s.record("AvgPriceByAuthor"); err != nil {
		return nil, err
	}
	return []catalog.GroupStat{{Key: "J.R.R. Tolkien", AvgPrice: 16.75, Count: 2}}, nil
}

func (s *stubStore) AvgPriceByGenre(_ context.Context, _ int64) ([]catalog.GroupStat, error) {
	if err := s.record("AvgPriceByGenre"); err != nil {
		return nil, err
	}
	return []catalog.GroupStat{{Key: "Fantasy", AvgPrice: 18.87, Count: 4}}, nil
}

func (s *stubStore) AvgPriceByDecade(_ context.Context, _ int64) ([]catalog.GroupStat, error) {
	if err := s.record("AvgPriceByDecade"); err != nil {
		return nil, err
	}
	return []catalog.GroupStat{{Key: int32(1990), AvgPrice: 18.27, Count: 3}}, nil
}

func (s *stubStore) EnsureIndexes(_ context.Context) ([]string, error) {
	if err := s.record("EnsureIndexes"); err != nil {
		return nil, err
	}
	return []string{"genre_1", "author_1_published_year_-1"}, nil
}

func (s *stubStore) ListIndexes(_ context.Context) ([]catalog.IndexInfo, error) {
	if err := s.record("ListIndexes"); err != nil {
		return nil, err
	}
	return []catalog.IndexInfo{
		{Name: "_id_", Keys: bson.D{{Key: "_id", Value: int32(1)}}},
		{Name: "genre_1", Keys: bson.D{{Key: "genre", Value: int32(1)}}},
		{Name: "author_1_published_year_-1"},
	}, nil
}

func (s *stubStore) SortedByPrice(_ context.Context, _ bool) ([]catalog.Book, error) {
	if err := s.record("SortedByPrice"); err != nil {
		return nil, err
	}
	return []catalog.Book{{Title: "Neuromancer", Price: 13.75}}, nil
}

func (s *stubStore) Explain(_ context.Context, _ bson.D) (*catalog.ExplainStats, error) {
	if err := s.record("Explain"); err != nil {
		return nil, err
	}
	return &catalog.ExplainStats{Stage: "COLLSCAN", NReturned: 5, DocsExamined: 12}, nil
}

func (s *stubStore) Count(_ context.Context, _ bson.D) (int64, error) {
	if err := s.record("Count"); err != nil {
		return 0, err
	}
	return 12, nil
}

func TestRunner_StepOrder(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	var out bytes.Buffer

	err := explorer.NewRunner(store, &out, nil).Run(context.Background())
	require.NoError(t, err)

	want := []string{
		"FindByGenre",
		"MultiplyPrices",
		"DeleteBefore",
		"Count",
		"List", "List",
		"AvgPriceByAuthor",
		"AvgPriceByGenre",
		"AvgPriceByDecade",
		"EnsureIndexes",
		"ListIndexes",
		"SortedByPrice", "SortedByPrice",
		"Explain", "Explain",
	}
	assert.Equal(t, want, store.calls)

	assert.Contains(t, out.String(), "🎉 all steps completed")
}

func TestRunner_WarnsAboutNonIdempotentUpdate(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	var out bytes.Buffer

	require.NoError(t, explorer.NewRunner(store, &out, nil).Run(context.Background()))

	assert.Contains(t, out.String(), "not idempotent")
}

func TestRunner_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("index conflict")
	store := &stubStore{failOn: "EnsureIndexes", failWith: boom}
	var out bytes.Buffer

	err := explorer.NewRunner(store, &out, nil).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "index creation")

	// Nothing after the failing step may run.
	assert.Equal(t, "EnsureIndexes", store.calls[len(store.calls)-1])
	assert.NotContains(t, store.calls, "ListIndexes")
	assert.NotContains(t, store.calls, "Explain")

	assert.Contains(t, out.String(), "❌ index creation failed")
	assert.NotContains(t, out.String(), "🎉")
}

func TestRunner_ErrorInFirstStep(t *testing.T) {
	t.Parallel()

	boom := errors.New("network down")
	store := &stubStore{failOn: "FindByGenre", failWith: boom}
	var out bytes.Buffer

	err := explorer.NewRunner(store, &out, nil).Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"FindByGenre"}, store.calls)
}

func TestRunner_PrintsResults(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	var out bytes.Buffer

	require.NoError(t, explorer.NewRunner(store, &out, nil).Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "The Hobbit")
	assert.Contains(t, output, "(3 modified)")
	assert.Contains(t, output, "deleted 2 books")
	assert.Contains(t, output, "average price by author")
	assert.Contains(t, output, "genre_1")
	assert.Contains(t, output, "stage=COLLSCAN")
}
