package catalog

import (
	"context"
	"fmt"

	"bookcatalog/logger"
)

// Seed inserts the given records and returns the number inserted.
func (s *Store) Seed(ctx context.Context, books []Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}

	docs := make([]any, len(books))
	for i, b := range books {
		docs[i] = b
	}

	result, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("seed books: %w", err)
	}

	s.log.DebugContext(ctx, "seeded books", logger.Count("inserted", int64(len(result.InsertedIDs))))

	return len(result.InsertedIDs), nil
}

// Drop removes the collection entirely, indexes included.
func (s *Store) Drop(ctx context.Context) error {
	if err := s.coll.Drop(ctx); err != nil {
		return fmt.Errorf("drop collection: %w", err)
	}
	return nil
}

// SampleBooks is the fixture set used by cmd/seed. Authors repeat so the
// author aggregation has multi-book buckets, genres span five values, and
// two titles predate 1950 so the delete step has something to remove.
func SampleBooks() []Book {
	return []Book{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Price: 14.99, PublishedYear: 1937, InStock: true},
		{Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Genre: "Fantasy", Price: 18.50, PublishedYear: 1954, InStock: true},
		{Title: "A Game of Thrones", Author: "George R.R. Martin", Genre: "Fantasy", Price: 22.00, PublishedYear: 1996, InStock: true},
		{Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genre: "Fantasy", Price: 19.99, PublishedYear: 2007, InStock: false},
		{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 16.25, PublishedYear: 1965, InStock: true},
		{Title: "Neuromancer", Author: "William Gibson", Genre: "Science Fiction", Price: 13.75, PublishedYear: 1984, InStock: true},
		{Title: "Snow Crash", Author: "Neal Stephenson", Genre: "Science Fiction", Price: 15.00, PublishedYear: 1992, InStock: false},
		{Title: "Nineteen Eighty-Four", Author: "George Orwell", Genre: "Dystopian", Price: 11.50, PublishedYear: 1949, InStock: true},
		{Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", Price: 12.00, PublishedYear: 1932, InStock: true},
		{Title: "The Handmaid's Tale", Author: "Margaret Atwood", Genre: "Dystopian", Price: 14.25, PublishedYear: 1985, InStock: true},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", Price: 9.99, PublishedYear: 1813, InStock: true},
		{Title: "Outlander", Author: "Diana Gabaldon", Genre: "Romance", Price: 17.80, PublishedYear: 1991, InStock: false},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Classic", Price: 13.00, PublishedYear: 1960, InStock: true},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Classic", Price: 10.50, PublishedYear: 1925, InStock: true},
	}
}
