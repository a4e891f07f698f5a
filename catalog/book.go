// Package catalog implements the book catalog store: typed access to a
// single MongoDB collection of book records, including filtered and
// paginated reads, bulk updates, aggregations, index management, and
// query-plan inspection.
package catalog

import "go.mongodb.org/mongo-driver/v2/bson"

// Book is a record in the books collection. The schema is owned by the
// database; these tags only describe the shape this tool reads and writes.
type Book struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string        `bson:"title" json:"title"`
	Author        string        `bson:"author" json:"author"`
	Genre         string        `bson:"genre" json:"genre"`
	Price         float64       `bson:"price" json:"price"`
	PublishedYear int32         `bson:"published_year" json:"published_year"`
	InStock       bool          `bson:"in_stock" json:"in_stock"`
}

// BookSummary is the projected shape returned by FindByGenre.
type BookSummary struct {
	Title  string  `bson:"title" json:"title"`
	Author string  `bson:"author" json:"author"`
	Price  float64 `bson:"price" json:"price"`
}

// GroupStat is one bucket of an aggregation result. Key is the group _id:
// an author or genre string, or an int32 decade.
type GroupStat struct {
	Key      any     `bson:"_id" json:"key"`
	AvgPrice float64 `bson:"avg_price" json:"avg_price"`
	Count    int64   `bson:"count" json:"count"`
}

// IndexInfo describes one index on the collection.
type IndexInfo struct {
	Name string `bson:"name" json:"name"`
	Keys bson.D `bson:"key" json:"keys"`
}
