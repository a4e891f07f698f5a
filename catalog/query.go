package catalog

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// FilterByGenre matches records whose genre equals the given value.
func FilterByGenre(genre string) bson.D {
	return bson.D{{Key: "genre", Value: genre}}
}

// FilterInStock matches records by stock status.
func FilterInStock(inStock bool) bson.D {
	return bson.D{{Key: "in_stock", Value: inStock}}
}

// FilterPublishedBefore matches records published strictly before year.
func FilterPublishedBefore(year int32) bson.D {
	return bson.D{{Key: "published_year", Value: bson.D{{Key: "$lt", Value: year}}}}
}

// SortBy builds a single-field sort document.
func SortBy(field string, ascending bool) bson.D {
	order := 1
	if !ascending {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

// summaryProjection limits reads to the BookSummary fields; _id is
// suppressed explicitly since the server includes it by default.
func summaryProjection() bson.D {
	return bson.D{
		{Key: "_id", Value: 0},
		{Key: "title", Value: 1},
		{Key: "author", Value: 1},
		{Key: "price", Value: 1},
	}
}

func priceMultiplyUpdate(factor float64) bson.D {
	return bson.D{{Key: "$mul", Value: bson.D{{Key: "price", Value: factor}}}}
}

// avgPricePipeline groups the full record set by groupKey, computing the
// average price and record count per bucket, sorted by average price
// descending and limited.
func avgPricePipeline(groupKey any, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: groupKey},
			{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avg_price", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// decadeExpr buckets published_year into its decade:
// year - (year mod 10), e.g. 1997 -> 1990.
func decadeExpr() bson.D {
	return bson.D{{Key: "$subtract", Value: bson.A{
		"$published_year",
		bson.D{{Key: "$mod", Value: bson.A{"$published_year", 10}}},
	}}}
}
