package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExplainStats summarizes the server's executionStats explain output for a
// find. Raw holds the complete server response for JSON dumping.
type ExplainStats struct {
	Stage          string
	InputStage     string
	NReturned      int64
	KeysExamined   int64
	DocsExamined   int64
	ExecTimeMillis int64
	Raw            bson.Raw
}

// IndexUsed reports whether the winning plan touched an index.
func (e ExplainStats) IndexUsed() bool {
	return e.Stage == "IXSCAN" || e.InputStage == "IXSCAN"
}

// Explain runs the given find filter through the explain command with
// executionStats verbosity and extracts the headline numbers.
func (s *Store) Explain(ctx context.Context, filter bson.D) (*ExplainStats, error) {
	cmd := bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: s.coll.Name()},
			{Key: "filter", Value: filter},
		}},
		{Key: "verbosity", Value: "executionStats"},
	}

	var raw bson.Raw
	if err := s.coll.Database().RunCommand(ctx, cmd).Decode(&raw); err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	return parseExplain(raw), nil
}

// parseExplain pulls the winning plan stages and execution counters out of
// a raw explain response. Missing fields (older servers, sharded output)
// are left at their zero values rather than treated as errors.
func parseExplain(raw bson.Raw) *ExplainStats {
	stats := &ExplainStats{Raw: raw}

	if v, err := raw.LookupErr("queryPlanner", "winningPlan", "stage"); err == nil {
		stats.Stage, _ = v.StringValueOK()
	}
	if v, err := raw.LookupErr("queryPlanner", "winningPlan", "inputStage", "stage"); err == nil {
		stats.InputStage, _ = v.StringValueOK()
	}

	stats.NReturned = lookupInt64(raw, "executionStats", "nReturned")
	stats.KeysExamined = lookupInt64(raw, "executionStats", "totalKeysExamined")
	stats.DocsExamined = lookupInt64(raw, "executionStats", "totalDocsExamined")
	stats.ExecTimeMillis = lookupInt64(raw, "executionStats", "executionTimeMillis")

	return stats
}

func lookupInt64(raw bson.Raw, path ...string) int64 {
	v, err := raw.LookupErr(path...)
	if err != nil {
		return 0
	}

	n, _ := v.AsInt64OK()
	return n
}
