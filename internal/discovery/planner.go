package discovery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Planner produces a ranked, visibility-filtered event list for a query.
// Two implementations exist: the PostGIS primary planner and the in-process
// fallback planner.
type Planner interface {
	Plan(ctx context.Context, q Query) ([]RankedEvent, error)
}

// maxResults bounds the output of both planners.
const maxResults = 50

// IsCapabilityError reports whether an error from the primary planner means
// the geospatial engine is unavailable or misconfigured, rather than a plain
// store failure. Only capability errors divert the request to the fallback
// planner.
func IsCapabilityError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "42883", // undefined_function: PostGIS functions missing
		"42704", // undefined_object: geography type not installed
		"42703", // undefined_column: location column never provisioned
		"0A000", // feature_not_supported
		"XX000": // internal_error: malformed geometry
		return true
	}
	return false
}
