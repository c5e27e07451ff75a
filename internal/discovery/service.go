package discovery

import (
	"context"

	"backend-citybeat/internal/db"

	"github.com/rs/zerolog"
)

// Service dispatches nearby queries to the primary planner and recovers
// transparently through the fallback planner when the geospatial engine is
// unavailable. Callers never observe the switch beyond ordering fidelity.
type Service struct {
	primary  Planner
	fallback Planner
	log      zerolog.Logger
}

func NewService(q db.Querier, w Weights, log zerolog.Logger) *Service {
	return &Service{
		primary:  NewPrimaryPlanner(q, w),
		fallback: NewFallbackPlanner(q),
		log:      log,
	}
}

// NewServiceWithPlanners wires explicit planners, used by tests.
func NewServiceWithPlanners(primary, fallback Planner, log zerolog.Logger) *Service {
	return &Service{primary: primary, fallback: fallback, log: log}
}

func (s *Service) Nearby(ctx context.Context, q Query) ([]RankedEvent, error) {
	events, err := s.primary.Plan(ctx, q)
	if err == nil {
		return events, nil
	}
	if !IsCapabilityError(err) {
		return nil, err
	}

	s.log.Warn().Err(err).
		Str("viewer", q.ViewerID).
		Float64("radius_m", q.RadiusMeters).
		Msg("geospatial engine unavailable, using in-process fallback")

	return s.fallback.Plan(ctx, q)
}
