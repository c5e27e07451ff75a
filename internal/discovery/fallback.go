package discovery

import (
	"context"
	"sort"

	"backend-citybeat/internal/db"
	"backend-citybeat/internal/shared/geo"
)

// candidateFetchLimit bounds the relational pre-fetch. The cap is applied
// after visibility and radius filtering so early-starting out-of-range events
// cannot crowd out matches.
const candidateFetchLimit = 200

// FallbackPlanner re-implements filter, distance, and ordering in process
// using plain relational queries and the haversine distance. It uses no
// geospatial capability at all: results are sorted ascending by distance and
// promotions get no ranking treatment beyond the boosted annotation.
type FallbackPlanner struct {
	db db.Querier
}

func NewFallbackPlanner(q db.Querier) *FallbackPlanner {
	return &FallbackPlanner{db: q}
}

func (p *FallbackPlanner) Plan(ctx context.Context, q Query) ([]RankedEvent, error) {
	candidates, err := p.fetchCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	friends, err := p.friendSet(ctx, q.ViewerID)
	if err != nil {
		return nil, err
	}

	boosted, err := p.boostedSet(ctx, q, candidates)
	if err != nil {
		return nil, err
	}

	var kept []RankedEvent
	for _, ev := range candidates {
		if !Visible(ev.Visibility, ev.CreatedBy, q.ViewerID, friends[ev.CreatedBy], boosted[ev.ID]) {
			continue
		}
		ev.Meters = geo.HaversineMeters(q.Lat, q.Lng, ev.Lat, ev.Lng)
		if ev.Meters > q.RadiusMeters {
			continue
		}
		ev.IsBoosted = boosted[ev.ID]
		ev.IsFriendHost = friends[ev.CreatedBy]
		kept = append(kept, ev)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Meters != kept[j].Meters {
			return kept[i].Meters < kept[j].Meters
		}
		return kept[i].ID < kept[j].ID
	})
	if len(kept) > maxResults {
		kept = kept[:maxResults]
	}

	if err := p.fillFriendGoing(ctx, kept, friends); err != nil {
		return nil, err
	}
	return kept, nil
}

func (p *FallbackPlanner) fetchCandidates(ctx context.Context, q Query) ([]RankedEvent, error) {
	rows, err := p.db.Query(ctx, `
		SELECT e.id, e.created_by, u.name, u.username, e.title, e.category, e.address,
		       e.lat, e.lng, e.starts_at, e.ends_at, e.visibility, e.is_18_plus, e.is_21_plus
		FROM events e
		JOIN users u ON u.id = e.created_by
		WHERE e.ends_at > $1
		ORDER BY e.starts_at ASC
		LIMIT $2
	`, q.Now, candidateFetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []RankedEvent
	for rows.Next() {
		var ev RankedEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedBy, &ev.CreatorName, &ev.CreatorUsername,
			&ev.Title, &ev.Category, &ev.Address, &ev.Lat, &ev.Lng,
			&ev.StartsAt, &ev.EndsAt, &ev.Visibility, &ev.Is18Plus, &ev.Is21Plus); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (p *FallbackPlanner) friendSet(ctx context.Context, viewerID string) (map[string]bool, error) {
	if viewerID == "" {
		return map[string]bool{}, nil
	}
	rows, err := p.db.Query(ctx, `
		SELECT friend_id FROM friendships WHERE user_id = $1
	`, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friends := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		friends[id] = true
	}
	return friends, rows.Err()
}

func (p *FallbackPlanner) boostedSet(ctx context.Context, q Query, candidates []RankedEvent) (map[string]bool, error) {
	if len(candidates) == 0 {
		return map[string]bool{}, nil
	}
	ids := make([]string, len(candidates))
	for i, ev := range candidates {
		ids[i] = ev.ID
	}
	rows, err := p.db.Query(ctx, `
		SELECT DISTINCT event_id FROM promotions
		WHERE status = 'ACTIVE' AND ends_at > $1 AND event_id = ANY($2)
	`, q.Now, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boosted := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		boosted[id] = true
	}
	return boosted, rows.Err()
}

// fillFriendGoing resolves friend attendance with one grouped aggregate over
// the kept event ids, restricted to the viewer's friends. Skipped entirely
// when the viewer has no friends: every count stays zero.
func (p *FallbackPlanner) fillFriendGoing(ctx context.Context, kept []RankedEvent, friends map[string]bool) error {
	if len(kept) == 0 || len(friends) == 0 {
		return nil
	}
	eventIDs := make([]string, len(kept))
	for i, ev := range kept {
		eventIDs[i] = ev.ID
	}
	friendIDs := make([]string, 0, len(friends))
	for id := range friends {
		friendIDs = append(friendIDs, id)
	}

	rows, err := p.db.Query(ctx, `
		SELECT event_id, COUNT(*)
		FROM rsvps
		WHERE status = 'GOING' AND event_id = ANY($1) AND user_id = ANY($2)
		GROUP BY event_id
	`, eventIDs, friendIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return err
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range kept {
		kept[i].FriendGoingCount = counts[kept[i].ID]
	}
	return nil
}
