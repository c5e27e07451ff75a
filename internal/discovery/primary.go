package discovery

import (
	"context"
	"fmt"

	"backend-citybeat/internal/db"
)

// PrimaryPlanner runs the whole pipeline as a single PostGIS query:
// visibility filtering, the radius-or-boosted candidate check, geography
// distance, friendship annotations, and score ordering.
type PrimaryPlanner struct {
	db      db.Querier
	weights Weights
}

func NewPrimaryPlanner(q db.Querier, w Weights) *PrimaryPlanner {
	return &PrimaryPlanner{db: q, weights: w}
}

// The viewer id arrives as text, empty for anonymous requests. NULLIF maps
// the empty string to NULL and the ::uuid cast is required on every use:
// without it the parameter resolves to text and comparisons against the uuid
// id columns fail to type-check at parse time.
var primaryQuery = fmt.Sprintf(`
SELECT e.id, e.created_by, u.name, u.username, e.title, e.category, e.address,
       e.lat, e.lng, e.starts_at, e.ends_at, e.visibility, e.is_18_plus, e.is_21_plus,
       ST_Distance(e.location, ST_SetSRID(ST_MakePoint($1,$2), 4326)::geography) AS meters,
       (p.event_id IS NOT NULL) AS boosted,
       (vf.friend_id IS NOT NULL) AS friend_host,
       COALESCE(fg.cnt, 0) AS friend_going,
       (CASE WHEN p.event_id IS NOT NULL THEN $6::float8 ELSE 0 END
        - $7::float8 * LN(ST_Distance(e.location, ST_SetSRID(ST_MakePoint($1,$2), 4326)::geography) + 1)
        - $8::float8 * ABS(EXTRACT(EPOCH FROM (e.starts_at - $4::timestamptz)) / 3600.0)) AS score
FROM events e
JOIN users u ON u.id = e.created_by
LEFT JOIN LATERAL (
	SELECT pr.event_id FROM promotions pr
	WHERE pr.event_id = e.id AND pr.status = 'ACTIVE' AND pr.ends_at > $4
	LIMIT 1
) p ON TRUE
LEFT JOIN friendships cf ON cf.user_id = e.created_by AND cf.friend_id = NULLIF($3,'')::uuid
LEFT JOIN friendships vf ON vf.user_id = NULLIF($3,'')::uuid AND vf.friend_id = e.created_by
LEFT JOIN (
	SELECT r.event_id, COUNT(*) AS cnt
	FROM rsvps r
	JOIN friendships f ON f.user_id = NULLIF($3,'')::uuid AND f.friend_id = r.user_id
	WHERE r.status = 'GOING'
	GROUP BY r.event_id
) fg ON fg.event_id = e.id
WHERE e.ends_at > $4
  AND (ST_DWithin(e.location, ST_SetSRID(ST_MakePoint($1,$2), 4326)::geography, $5)
       OR p.event_id IS NOT NULL)
  AND (CASE WHEN NULLIF($3,'')::uuid IS NULL
            THEN (e.visibility = 'PUBLIC' OR p.event_id IS NOT NULL)
            ELSE (e.visibility = 'PUBLIC'
                  OR e.created_by = NULLIF($3,'')::uuid
                  OR (e.visibility = 'FRIENDS' AND cf.friend_id IS NOT NULL))
       END)
ORDER BY score DESC, e.id
LIMIT %d
`, maxResults)

func (p *PrimaryPlanner) Plan(ctx context.Context, q Query) ([]RankedEvent, error) {
	rows, err := p.db.Query(ctx, primaryQuery,
		q.Lng, q.Lat, q.ViewerID, q.Now, q.RadiusMeters,
		p.weights.BoostScore, p.weights.DistanceWeight, p.weights.TimeWeight)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []RankedEvent
	for rows.Next() {
		var ev RankedEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedBy, &ev.CreatorName, &ev.CreatorUsername,
			&ev.Title, &ev.Category, &ev.Address, &ev.Lat, &ev.Lng,
			&ev.StartsAt, &ev.EndsAt, &ev.Visibility, &ev.Is18Plus, &ev.Is21Plus,
			&ev.Meters, &ev.IsBoosted, &ev.IsFriendHost, &ev.FriendGoingCount, &ev.Score); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
