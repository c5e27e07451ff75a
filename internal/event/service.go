package event

import (
	"context"
	"errors"
	"time"

	"backend-citybeat/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Coordinates used when neither explicit lat/lng nor a geocodable address is
// available (downtown Orlando, matching the seed data).
const (
	DefaultLat = 28.5383
	DefaultLng = -81.3792
)

// DefaultDuration fills ends_at when the creator only provides a start time.
const DefaultDuration = 3 * time.Hour

var (
	ErrNotFound  = errors.New("event not found")
	ErrTimeOrder = errors.New("ends_at must be after starts_at")
	ErrBadStatus = errors.New("invalid rsvp status")
)

// Geocoder resolves a street address to coordinates. The Mapbox client
// satisfies this; a nil geocoder or a failed lookup falls back to defaults.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

type Service struct {
	db       db.Querier
	geocoder Geocoder
}

func NewService(q db.Querier, g Geocoder) *Service {
	return &Service{db: q, geocoder: g}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Event, error) {
	lat, lng := DefaultLat, DefaultLng
	switch {
	case req.Lat != nil && req.Lng != nil:
		lat, lng = *req.Lat, *req.Lng
	case s.geocoder != nil:
		if gLat, gLng, err := s.geocoder.Geocode(ctx, req.Address); err == nil {
			lat, lng = gLat, gLng
		}
	}

	endsAt := req.StartsAt.Add(DefaultDuration)
	if req.EndsAt != nil {
		endsAt = *req.EndsAt
	}
	if !endsAt.After(req.StartsAt) {
		return Event{}, ErrTimeOrder
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = "PUBLIC"
	}

	ev := Event{
		ID:          uuid.NewString(),
		CreatedBy:   userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Lat:         lat,
		Lng:         lng,
		StartsAt:    req.StartsAt,
		EndsAt:      endsAt,
		Visibility:  visibility,
		Is18Plus:    req.Is18Plus,
		Is21Plus:    req.Is21Plus,
		CoverURL:    req.CoverURL,
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO events (id, created_by, title, description, category, address,
		                    lat, lng, location, starts_at, ends_at, visibility,
		                    is_18_plus, is_21_plus, cover_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,
		        ST_SetSRID(ST_MakePoint($8,$7), 4326)::geography,
		        $9,$10,$11,$12,$13,$14)
		RETURNING created_at
	`, ev.ID, ev.CreatedBy, ev.Title, ev.Description, ev.Category, ev.Address,
		ev.Lat, ev.Lng, ev.StartsAt, ev.EndsAt, ev.Visibility, ev.Is18Plus, ev.Is21Plus, ev.CoverURL)
	if err := row.Scan(&ev.CreatedAt); err != nil {
		return Event{}, err
	}
	return ev, nil
}

func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, created_by, title, description, category, address, lat, lng,
		       starts_at, ends_at, visibility, is_18_plus, is_21_plus, cover_url, created_at
		FROM events WHERE id=$1
	`, id)
	var ev Event
	if err := row.Scan(&ev.ID, &ev.CreatedBy, &ev.Title, &ev.Description, &ev.Category,
		&ev.Address, &ev.Lat, &ev.Lng, &ev.StartsAt, &ev.EndsAt, &ev.Visibility,
		&ev.Is18Plus, &ev.Is21Plus, &ev.CoverURL, &ev.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Event{}, ErrNotFound
		}
		return Event{}, err
	}
	return ev, nil
}

// SetRSVP upserts the caller's RSVP for an event. Re-submitting the same
// status overwrites the prior row, so retries never create duplicates or
// double-count the going total.
func (s *Service) SetRSVP(ctx context.Context, userID, eventID, status string) (RSVP, error) {
	switch status {
	case "GOING", "INTERESTED", "NOT_GOING":
	default:
		return RSVP{}, ErrBadStatus
	}

	rsvp := RSVP{UserID: userID, EventID: eventID, Status: status}
	row := s.db.QueryRow(ctx, `
		INSERT INTO rsvps (user_id, event_id, status)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id, event_id) DO UPDATE
		SET status=EXCLUDED.status, updated_at=NOW()
		RETURNING updated_at
	`, userID, eventID, status)
	if err := row.Scan(&rsvp.UpdatedAt); err != nil {
		return RSVP{}, err
	}
	return rsvp, nil
}

// GoingCount returns the number of GOING RSVPs for an event.
func (s *Service) GoingCount(ctx context.Context, eventID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM rsvps WHERE event_id=$1 AND status='GOING'
	`, eventID).Scan(&count)
	return count, err
}
