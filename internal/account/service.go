package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"backend-citybeat/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmptyPatch    = errors.New("provide name or username to update")
)

type Service struct {
	db db.Querier
}

func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

func (s *Service) Me(ctx context.Context, userID string) (Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, name, username FROM users WHERE id=$1
	`, userID)
	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (Profile, error) {
	if patch.Name == "" && patch.Username == "" {
		return Profile{}, ErrEmptyPatch
	}

	row := s.db.QueryRow(ctx, `
		UPDATE users
		SET name = COALESCE(NULLIF($2,''), name),
		    username = COALESCE(NULLIF($3,''), username),
		    updated_at = NOW()
		WHERE id=$1
		RETURNING id, email, name, username
	`, userID, patch.Name, strings.ToLower(patch.Username))

	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Username); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Profile{}, ErrUsernameTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

// HostCard loads the public profile of an event host. Only PUBLIC and LINK
// events appear on the card regardless of who is looking.
func (s *Service) HostCard(ctx context.Context, hostID, viewerID string, now time.Time) (HostCard, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, username FROM users WHERE id=$1
	`, hostID)
	var card HostCard
	if err := row.Scan(&card.ID, &card.Name, &card.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return HostCard{}, ErrNotFound
		}
		return HostCard{}, err
	}

	if viewerID != "" && viewerID != hostID {
		err := s.db.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM friendships WHERE user_id=$1 AND friend_id=$2
			)
		`, viewerID, hostID).Scan(&card.IsFriend)
		if err != nil {
			return HostCard{}, err
		}
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, title, category, address, starts_at, ends_at
		FROM events
		WHERE created_by=$1 AND visibility IN ('PUBLIC','LINK') AND ends_at > $2
		ORDER BY starts_at ASC
		LIMIT 3
	`, hostID, now)
	if err != nil {
		return HostCard{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var ev HostEvent
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Category, &ev.Address, &ev.StartsAt, &ev.EndsAt); err != nil {
			return HostCard{}, err
		}
		card.UpcomingEvents = append(card.UpcomingEvents, ev)
	}
	return card, rows.Err()
}

// IsPremium reports whether the user holds any active premium subscription.
// Premium drives the maximum allowed search radius.
func (s *Service) IsPremium(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var premium bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE user_id=$1 AND status='ACTIVE' AND tier='PREMIUM'
		)
	`, userID).Scan(&premium)
	return premium, err
}
