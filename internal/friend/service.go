package friend

import (
	"context"
	"errors"
	"strings"

	"backend-citybeat/internal/db"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrSelfFriend = errors.New("cannot friend yourself")
	ErrIdentifier = errors.New("identifier (email or username) required")
)

type Service struct {
	db db.Querier
}

func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

// Add creates a mutual friendship between the caller and the user matching
// identifier (email or username). Both directed edges are written by a single
// statement, so a crash or a concurrent duplicate request can never leave a
// half-created relationship.
func (s *Service) Add(ctx context.Context, userID, identifier string) (Friend, error) {
	identifier = strings.TrimSpace(identifier)
	if len(identifier) < 2 {
		return Friend{}, ErrIdentifier
	}

	row := s.db.QueryRow(ctx, `
		SELECT id, email, name, username FROM users
		WHERE email = $1 OR username = $1
	`, strings.ToLower(identifier))

	var target Friend
	if err := row.Scan(&target.ID, &target.Email, &target.Name, &target.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Friend{}, ErrNotFound
		}
		return Friend{}, err
	}
	if target.ID == userID {
		return Friend{}, ErrSelfFriend
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO friendships (user_id, friend_id)
		VALUES ($1,$2),($2,$1)
		ON CONFLICT DO NOTHING
	`, userID, target.ID)
	if err != nil {
		return Friend{}, err
	}
	return target, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Friend, error) {
	rows, err := s.db.Query(ctx, `
		SELECT u.id, u.email, u.name, u.username
		FROM friendships f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = $1
		ORDER BY u.username
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []Friend
	for rows.Next() {
		var f Friend
		if err := rows.Scan(&f.ID, &f.Email, &f.Name, &f.Username); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}
