package promotion

import (
	"context"
	"errors"

	"backend-citybeat/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotOwner      = errors.New("only the event creator can promote it")
	ErrTimeOrder     = errors.New("ends_at must be after starts_at")
	ErrBadRadius     = errors.New("radius must be positive")
)

type Service struct {
	db db.Querier
}

func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

// Create writes an ACTIVE promotion for one of the caller's events. A
// promotion counts toward ranking only while its status is ACTIVE and its
// ends_at lies in the future, so an expired row needs no status transition.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Promotion, error) {
	if req.RadiusMiles <= 0 {
		return Promotion{}, ErrBadRadius
	}
	if !req.EndsAt.After(*req.StartsAt) {
		return Promotion{}, ErrTimeOrder
	}

	var createdBy string
	err := s.db.QueryRow(ctx, `
		SELECT created_by FROM events WHERE id=$1
	`, req.EventID).Scan(&createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Promotion{}, ErrEventNotFound
		}
		return Promotion{}, err
	}
	if createdBy != userID {
		return Promotion{}, ErrNotOwner
	}

	promo := Promotion{
		ID:          uuid.NewString(),
		EventID:     req.EventID,
		CreatedBy:   userID,
		RadiusMiles: req.RadiusMiles,
		BudgetCents: req.BudgetCents,
		Status:      "ACTIVE",
		StartsAt:    *req.StartsAt,
		EndsAt:      *req.EndsAt,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO promotions (id, event_id, created_by, radius_miles, budget_cents, status, starts_at, ends_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, promo.ID, promo.EventID, promo.CreatedBy, promo.RadiusMiles,
		promo.BudgetCents, promo.Status, promo.StartsAt, promo.EndsAt)
	if err := row.Scan(&promo.CreatedAt); err != nil {
		return Promotion{}, err
	}
	return promo, nil
}

// ListForEvent returns the promotions attached to an event, newest first.
func (s *Service) ListForEvent(ctx context.Context, eventID string) ([]Promotion, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, event_id, created_by, radius_miles, budget_cents, status, starts_at, ends_at, created_at
		FROM promotions
		WHERE event_id=$1
		ORDER BY created_at DESC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(&p.ID, &p.EventID, &p.CreatedBy, &p.RadiusMiles,
			&p.BudgetCents, &p.Status, &p.StartsAt, &p.EndsAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}
