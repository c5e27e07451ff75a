package event

import "time"

type Event struct {
	ID          string    `json:"id"`
	CreatedBy   string    `json:"created_by"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Visibility  string    `json:"visibility"`
	Is18Plus    bool      `json:"is_18_plus"`
	Is21Plus    bool      `json:"is_21_plus"`
	CoverURL    string    `json:"cover_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" validate:"required"`
	Address     string     `json:"address" validate:"required"`
	Lat         *float64   `json:"lat"`
	Lng         *float64   `json:"lng"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=PUBLIC FRIENDS PRIVATE LINK"`
	Is18Plus    bool       `json:"is_18_plus"`
	Is21Plus    bool       `json:"is_21_plus"`
	CoverURL    string     `json:"cover_url"`
}

type RSVP struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=GOING INTERESTED NOT_GOING"`
}
