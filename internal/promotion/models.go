package promotion

import "time"

type Promotion struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	CreatedBy   string    `json:"createdBy"`
	RadiusMiles float64   `json:"radiusMi"`
	BudgetCents int       `json:"budgetCents"`
	Status      string    `json:"status"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateRequest struct {
	EventID     string     `json:"eventId" validate:"required"`
	RadiusMiles float64    `json:"radiusMi" validate:"required"`
	BudgetCents int        `json:"budgetCents"`
	StartsAt    *time.Time `json:"startsAt" validate:"required"`
	EndsAt      *time.Time `json:"endsAt" validate:"required"`
}
