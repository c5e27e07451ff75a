package discovery

import "time"

// Query carries the resolved inputs for one nearby search: viewer identity
// (empty for anonymous), center coordinates, effective radius in meters, and
// the query-time clock.
type Query struct {
	ViewerID     string
	Lat          float64
	Lng          float64
	RadiusMeters float64
	Now          time.Time
}

// RankedEvent is an event annotated with the derived fields both planners
// produce: distance from the query center, promotion and friendship flags,
// and the friend attendance count.
type RankedEvent struct {
	ID              string    `json:"id"`
	CreatedBy       string    `json:"created_by"`
	CreatorName     string    `json:"creator_name"`
	CreatorUsername string    `json:"creator_username"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Address         string    `json:"address"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Visibility      string    `json:"visibility"`
	Is18Plus        bool      `json:"is_18_plus"`
	Is21Plus        bool      `json:"is_21_plus"`

	Meters           float64 `json:"meters"`
	IsBoosted        bool    `json:"is_boosted"`
	IsFriendHost     bool    `json:"is_friend_host"`
	FriendGoingCount int     `json:"friend_going_count"`
	Score            float64 `json:"-"`
}
