package account

import "time"

type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ProfilePatch struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// HostCard is the public view of an event host: identity, whether the viewer
// already friended them, and a short list of upcoming discoverable events.
type HostCard struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Username       string      `json:"username"`
	IsFriend       bool        `json:"is_friend"`
	UpcomingEvents []HostEvent `json:"upcoming_events"`
}

type HostEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Address  string    `json:"address"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}
