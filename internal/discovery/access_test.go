package discovery

import "testing"

func TestVisible(t *testing.T) {
	cases := []struct {
		name            string
		visibility      string
		createdBy       string
		viewerID        string
		creatorIsFriend bool
		boosted         bool
		want            bool
	}{
		{"public to anyone", "PUBLIC", "host", "viewer", false, false, true},
		{"public to anonymous", "PUBLIC", "host", "", false, false, true},
		{"own private event", "PRIVATE", "host", "host", false, false, true},
		{"own friends event", "FRIENDS", "host", "host", false, false, true},
		{"friends event with edge", "FRIENDS", "host", "viewer", true, false, true},
		{"friends event without edge", "FRIENDS", "host", "viewer", false, false, false},
		{"private to stranger", "PRIVATE", "host", "viewer", false, false, false},
		{"private boosted to signed-in stranger", "PRIVATE", "host", "viewer", false, true, false},
		{"link not discoverable", "LINK", "host", "viewer", false, false, false},
		{"anonymous sees boosted", "FRIENDS", "host", "", false, true, true},
		{"anonymous blocked from friends event", "FRIENDS", "host", "", false, false, false},
		{"anonymous blocked from private", "PRIVATE", "host", "", false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Visible(tc.visibility, tc.createdBy, tc.viewerID, tc.creatorIsFriend, tc.boosted)
			if got != tc.want {
				t.Fatalf("Visible() = %v, want %v", got, tc.want)
			}
		})
	}
}
