package discovery

// Visible decides whether a viewer may see an event. Both planners enforce
// the same rules: PUBLIC is open to everyone, creators always see their own
// events, FRIENDS requires the creator to list the viewer as a friend, and
// anonymous viewers see only PUBLIC and boosted events. LINK and PRIVATE
// events are never discoverable through search.
//
// Friendship edges are always written mutually, so checking the viewer's
// friend set is equivalent to checking the creator's.
func Visible(visibility, createdBy, viewerID string, creatorIsFriend, boosted bool) bool {
	if viewerID == "" {
		return visibility == "PUBLIC" || boosted
	}
	if createdBy == viewerID {
		return true
	}
	switch visibility {
	case "PUBLIC":
		return true
	case "FRIENDS":
		return creatorIsFriend
	default:
		return false
	}
}
