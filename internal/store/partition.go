package store

// guestID is the partition owner for unauthenticated sessions.
const guestID = "guest"

// Key bases for the per-user collections.
const (
	baseBooks    = "books"
	baseGoals    = "goals"
	baseSettings = "settings"
	baseSwipes   = "swipes"
	baseProfile  = "profile"
)

// Partition scopes every store operation to one user's data.
// Callers construct one explicitly per request; there is no ambient
// "current user" inside the store.
type Partition struct {
	userID string
}

// PartitionFor returns the partition for the given user ID.
// An empty ID resolves to the shared guest partition.
func PartitionFor(userID string) Partition {
	if userID == "" {
		userID = guestID
	}
	return Partition{userID: userID}
}

// GuestPartition returns the partition used before sign-in.
func GuestPartition() Partition {
	return Partition{userID: guestID}
}

// UserID returns the owner of this partition.
func (p Partition) UserID() string {
	if p.userID == "" {
		return guestID
	}
	return p.userID
}

// IsGuest reports whether this is the unauthenticated partition.
func (p Partition) IsGuest() bool {
	return p.UserID() == guestID
}

// key builds the storage key for a collection base within this partition.
// Format: {base}:{userID}, e.g. "books:guest" or "books:user-abc123".
func (p Partition) key(base string) string {
	return base + ":" + p.UserID()
}
