package entity

import "time"

const (
	// MinRating is the lowest accepted review rating.
	MinRating = 1
	// MaxRating is the highest accepted review rating.
	MaxRating = 5
)

// Review is a rating left by a user on a service. A user may review the same service several times.
type Review struct {
	ID          int64
	ServiceID   int64
	UserID      int64
	Rating      int
	Comment     string
	CreatedAt   time.Time
	AuthorName  string // Read-only, the reviewer's full name.
	ServiceName string // Read-only, the reviewed service name.
}
