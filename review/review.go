package review

import "time"

// Review is a player's one-time rating of a turf. At most one review exists
// per (turf, user) pair.
type Review struct {
	ID        string    `json:"id"`
	TurfID    string    `json:"turfId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
