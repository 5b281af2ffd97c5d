package booking

import "github.com/pitchside/turf-booking-backend/turf"

// transitionRule names the actors permitted to perform one status transition.
type transitionRule struct {
	player bool
	owner  bool
}

// transitions is the full lifecycle table. Absent entries are illegal
// transitions regardless of actor; cancelled is terminal.
var transitions = map[Status]map[Status]transitionRule{
	StatusPending: {
		StatusConfirmed: {owner: true},
		StatusCancelled: {player: true, owner: true},
	},
	StatusConfirmed: {
		StatusCancelled: {player: true, owner: true},
	},
}

// AllowedTransition reports whether from -> to is legal for any actor.
func AllowedTransition(from, to Status) bool {
	_, ok := transitions[from][to]
	return ok
}

// CanTransition reports whether userID may move b from its current status to
// target. It assumes AllowedTransition already holds for the pair.
func CanTransition(b Booking, t turf.Turf, userID string, target Status) bool {
	rule, ok := transitions[b.Status][target]

	if !ok {
		return false
	}

	if rule.player && userID == b.UserID {
		return true
	}

	if rule.owner && userID == t.OwnerID {
		return true
	}

	return false
}
