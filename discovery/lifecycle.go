package discovery

import (
	"time"

	"github.com/careconnect/charityevents-api/models"
)

// Lifecycle is an event's derived state. It is evaluated fresh on
// every read; nothing is persisted, so an event moves between states
// only through the passage of time or an is_active toggle.
type Lifecycle string

const (
	StatusUpcoming Lifecycle = "upcoming"
	StatusPast     Lifecycle = "past"
	StatusPaused   Lifecycle = "paused"
)

// Classify assigns exactly one lifecycle state. Paused wins over the
// date rules: a deactivated event is paused even if its date is in the
// future. The date comparison is day-level only, with today counting
// as upcoming.
func Classify(isActive bool, eventDate models.Date, now time.Time) Lifecycle {
	if !isActive {
		return StatusPaused
	}
	today := models.DateOf(now)
	if eventDate.Before(today.Time) {
		return StatusPast
	}
	return StatusUpcoming
}
