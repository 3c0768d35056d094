package lifecycle

import (
	"time"

	"github.com/lifeline-bd/lifeline-api/schema"
)

const (
	CriticalWindow = 6 * time.Hour
	UrgentWindow   = 24 * time.Hour
)

// ClassifyUrgency derives the urgency of a request from the time left until it
// is needed. An explicit emergency flag is always critical. The second return
// value is the emergency flag of the request, which is true for every critical request.
func ClassifyUrgency(neededBy, now time.Time, emergency bool) (schema.Urgency, bool) {
	if emergency {
		return schema.UrgencyCritical, true
	}

	left := neededBy.Sub(now)
	switch {
	case left <= CriticalWindow:
		return schema.UrgencyCritical, true
	case left <= UrgentWindow:
		return schema.UrgencyUrgent, false
	default:
		return schema.UrgencyNormal, false
	}
}
