package lifecycle

import (
	"fmt"
	"time"

	"github.com/lifeline-bd/lifeline-api/schema"
)

// ErrInvalidTransition is returned when a request is asked to move along an
// edge that does not exist in the status graph
type ErrInvalidTransition struct {
	From schema.RequestStatus
	To   schema.RequestStatus
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot move a request from %s to %s", e.From, e.To)
}

// transitions is the forward-only status graph. Cancellation is added for every
// non-terminal state in init.
var transitions = map[schema.RequestStatus][]schema.RequestStatus{
	schema.RequestSubmitted: {schema.RequestApproved},
	schema.RequestApproved:  {schema.RequestVolunteerAssigned, schema.RequestDonorAssigned},
	// a volunteer or a donor may be replaced after a rejection, which keeps the
	// request in place
	schema.RequestVolunteerAssigned: {schema.RequestVolunteerAssigned, schema.RequestDonorAssigned},
	schema.RequestDonorAssigned:     {schema.RequestDonorAssigned, schema.RequestDonorConfirmed},
	schema.RequestDonorConfirmed:    {schema.RequestInProgress, schema.RequestCompleted},
	schema.RequestInProgress:        {schema.RequestCompleted},
}

func init() {
	for from := range transitions {
		transitions[from] = append(transitions[from], schema.RequestCancelled)
	}
}

// CanTransition reports whether the edge from -> to exists
func CanTransition(from, to schema.RequestStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Next returns the statuses reachable from the given status
func Next(from schema.RequestStatus) []schema.RequestStatus {
	next := make([]schema.RequestStatus, len(transitions[from]))
	copy(next, transitions[from])
	return next
}

// Check returns ErrInvalidTransition if the edge does not exist
func Check(from, to schema.RequestStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition{From: from, To: to}
	}
	return nil
}

// Changes returns the column updates for moving a request into the given
// status at time t, including the timestamp column of that status
func Changes(to schema.RequestStatus, t time.Time) map[string]interface{} {
	changes := map[string]interface{}{
		"status": to,
	}

	switch to {
	case schema.RequestApproved:
		changes["approved_at"] = t
	case schema.RequestVolunteerAssigned, schema.RequestDonorAssigned:
		changes["assigned_at"] = t
	case schema.RequestDonorConfirmed:
		changes["donor_confirmed_at"] = t
	case schema.RequestInProgress:
		changes["in_progress_at"] = t
	case schema.RequestCompleted:
		changes["completed_at"] = t
	case schema.RequestCancelled:
		changes["cancelled_at"] = t
	}

	return changes
}

// Apply moves an in-memory request along an edge and stamps the transition time
func Apply(r *schema.BloodRequest, to schema.RequestStatus, t time.Time) error {
	if err := Check(r.Status, to); err != nil {
		return err
	}

	r.Status = to
	switch to {
	case schema.RequestApproved:
		r.ApprovedAt = &t
	case schema.RequestVolunteerAssigned, schema.RequestDonorAssigned:
		r.AssignedAt = &t
	case schema.RequestDonorConfirmed:
		r.DonorConfirmedAt = &t
	case schema.RequestInProgress:
		r.InProgressAt = &t
	case schema.RequestCompleted:
		r.CompletedAt = &t
	case schema.RequestCancelled:
		r.CancelledAt = &t
	}
	return nil
}

// AssignmentTarget returns the request status an assignment of the given type leads to
func AssignmentTarget(t schema.AssignmentType) schema.RequestStatus {
	if t == schema.AssignmentVolunteer {
		return schema.RequestVolunteerAssigned
	}
	return schema.RequestDonorAssigned
}
