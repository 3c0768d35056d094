package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/lifecycle"
	"github.com/lifeline-bd/lifeline-api/schema"
)

var activeAssignmentStatuses = []schema.AssignmentStatus{
	schema.AssignmentPending,
	schema.AssignmentAccepted,
}

// CreateAssignment inserts an assignment and moves the request from the given
// status into the status the assignment type leads to. Only one active
// assignment of each type is allowed per request.
func (s *LifelineStore) CreateAssignment(a *schema.Assignment, from schema.RequestStatus, at time.Time) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Status = schema.AssignmentPending

	return s.transaction(func(tx *gorm.DB) error {
		var active int
		if err := tx.Model(&schema.Assignment{}).
			Where("request_id = ? AND type = ? AND status IN (?)", a.RequestID, a.Type, activeAssignmentStatuses).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrAssignmentExists
		}

		changes := lifecycle.Changes(lifecycle.AssignmentTarget(a.Type), at)
		if a.Type == schema.AssignmentVolunteer {
			changes["assigned_volunteer_id"] = a.AssigneeID
		}
		if err := guardedUpdate(tx, &schema.BloodRequest{}, changes,
			"id = ? AND status = ?", a.RequestID, from); err != nil {
			return err
		}

		if err := tx.Create(a).Error; err != nil {
			return err
		}

		if a.Type == schema.AssignmentVolunteer {
			return tx.Model(&schema.Volunteer{}).Where("id = ?", a.AssigneeID).
				Updates(map[string]interface{}{
					"requests_handled": gorm.Expr("requests_handled + 1"),
					"success_rate":     gorm.Expr("donations_facilitated::float / (requests_handled + 1)"),
				}).Error
		}

		return nil
	})
}

func (s *LifelineStore) GetAssignment(id uuid.UUID) (*schema.Assignment, error) {
	var a schema.Assignment
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ResolveAssignee looks up the donor or volunteer behind an assignee id
func (s *LifelineStore) ResolveAssignee(t schema.AssignmentType, id uuid.UUID) (*schema.Assignee, error) {
	assignee := schema.Assignee{Type: t}

	switch t {
	case schema.AssignmentDonor:
		d, err := s.GetDonor(id)
		if err != nil {
			return nil, err
		}
		assignee.Donor = d
	case schema.AssignmentVolunteer:
		v, err := s.GetVolunteer(id)
		if err != nil {
			return nil, err
		}
		assignee.Volunteer = v
	default:
		return nil, gorm.ErrRecordNotFound
	}

	return &assignee, nil
}

// RespondToAssignment accepts or rejects a pending assignment. Accepting a
// donor assignment confirms the donor on the request. Rejecting a volunteer
// assignment releases the request from that volunteer.
func (s *LifelineStore) RespondToAssignment(a *schema.Assignment, accept bool, notes string, at time.Time) error {
	status := schema.AssignmentRejected
	if accept {
		status = schema.AssignmentAccepted
	}

	changes := map[string]interface{}{
		"status":       status,
		"responded_at": at,
	}
	if notes != "" {
		changes["notes"] = notes
	}

	err := s.transaction(func(tx *gorm.DB) error {
		if err := guardedUpdate(tx, &schema.Assignment{}, changes,
			"id = ? AND status = ?", a.ID, schema.AssignmentPending); err != nil {
			return err
		}

		switch {
		case accept && a.Type == schema.AssignmentDonor:
			return guardedUpdate(tx, &schema.BloodRequest{}, lifecycle.Changes(schema.RequestDonorConfirmed, at),
				"id = ? AND status = ?", a.RequestID, schema.RequestDonorAssigned)
		case !accept && a.Type == schema.AssignmentVolunteer:
			return tx.Model(&schema.BloodRequest{}).
				Where("id = ? AND assigned_volunteer_id = ?", a.RequestID, a.AssigneeID).
				Updates(map[string]interface{}{"assigned_volunteer_id": nil}).Error
		}

		return nil
	})
	if err != nil {
		return err
	}

	a.Status = status
	a.RespondedAt = &at
	if notes != "" {
		a.Notes = notes
	}
	return nil
}

// StartTransit moves a confirmed request in progress and stores the planned
// route when one is given. An existing route of the request is replaced.
func (s *LifelineStore) StartTransit(a *schema.Assignment, route *schema.Route, at time.Time) error {
	return s.transaction(func(tx *gorm.DB) error {
		if err := guardedUpdate(tx, &schema.BloodRequest{}, lifecycle.Changes(schema.RequestInProgress, at),
			"id = ? AND status = ?", a.RequestID, schema.RequestDonorConfirmed); err != nil {
			return err
		}

		if route == nil {
			return nil
		}

		var existing schema.Route
		err := tx.Where("request_id = ?", a.RequestID).First(&existing).Error
		switch {
		case err == nil:
			route.ID = existing.ID
			route.CreatedAt = existing.CreatedAt
		case gorm.IsRecordNotFoundError(err):
			if route.ID == uuid.Nil {
				route.ID = uuid.New()
			}
		default:
			return err
		}

		return tx.Save(route).Error
	})
}
