package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/lifecycle"
	"github.com/lifeline-bd/lifeline-api/schema"
)

// activeStatuses are the statuses of requests shown on the public map
var activeStatuses = []schema.RequestStatus{
	schema.RequestSubmitted,
	schema.RequestApproved,
	schema.RequestVolunteerAssigned,
	schema.RequestDonorAssigned,
	schema.RequestDonorConfirmed,
	schema.RequestInProgress,
}

// CreateRequest inserts a submitted blood request. ErrTrackingIDTaken is
// returned when the tracking id collides with an existing one.
func (s *LifelineStore) CreateRequest(r *schema.BloodRequest) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Status = schema.RequestSubmitted

	if err := s.ormDB.Create(r).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrTrackingIDTaken
		}
		return err
	}
	return nil
}

func (s *LifelineStore) GetRequest(id uuid.UUID) (*schema.BloodRequest, error) {
	var r schema.BloodRequest
	if err := s.ormDB.Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *LifelineStore) GetRequestByTrackingID(trackingID string) (*schema.BloodRequest, error) {
	var r schema.BloodRequest
	if err := s.ormDB.Where("tracking_id = ?", trackingID).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListActiveRequests returns the non-terminal requests matching the filter,
// the most urgent first
func (s *LifelineStore) ListActiveRequests(filter schema.MarkerFilter) ([]schema.BloodRequest, error) {
	requests := []schema.BloodRequest{}

	q := s.ormDB.Where("status IN (?)", activeStatuses)
	if filter.BloodGroup != "" {
		q = q.Where("blood_group = ?", filter.BloodGroup)
	}
	if filter.Urgency != "" {
		q = q.Where("urgency = ?", filter.Urgency)
	}
	if b := filter.Bounds; b != nil {
		q = q.Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
	}

	if err := q.Order("is_emergency DESC, needed_by ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveRequest moves a submitted request to approved
func (s *LifelineStore) ApproveRequest(id, adminID uuid.UUID, at time.Time) (*schema.BloodRequest, error) {
	changes := lifecycle.Changes(schema.RequestApproved, at)
	changes["approved_by"] = adminID

	if err := guardedUpdate(s.ormDB, &schema.BloodRequest{}, changes,
		"id = ? AND status = ?", id, schema.RequestSubmitted); err != nil {
		return nil, err
	}

	return s.GetRequest(id)
}

// CancelRequest cancels a request in any non-terminal status
func (s *LifelineStore) CancelRequest(id uuid.UUID, reason string, at time.Time) (*schema.BloodRequest, error) {
	changes := lifecycle.Changes(schema.RequestCancelled, at)
	changes["cancel_reason"] = reason

	err := s.transaction(func(tx *gorm.DB) error {
		if err := guardedUpdate(tx, &schema.BloodRequest{}, changes,
			"id = ? AND status IN (?)", id, activeStatuses); err != nil {
			return err
		}

		// open assignments are closed along with the request
		return tx.Model(&schema.Assignment{}).
			Where("request_id = ? AND status IN (?)", id, []schema.AssignmentStatus{schema.AssignmentPending, schema.AssignmentAccepted}).
			Updates(map[string]interface{}{
				"status":       schema.AssignmentRejected,
				"responded_at": at,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRequest(id)
}
