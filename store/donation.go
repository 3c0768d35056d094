package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/lifecycle"
	"github.com/lifeline-bd/lifeline-api/schema"
)

// CompleteDonation records a donation for an accepted donor assignment in a
// single transaction. The request and the assignment are completed, the donor
// is deferred and the counters of the donor and of the volunteer attached to
// the request are incremented. Completing the same assignment twice returns
// ErrStateConflict.
func (s *LifelineStore) CompleteDonation(a *schema.Assignment, d *schema.Donation) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.RequestID = a.RequestID
	d.DonorID = a.AssigneeID
	d.AssignmentID = a.ID
	at := d.DonatedAt

	return s.transaction(func(tx *gorm.DB) error {
		if err := guardedUpdate(tx, &schema.Assignment{}, map[string]interface{}{
			"status":       schema.AssignmentCompleted,
			"completed_at": at,
		}, "id = ? AND type = ? AND status = ?", a.ID, schema.AssignmentDonor, schema.AssignmentAccepted); err != nil {
			return err
		}

		if err := guardedUpdate(tx, &schema.BloodRequest{}, lifecycle.Changes(schema.RequestCompleted, at),
			"id = ? AND status IN (?)", a.RequestID,
			[]schema.RequestStatus{schema.RequestDonorConfirmed, schema.RequestInProgress}); err != nil {
			return err
		}

		if err := tx.Create(d).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrStateConflict
			}
			return err
		}

		if err := guardedUpdate(tx, &schema.Donor{}, map[string]interface{}{
			"total_donations":    gorm.Expr("total_donations + 1"),
			"last_donation_date": at,
			"is_available":       false,
		}, "id = ?", a.AssigneeID); err != nil {
			return err
		}

		var request schema.BloodRequest
		if err := tx.Select("assigned_volunteer_id").Where("id = ?", a.RequestID).First(&request).Error; err != nil {
			return err
		}
		if request.AssignedVolunteerID != nil {
			if err := tx.Model(&schema.Volunteer{}).Where("id = ?", *request.AssignedVolunteerID).
				Updates(map[string]interface{}{
					"donations_facilitated": gorm.Expr("donations_facilitated + 1"),
					"success_rate":          gorm.Expr("CASE WHEN requests_handled > 0 THEN (donations_facilitated + 1)::float / requests_handled ELSE 0 END"),
				}).Error; err != nil {
				return err
			}
		}

		// the live route, if any, ends with the donation
		return tx.Model(&schema.Route{}).
			Where("request_id = ? AND status <> ?", a.RequestID, schema.RouteCompleted).
			Updates(map[string]interface{}{
				"status":       schema.RouteCompleted,
				"completed_at": at,
			}).Error
	})
}

func (s *LifelineStore) GetDonation(id uuid.UUID) (*schema.Donation, error) {
	var d schema.Donation
	if err := s.ormDB.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// VerifyDonation stamps the verifier of a donation that is not verified yet
func (s *LifelineStore) VerifyDonation(id, verifierID uuid.UUID, at time.Time) (*schema.Donation, error) {
	if err := guardedUpdate(s.ormDB, &schema.Donation{}, map[string]interface{}{
		"verified_by": verifierID,
		"verified_at": at,
	}, "id = ? AND verified_at IS NULL", id); err != nil {
		return nil, err
	}

	return s.GetDonation(id)
}
