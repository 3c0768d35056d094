package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifeline-bd/lifeline-api/schema"
)

func (s *LifelineStore) GetDonor(id uuid.UUID) (*schema.Donor, error) {
	var d schema.Donor
	if err := s.ormDB.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *LifelineStore) GetVolunteer(id uuid.UUID) (*schema.Volunteer, error) {
	var v schema.Volunteer
	if err := s.ormDB.Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// RestoreDonorAvailability marks donors available again once their deferral
// window has elapsed. It returns the number of donors restored.
func (s *LifelineStore) RestoreDonorAvailability(now time.Time) (int64, error) {
	result := s.ormDB.Model(&schema.Donor{}).
		Where("is_available = ? AND last_donation_date IS NOT NULL AND last_donation_date <= ?", false, now.Add(-schema.DonationDeferral)).
		Update("is_available", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
