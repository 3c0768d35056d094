package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/schema"
)

// RegisterProfile creates a profile together with its role specific row
func (s *LifelineStore) RegisterProfile(p *schema.Profile, donor *schema.Donor, volunteer *schema.Volunteer) error {
	return s.transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrProfileRegistered
			}
			return err
		}

		if donor != nil {
			if donor.ID == uuid.Nil {
				donor.ID = uuid.New()
			}
			donor.ProfileID = p.ID
			if err := tx.Create(donor).Error; err != nil {
				return err
			}
		}

		if volunteer != nil {
			if volunteer.ID == uuid.Nil {
				volunteer.ID = uuid.New()
			}
			volunteer.ProfileID = p.ID
			if err := tx.Create(volunteer).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *LifelineStore) GetProfile(id uuid.UUID) (*schema.Profile, error) {
	var p schema.Profile
	if err := s.ormDB.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetActor resolves a profile and the role rows attached to it
func (s *LifelineStore) GetActor(profileID uuid.UUID) (*schema.Actor, error) {
	p, err := s.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	actor := schema.Actor{Profile: *p}

	var donor schema.Donor
	if err := s.ormDB.Where("profile_id = ?", profileID).First(&donor).Error; err == nil {
		actor.DonorID = &donor.ID
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	var volunteer schema.Volunteer
	if err := s.ormDB.Where("profile_id = ?", profileID).First(&volunteer).Error; err == nil {
		actor.VolunteerID = &volunteer.ID
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	var admin schema.Admin
	if err := s.ormDB.Where("profile_id = ?", profileID).First(&admin).Error; err == nil {
		actor.AdminID = &admin.ID
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	return &actor, nil
}
