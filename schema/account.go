package schema

import (
	"time"

	"github.com/google/uuid"
)

// DonationDeferral is the minimum gap between two whole blood donations
const DonationDeferral = 90 * 24 * time.Hour

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
	RoleDonor     Role = "donor"
)

// Profile is an authenticated user. The ID is the user id issued by the auth provider.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email     string    `json:"email" gorm:"unique_index;not null"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Donor struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	ProfileID        uuid.UUID  `json:"profileId" gorm:"type:uuid;unique_index;not null"`
	BloodGroup       BloodGroup `json:"bloodGroup" gorm:"type:varchar(3);not null;index"`
	IsAvailable      bool       `json:"isAvailable"`
	TotalDonations   int        `json:"totalDonations"`
	LastDonationDate *time.Time `json:"lastDonationDate,omitempty"`
	District         string     `json:"district,omitempty"`
	Division         string     `json:"division,omitempty"`
	Latitude         float64    `json:"latitude,omitempty"`
	Longitude        float64    `json:"longitude,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// NextEligibleDate returns the earliest time the donor may donate again. A donor
// who never donated is eligible immediately and nil is returned.
func (d Donor) NextEligibleDate() *time.Time {
	if d.LastDonationDate == nil {
		return nil
	}
	next := d.LastDonationDate.Add(DonationDeferral)
	return &next
}

// IsEligible reports whether the deferral window has elapsed at the given time
func (d Donor) IsEligible(now time.Time) bool {
	next := d.NextEligibleDate()
	return next == nil || !now.Before(*next)
}

type Volunteer struct {
	ID                   uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	ProfileID            uuid.UUID `json:"profileId" gorm:"type:uuid;unique_index;not null"`
	IsActive             bool      `json:"isActive"`
	District             string    `json:"district,omitempty"`
	RequestsHandled      int       `json:"requestsHandled"`
	DonationsFacilitated int       `json:"donationsFacilitated"`
	SuccessRate          float64   `json:"successRate"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type Admin struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	ProfileID uuid.UUID `json:"profileId" gorm:"type:uuid;unique_index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Actor is the caller of a request, resolved once per request from the session
type Actor struct {
	Profile     Profile    `json:"profile"`
	DonorID     *uuid.UUID `json:"donorId,omitempty"`
	VolunteerID *uuid.UUID `json:"volunteerId,omitempty"`
	AdminID     *uuid.UUID `json:"adminId,omitempty"`
}

func (a Actor) Role() Role {
	return a.Profile.Role
}

func (a Actor) IsAdmin() bool {
	return a.Profile.Role == RoleAdmin && a.AdminID != nil
}

// AssigneeID returns the role specific id the actor is assigned under for the
// given assignment type
func (a Actor) AssigneeID(t AssignmentType) *uuid.UUID {
	switch t {
	case AssignmentDonor:
		return a.DonorID
	case AssignmentVolunteer:
		return a.VolunteerID
	}
	return nil
}

// Owns reports whether the actor is the legitimate assignee of an assignment
func (a Actor) Owns(assignment *Assignment) bool {
	id := a.AssigneeID(assignment.Type)
	return id != nil && *id == assignment.AssigneeID
}

// Handles reports whether the actor is the volunteer in charge of a request.
// The assigned volunteer is released when they reject the assignment.
func (a Actor) Handles(r *BloodRequest) bool {
	return a.VolunteerID != nil && r.AssignedVolunteerID != nil && *r.AssignedVolunteerID == *a.VolunteerID
}
