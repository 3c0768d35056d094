package schema

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentType string

const (
	AssignmentDonor     AssignmentType = "donor"
	AssignmentVolunteer AssignmentType = "volunteer"
)

func (t AssignmentType) Valid() bool {
	return t == AssignmentDonor || t == AssignmentVolunteer
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentCompleted AssignmentStatus = "completed"
)

// Active reports whether the assignment still occupies its slot on the request
func (s AssignmentStatus) Active() bool {
	return s == AssignmentPending || s == AssignmentAccepted
}

// Assignment links a request to one donor or volunteer
type Assignment struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primary_key"`
	RequestID   uuid.UUID        `json:"requestId" gorm:"type:uuid;not null;index"`
	AssigneeID  uuid.UUID        `json:"assigneeId" gorm:"type:uuid;not null;index"`
	Type        AssignmentType   `json:"type" gorm:"type:varchar(16);not null"`
	AssignedBy  uuid.UUID        `json:"assignedBy" gorm:"type:uuid;not null"`
	Status      AssignmentStatus `json:"status" gorm:"type:varchar(16);not null" sql:"default:'pending'"`
	Notes       string           `json:"notes,omitempty"`
	RespondedAt *time.Time       `json:"respondedAt,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Assignee is either a donor or a volunteer, discriminated by Type
type Assignee struct {
	Type      AssignmentType
	Donor     *Donor
	Volunteer *Volunteer
}

// ID returns the id of whichever side of the union is set
func (a Assignee) ID() uuid.UUID {
	switch a.Type {
	case AssignmentDonor:
		if a.Donor != nil {
			return a.Donor.ID
		}
	case AssignmentVolunteer:
		if a.Volunteer != nil {
			return a.Volunteer.ID
		}
	}
	return uuid.Nil
}

// ProfileID returns the profile behind the assignee, used for notifications
func (a Assignee) ProfileID() uuid.UUID {
	switch a.Type {
	case AssignmentDonor:
		if a.Donor != nil {
			return a.Donor.ProfileID
		}
	case AssignmentVolunteer:
		if a.Volunteer != nil {
			return a.Volunteer.ProfileID
		}
	}
	return uuid.Nil
}
