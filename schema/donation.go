package schema

import (
	"time"

	"github.com/google/uuid"
)

// Donation is a completed transfer of blood from a donor for a request
type Donation struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	RequestID    uuid.UUID  `json:"requestId" gorm:"type:uuid;not null;index"`
	DonorID      uuid.UUID  `json:"donorId" gorm:"type:uuid;not null;index"`
	AssignmentID uuid.UUID  `json:"assignmentId" gorm:"type:uuid;unique_index;not null"`
	UnitsDonated int        `json:"unitsDonated" gorm:"not null"`
	DonatedAt    time.Time  `json:"donatedAt"`
	Notes        string     `json:"notes,omitempty"`
	VerifiedBy   *uuid.UUID `json:"verifiedBy,omitempty" gorm:"type:uuid"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type NotificationType string

const (
	NotificationAssigned  NotificationType = "assignment_created"
	NotificationResponded NotificationType = "assignment_responded"
	NotificationCompleted NotificationType = "donation_completed"
	NotificationCancelled NotificationType = "request_cancelled"
)

// Notification is an in-app message for a profile
type Notification struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key"`
	ProfileID uuid.UUID        `json:"profileId" gorm:"type:uuid;not null;index"`
	RequestID *uuid.UUID       `json:"requestId,omitempty" gorm:"type:uuid"`
	Type      NotificationType `json:"type" gorm:"type:varchar(32);not null"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
