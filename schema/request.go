package schema

import (
	"time"

	"github.com/google/uuid"
)

type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

var BloodGroups = []BloodGroup{
	BloodGroupAPositive, BloodGroupANegative,
	BloodGroupBPositive, BloodGroupBNegative,
	BloodGroupABPositive, BloodGroupABNegative,
	BloodGroupOPositive, BloodGroupONegative,
}

// donorCompatibility maps a recipient blood group to the donor groups it can receive from
var donorCompatibility = map[BloodGroup][]BloodGroup{
	BloodGroupAPositive:  {BloodGroupAPositive, BloodGroupANegative, BloodGroupOPositive, BloodGroupONegative},
	BloodGroupANegative:  {BloodGroupANegative, BloodGroupONegative},
	BloodGroupBPositive:  {BloodGroupBPositive, BloodGroupBNegative, BloodGroupOPositive, BloodGroupONegative},
	BloodGroupBNegative:  {BloodGroupBNegative, BloodGroupONegative},
	BloodGroupABPositive: BloodGroups,
	BloodGroupABNegative: {BloodGroupABNegative, BloodGroupANegative, BloodGroupBNegative, BloodGroupONegative},
	BloodGroupOPositive:  {BloodGroupOPositive, BloodGroupONegative},
	BloodGroupONegative:  {BloodGroupONegative},
}

// Valid reports whether the group is one of the eight ABO/Rh combinations
func (g BloodGroup) Valid() bool {
	_, ok := donorCompatibility[g]
	return ok
}

// CanDonateTo returns true if red cells of the donor group can be given to the recipient group
func CanDonateTo(donor, recipient BloodGroup) bool {
	for _, g := range donorCompatibility[recipient] {
		if g == donor {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
)

var Urgencies = []Urgency{UrgencyCritical, UrgencyUrgent, UrgencyNormal}

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyUrgent, UrgencyNormal:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestSubmitted         RequestStatus = "submitted"
	RequestApproved          RequestStatus = "approved"
	RequestVolunteerAssigned RequestStatus = "volunteer_assigned"
	RequestDonorAssigned     RequestStatus = "donor_assigned"
	RequestDonorConfirmed    RequestStatus = "donor_confirmed"
	RequestInProgress        RequestStatus = "in_progress"
	RequestCompleted         RequestStatus = "completed"
	RequestCancelled         RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is possible
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// BloodRequest is a public blood need submitted by a requester
type BloodRequest struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	TrackingID string    `json:"trackingId" gorm:"unique_index;not null"`

	RequesterName  string `json:"requesterName" gorm:"not null"`
	RequesterPhone string `json:"requesterPhone" gorm:"not null"`
	RequesterEmail string `json:"requesterEmail,omitempty"`

	PatientName     string `json:"patientName" gorm:"not null"`
	PatientAge      int    `json:"patientAge,omitempty"`
	PatientGender   string `json:"patientGender,omitempty"`
	HospitalName    string `json:"hospitalName" gorm:"not null"`
	HospitalAddress string `json:"hospitalAddress,omitempty"`

	BloodGroup  BloodGroup `json:"bloodGroup" gorm:"type:varchar(3);not null;index"`
	UnitsNeeded int        `json:"unitsNeeded" gorm:"not null"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	District  string  `json:"district" gorm:"index"`
	Division  string  `json:"division"`

	NeededBy    time.Time     `json:"neededBy" gorm:"not null"`
	Urgency     Urgency       `json:"urgency" gorm:"type:varchar(16);not null;index"`
	IsEmergency bool          `json:"isEmergency"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(32);not null;index" sql:"default:'submitted'"`
	Notes       string        `json:"notes,omitempty"`

	AssignedVolunteerID *uuid.UUID `json:"assignedVolunteerId,omitempty" gorm:"type:uuid"`
	ApprovedBy          *uuid.UUID `json:"approvedBy,omitempty" gorm:"type:uuid"`
	CancelReason        string     `json:"cancelReason,omitempty"`

	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	AssignedAt       *time.Time `json:"assignedAt,omitempty"`
	DonorConfirmedAt *time.Time `json:"donorConfirmedAt,omitempty"`
	InProgressAt     *time.Time `json:"inProgressAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Location returns the geolocation of the request, which is the destination of
// a live route
func (r BloodRequest) Location() Coordinate {
	return Coordinate{Lat: r.Latitude, Lng: r.Longitude}
}

// MarkerFilter narrows the active requests shown on the public map
type MarkerFilter struct {
	BloodGroup BloodGroup
	Urgency    Urgency
	Bounds     *Bounds
}

// Bounds is a rectangular viewport
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// NewBounds normalizes two opposite corners into a viewport
func NewBounds(lat1, lng1, lat2, lng2 float64) Bounds {
	b := Bounds{MinLat: lat1, MinLng: lng1, MaxLat: lat2, MaxLng: lng2}
	if b.MinLat > b.MaxLat {
		b.MinLat, b.MaxLat = b.MaxLat, b.MinLat
	}
	if b.MinLng > b.MaxLng {
		b.MinLng, b.MaxLng = b.MaxLng, b.MinLng
	}
	return b
}
