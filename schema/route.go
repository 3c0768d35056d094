package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var errJSONBType = errors.New("Type assertion .([]byte) failed.")

// Coordinate is a WGS84 point
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Coordinate) Scan(src interface{}) error {
	source, err := jsonbSource(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(source, c)
}

// Path is an ordered list of coordinates stored as jsonb
type Path []Coordinate

func (p Path) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *Path) Scan(src interface{}) error {
	source, err := jsonbSource(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(source, p)
}

func jsonbSource(src interface{}) ([]byte, error) {
	switch s := src.(type) {
	case []byte:
		return s, nil
	case string:
		return []byte(s), nil
	}
	return nil, errJSONBType
}

type RouteStatus string

const (
	RoutePending   RouteStatus = "pending"
	RouteActive    RouteStatus = "active"
	RouteDeviated  RouteStatus = "deviated"
	RouteCompleted RouteStatus = "completed"
)

// Route is the live path of an assignee travelling to the request location
type Route struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RequestID    uuid.UUID `json:"requestId" gorm:"type:uuid;unique_index;not null"`
	AssignmentID uuid.UUID `json:"assignmentId" gorm:"type:uuid;not null"`

	StartLocation Coordinate  `json:"startLocation" gorm:"type:jsonb;not null"`
	EndLocation   Coordinate  `json:"endLocation" gorm:"type:jsonb;not null"`
	Waypoints     Path        `json:"waypoints" gorm:"type:jsonb;not null;default:'[]'"`
	Geometry      Path        `json:"geometry" gorm:"type:jsonb;not null;default:'[]'"`
	LastPosition  *Coordinate `json:"lastPosition,omitempty" gorm:"type:jsonb"`

	DistanceMeters    float64 `json:"distanceMeters"`
	DurationSeconds   float64 `json:"durationSeconds"`
	RemainingDistance float64 `json:"remainingDistance"`
	RemainingDuration float64 `json:"remainingDuration"`
	Progress          float64 `json:"progress"`
	CurrentStepIndex  int     `json:"currentStepIndex"`
	DeviationCount    int     `json:"deviationCount"`

	Status         RouteStatus `json:"status" gorm:"type:varchar(16);not null" sql:"default:'pending'"`
	CurrentETA     *time.Time  `json:"currentEta,omitempty"`
	StartedAt      *time.Time  `json:"startedAt,omitempty"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
	ShareToken     *string     `json:"-" gorm:"unique_index"`
	ShareExpiresAt *time.Time  `json:"shareExpiresAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShareValid reports whether a share token was issued and has not expired
func (r Route) ShareValid(token string, now time.Time) bool {
	if r.ShareToken == nil || *r.ShareToken != token || token == "" {
		return false
	}
	return r.ShareExpiresAt == nil || now.Before(*r.ShareExpiresAt)
}

// RoutePosition is a single GPS sample of a route. The log is append only.
type RoutePosition struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RouteID    uuid.UUID `json:"routeId" gorm:"type:uuid;not null;index"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Bearing    *float64  `json:"bearing,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

const RoutePositionCollection = "route_positions"
