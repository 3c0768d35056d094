package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/lifeline-bd/lifeline-api/schema"
)

var (
	ErrStateConflict     = fmt.Errorf("the record is not in the expected state")
	ErrTrackingIDTaken   = fmt.Errorf("tracking id is already taken")
	ErrAssignmentExists  = fmt.Errorf("an active assignment of this type already exists")
	ErrProfileRegistered = fmt.Errorf("profile is already registered")
)

// LifelineCore is the main datastore of lifeline
type LifelineCore interface {
	Ping() error

	// Profile
	RegisterProfile(p *schema.Profile, donor *schema.Donor, volunteer *schema.Volunteer) error
	GetActor(profileID uuid.UUID) (*schema.Actor, error)
	GetProfile(id uuid.UUID) (*schema.Profile, error)

	// Request
	CreateRequest(r *schema.BloodRequest) error
	GetRequest(id uuid.UUID) (*schema.BloodRequest, error)
	GetRequestByTrackingID(trackingID string) (*schema.BloodRequest, error)
	ListActiveRequests(filter schema.MarkerFilter) ([]schema.BloodRequest, error)
	ApproveRequest(id, adminID uuid.UUID, at time.Time) (*schema.BloodRequest, error)
	CancelRequest(id uuid.UUID, reason string, at time.Time) (*schema.BloodRequest, error)

	// Assignment
	CreateAssignment(a *schema.Assignment, from schema.RequestStatus, at time.Time) error
	GetAssignment(id uuid.UUID) (*schema.Assignment, error)
	ResolveAssignee(t schema.AssignmentType, id uuid.UUID) (*schema.Assignee, error)
	RespondToAssignment(a *schema.Assignment, accept bool, notes string, at time.Time) error
	StartTransit(a *schema.Assignment, route *schema.Route, at time.Time) error

	// Donor & volunteer
	GetDonor(id uuid.UUID) (*schema.Donor, error)
	GetVolunteer(id uuid.UUID) (*schema.Volunteer, error)
	RestoreDonorAvailability(now time.Time) (int64, error)

	// Donation
	CompleteDonation(a *schema.Assignment, d *schema.Donation) error
	GetDonation(id uuid.UUID) (*schema.Donation, error)
	VerifyDonation(id, verifierID uuid.UUID, at time.Time) (*schema.Donation, error)

	// Route
	GetRoute(id uuid.UUID) (*schema.Route, error)
	GetRouteByRequest(requestID uuid.UUID) (*schema.Route, error)
	SaveRouteProgress(r *schema.Route) error
	SetRouteShare(id uuid.UUID, token *string, expiresAt *time.Time) error

	// Notification
	CreateNotification(n *schema.Notification) error
	ListNotifications(profileID uuid.UUID, limit int) ([]schema.Notification, error)
	MarkNotificationRead(id, profileID uuid.UUID) error

	// Analytics
	AnalyticsDashboard(since time.Time) (*schema.DashboardStats, error)
	AnalyticsTrends(since time.Time) ([]schema.DailyTrend, error)
	AnalyticsBloodGroups(since time.Time) ([]schema.BloodGroupDemand, error)
	AnalyticsVolunteers(limit int) ([]schema.VolunteerRank, error)
	AnalyticsGeographic(since time.Time) ([]schema.DistrictCount, error)
	AnalyticsResponseTimes(since time.Time) (*schema.ResponseTimes, error)
}

// LifelineStore is an implementation of LifelineCore
type LifelineStore struct {
	ormDB *gorm.DB
}

func NewLifelineStore(ormDB *gorm.DB) *LifelineStore {
	return &LifelineStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *LifelineStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// transaction runs fn in a database transaction. The transaction is rolled
// back when fn returns an error.
func (s *LifelineStore) transaction(fn func(tx *gorm.DB) error) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// guardedUpdate applies the changes to the rows matched by the conditions and
// returns ErrStateConflict if none matched
func guardedUpdate(db *gorm.DB, model interface{}, changes map[string]interface{}, query string, args ...interface{}) error {
	result := db.Model(model).Where(query, args...).Updates(changes)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStateConflict
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
