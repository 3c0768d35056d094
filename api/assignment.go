package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/geo"
	"github.com/lifeline-bd/lifeline-api/schema"
)

// checkDonor verifies a donor can give blood for the request at the given time
func checkDonor(c *gin.Context, donor *schema.Donor, r *schema.BloodRequest, now time.Time) bool {
	switch {
	case !donor.IsAvailable:
		abortWithEncoding(c, http.StatusConflict, errorDonorUnavailable)
	case !donor.IsEligible(now):
		resp := errorDonorDeferred
		resp.Fields = map[string]string{"nextEligibleDate": donor.NextEligibleDate().Format(time.RFC3339)}
		abortWithEncoding(c, http.StatusConflict, resp)
	case !schema.CanDonateTo(donor.BloodGroup, r.BloodGroup):
		abortWithEncoding(c, http.StatusBadRequest, errorBloodGroupMismatch)
	default:
		return true
	}
	return false
}

// assign creates an assignment of the request for a donor or a volunteer and
// notifies the assignee
func (s *Server) assign(c *gin.Context, r *schema.BloodRequest, t schema.AssignmentType, assigneeID uuid.UUID, notes string) {
	logger := log.WithField("api", "assign")
	now := s.now()

	assignee, err := s.store.ResolveAssignee(t, assigneeID)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorAssigneeNotFound, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	switch t {
	case schema.AssignmentDonor:
		if !checkDonor(c, assignee.Donor, r, now) {
			return
		}
	case schema.AssignmentVolunteer:
		if !assignee.Volunteer.IsActive {
			abortWithEncoding(c, http.StatusConflict, errorVolunteerInactive)
			return
		}
	}

	a := &schema.Assignment{
		RequestID:  r.ID,
		AssigneeID: assignee.ID(),
		Type:       t,
		AssignedBy: actorOf(c).Profile.ID,
		Notes:      notes,
	}

	if err := s.store.CreateAssignment(a, r.Status, now); err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.notify(assignee.ProfileID(), &r.ID, schema.NotificationAssigned, map[string]interface{}{
		"TrackingID": r.TrackingID,
	})
	if err := s.background.NotifyAssignmentCreated(a.ID); err != nil {
		logger.WithError(err).Error("cannot dispatch assignment created notification")
	}

	responseOK(c, a)
}

// assignDonor assigns a donor to a request. Volunteers may only do so for
// the requests assigned to them.
func (s *Server) assignDonor(c *gin.Context) {
	var params struct {
		DonorID uuid.UUID `json:"donorId" binding:"required"`
		Notes   string    `json:"notes" binding:"max=1000"`
	}

	r, ok := s.loadRequest(c)
	if !ok {
		return
	}

	actor := actorOf(c)
	if !actor.IsAdmin() {
		if !actor.Handles(r) {
			abortWithEncoding(c, http.StatusForbidden, errorNotAssignee)
			return
		}
	}

	if !bindJSON(c, &params) {
		return
	}

	if !checkTransition(c, r, schema.RequestDonorAssigned) {
		return
	}

	s.assign(c, r, schema.AssignmentDonor, params.DonorID, params.Notes)
}

// loadOwnAssignment loads the assignment of the path and makes sure the
// caller is its assignee
func (s *Server) loadOwnAssignment(c *gin.Context) (*schema.Assignment, bool) {
	id, ok := uuidParam(c, "id", errorAssignmentNotFound)
	if !ok {
		return nil, false
	}

	a, err := s.store.GetAssignment(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorAssignmentNotFound)
		return nil, false
	} else if shouldInterupt(err, c) {
		return nil, false
	}

	if !actorOf(c).Owns(a) {
		abortWithEncoding(c, http.StatusForbidden, errorNotAssignee)
		return nil, false
	}

	return a, true
}

// respondAssignment lets an assignee accept or reject a pending assignment
func (s *Server) respondAssignment(c *gin.Context) {
	logger := log.WithField("api", "respondAssignment")

	var params struct {
		Accept *bool  `json:"accept" binding:"required"`
		Notes  string `json:"notes" binding:"max=1000"`
	}

	a, ok := s.loadOwnAssignment(c)
	if !ok {
		return
	}

	if !bindJSON(c, &params) {
		return
	}

	if a.Status != schema.AssignmentPending {
		abortWithEncoding(c, http.StatusConflict, errorStateConflict)
		return
	}

	if err := s.store.RespondToAssignment(a, *params.Accept, params.Notes, s.now()); err != nil {
		abortWithStoreError(c, err)
		return
	}

	r, err := s.store.GetRequest(a.RequestID)
	if err != nil {
		logger.WithError(err).Error("cannot query request of the assignment")
	} else {
		s.notify(a.AssignedBy, &r.ID, schema.NotificationResponded, map[string]interface{}{
			"TrackingID": r.TrackingID,
			"Response":   a.Status,
		})
	}

	responseOK(c, a)
}

// startTransit moves a confirmed request in progress. When the donor reports
// a position, a live route toward the request location is planned.
func (s *Server) startTransit(c *gin.Context) {
	logger := log.WithField("api", "startTransit")

	var params struct {
		Latitude  *float64            `json:"latitude" binding:"omitempty,min=-90,max=90"`
		Longitude *float64            `json:"longitude" binding:"omitempty,min=-180,max=180"`
		Waypoints []schema.Coordinate `json:"waypoints"`
	}

	a, ok := s.loadOwnAssignment(c)
	if !ok {
		return
	}

	if a.Type != schema.AssignmentDonor {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return
	}

	if c.Request.ContentLength != 0 && !bindJSON(c, &params) {
		return
	}

	if a.Status != schema.AssignmentAccepted {
		abortWithEncoding(c, http.StatusConflict, errorAssignmentNotAccepted)
		return
	}

	r, err := s.store.GetRequest(a.RequestID)
	if shouldInterupt(err, c) {
		return
	}

	if !checkTransition(c, r, schema.RequestInProgress) {
		return
	}

	now := s.now()

	var route *schema.Route
	if params.Latitude != nil && params.Longitude != nil {
		origin := schema.Coordinate{Lat: *params.Latitude, Lng: *params.Longitude}
		destination := r.Location()

		directions, err := s.plan(c, origin, destination, params.Waypoints)
		if err != nil {
			logger.WithError(err).Warn("directions provider failed, fall back to a straight path")
			directions, _ = geo.NewStraightRouter(s.tracker).Route(c, origin, destination, params.Waypoints)
		}

		eta := now.Add(time.Duration(directions.Duration * float64(time.Second)))
		route = &schema.Route{
			RequestID:         r.ID,
			AssignmentID:      a.ID,
			StartLocation:     origin,
			EndLocation:       destination,
			Waypoints:         params.Waypoints,
			Geometry:          directions.Path,
			DistanceMeters:    directions.Distance,
			DurationSeconds:   directions.Duration,
			RemainingDistance: directions.Distance,
			RemainingDuration: directions.Duration,
			Status:            schema.RoutePending,
			CurrentETA:        &eta,
		}
	}

	if err := s.store.StartTransit(a, route, now); err != nil {
		abortWithStoreError(c, err)
		return
	}

	responseOK(c, gin.H{
		"assignment": a,
		"status":     schema.RequestInProgress,
		"route":      route,
	})
}
