package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/lifecycle"
	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
)

// loadRequest loads the request of the path
func (s *Server) loadRequest(c *gin.Context) (*schema.BloodRequest, bool) {
	id, ok := uuidParam(c, "id", errorRequestNotFound)
	if !ok {
		return nil, false
	}

	r, err := s.store.GetRequest(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return nil, false
	} else if shouldInterupt(err, c) {
		return nil, false
	}

	return r, true
}

func checkTransition(c *gin.Context, r *schema.BloodRequest, to schema.RequestStatus) bool {
	if err := lifecycle.Check(r.Status, to); err != nil {
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		return false
	}
	return true
}

// requestFor loads the request of the path and checks it can move to the
// given status
func (s *Server) requestFor(c *gin.Context, to schema.RequestStatus) (*schema.BloodRequest, bool) {
	r, ok := s.loadRequest(c)
	if !ok || !checkTransition(c, r, to) {
		return nil, false
	}
	return r, true
}

// abortWithStoreError answers the errors a guarded update may return
func abortWithStoreError(c *gin.Context, err error) {
	switch err {
	case store.ErrStateConflict:
		abortWithEncoding(c, http.StatusConflict, errorStateConflict, err)
	case store.ErrAssignmentExists:
		abortWithEncoding(c, http.StatusConflict, errorAssignmentExists, err)
	default:
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
			return
		}
		shouldInterupt(err, c)
	}
}

func (s *Server) approveRequest(c *gin.Context) {
	actor := actorOf(c)
	if !actor.IsAdmin() {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return
	}

	r, ok := s.requestFor(c, schema.RequestApproved)
	if !ok {
		return
	}

	approved, err := s.store.ApproveRequest(r.ID, *actor.AdminID, s.now())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	responseOK(c, approved)
}

// assignRequest assigns a volunteer or a donor to an approved request
func (s *Server) assignRequest(c *gin.Context) {
	var params struct {
		Type       schema.AssignmentType `json:"type" binding:"required,oneof=donor volunteer"`
		AssigneeID uuid.UUID             `json:"assigneeId" binding:"required"`
		Notes      string                `json:"notes" binding:"max=1000"`
	}

	if !actorOf(c).IsAdmin() {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return
	}

	if !bindJSON(c, &params) {
		return
	}

	r, ok := s.requestFor(c, lifecycle.AssignmentTarget(params.Type))
	if !ok {
		return
	}

	s.assign(c, r, params.Type, params.AssigneeID, params.Notes)
}

func (s *Server) cancelRequest(c *gin.Context) {
	logger := log.WithField("api", "cancelRequest")

	var params struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}

	if !bindJSON(c, &params) {
		return
	}

	r, ok := s.requestFor(c, schema.RequestCancelled)
	if !ok {
		return
	}

	cancelled, err := s.store.CancelRequest(r.ID, params.Reason, s.now())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if cancelled.AssignedVolunteerID != nil {
		v, err := s.store.GetVolunteer(*cancelled.AssignedVolunteerID)
		if err != nil {
			logger.WithError(err).Error("cannot query volunteer of the request")
		} else {
			s.notify(v.ProfileID, &cancelled.ID, schema.NotificationCancelled, map[string]interface{}{
				"TrackingID": cancelled.TrackingID,
				"Reason":     params.Reason,
			})
		}
	}

	responseOK(c, cancelled)
}
