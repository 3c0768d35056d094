package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/schema"
)

// completeDonation records the donation of an accepted donor assignment
func (s *Server) completeDonation(c *gin.Context) {
	logger := log.WithField("api", "completeDonation")

	var params struct {
		AssignmentID uuid.UUID `json:"assignmentId" binding:"required"`
		UnitsDonated int       `json:"unitsDonated" binding:"required,min=1,max=10"`
		Notes        string    `json:"notes" binding:"max=1000"`
	}

	if !bindJSON(c, &params) {
		return
	}

	a, err := s.store.GetAssignment(params.AssignmentID)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorAssignmentNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if a.Type != schema.AssignmentDonor || !actorOf(c).Owns(a) {
		abortWithEncoding(c, http.StatusForbidden, errorNotAssignee)
		return
	}

	switch a.Status {
	case schema.AssignmentAccepted:
	case schema.AssignmentCompleted:
		abortWithEncoding(c, http.StatusConflict, errorStateConflict)
		return
	default:
		abortWithEncoding(c, http.StatusConflict, errorAssignmentNotAccepted)
		return
	}

	d := &schema.Donation{
		UnitsDonated: params.UnitsDonated,
		DonatedAt:    s.now(),
		Notes:        params.Notes,
	}

	if err := s.store.CompleteDonation(a, d); err != nil {
		abortWithStoreError(c, err)
		return
	}

	r, err := s.store.GetRequest(a.RequestID)
	if err != nil {
		logger.WithError(err).Error("cannot query request of the donation")
	} else {
		data := map[string]interface{}{"TrackingID": r.TrackingID}
		s.notify(a.AssignedBy, &r.ID, schema.NotificationCompleted, data)

		if r.AssignedVolunteerID != nil {
			if v, err := s.store.GetVolunteer(*r.AssignedVolunteerID); err == nil && v.ProfileID != a.AssignedBy {
				s.notify(v.ProfileID, &r.ID, schema.NotificationCompleted, data)
			}
		}
	}

	responseOK(c, d)
}

// verifyDonation stamps the verifier of a donation. A volunteer may only
// verify the donations of the requests assigned to them.
func (s *Server) verifyDonation(c *gin.Context) {
	id, ok := uuidParam(c, "id", errorDonationNotFound)
	if !ok {
		return
	}

	d, err := s.store.GetDonation(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorDonationNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	actor := actorOf(c)
	if !actor.IsAdmin() {
		r, err := s.store.GetRequest(d.RequestID)
		if shouldInterupt(err, c) {
			return
		}

		if !actor.Handles(r) {
			abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
			return
		}
	}

	if d.VerifiedAt != nil {
		abortWithEncoding(c, http.StatusConflict, errorStateConflict)
		return
	}

	verified, err := s.store.VerifyDonation(d.ID, actor.Profile.ID, s.now())
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	responseOK(c, verified)
}
