package api

import (
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/geo"
	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
)

func (s *APITestSuite) bloodRequest(status schema.RequestStatus) *schema.BloodRequest {
	return &schema.BloodRequest{
		ID:         uuid.New(),
		TrackingID: "BR-20261014-K9Q2",
		BloodGroup: schema.BloodGroupAPositive,
		Status:     status,
		Latitude:   23.7100,
		Longitude:  90.4000,
	}
}

func (s *APITestSuite) TestApproveRequest() {
	actor, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestSubmitted)

	approved := *r
	approved.Status = schema.RequestApproved
	approved.ApprovedBy = actor.AdminID

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().ApproveRequest(r.ID, *actor.AdminID, s.now).Return(&approved, nil)

	w, resp := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/approve", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var result schema.BloodRequest
	s.decode(resp, &result)
	s.Equal(schema.RequestApproved, result.Status)
}

func (s *APITestSuite) TestApproveRequestTwice() {
	_, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestApproved)
	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)

	w, resp := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/approve", nil, token)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errorInvalidTransition.Code, resp.Error.Code)
}

func (s *APITestSuite) TestApproveRequestRace() {
	actor, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestSubmitted)
	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().ApproveRequest(r.ID, *actor.AdminID, s.now).Return(nil, store.ErrStateConflict)

	w, resp := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/approve", nil, token)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errorStateConflict.Code, resp.Error.Code)
}

func (s *APITestSuite) TestApproveUnknownRequest() {
	_, token := s.login(schema.RoleAdmin)
	id := uuid.New()
	s.store.EXPECT().GetRequest(id).Return(nil, gorm.ErrRecordNotFound)

	w, _ := s.request("POST", "/api/admin/requests/"+id.String()+"/approve", nil, token)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestAssignVolunteer() {
	actor, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestApproved)
	volunteer := &schema.Volunteer{ID: uuid.New(), ProfileID: uuid.New(), IsActive: true}

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().ResolveAssignee(schema.AssignmentVolunteer, volunteer.ID).
		Return(&schema.Assignee{Type: schema.AssignmentVolunteer, Volunteer: volunteer}, nil)
	s.store.EXPECT().CreateAssignment(gomock.Any(), schema.RequestApproved, s.now).
		DoAndReturn(func(a *schema.Assignment, from schema.RequestStatus, at time.Time) error {
			s.Equal(volunteer.ID, a.AssigneeID)
			s.Equal(actor.Profile.ID, a.AssignedBy)
			a.ID = uuid.New()
			a.Status = schema.AssignmentPending
			return nil
		})
	s.store.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *schema.Notification) error {
		s.Equal(volunteer.ProfileID, n.ProfileID)
		s.Equal(schema.NotificationAssigned, n.Type)
		return nil
	})
	s.dispatcher.EXPECT().NotifyAssignmentCreated(gomock.Any()).Return(nil)

	w, resp := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/assign", map[string]interface{}{
		"type":       "volunteer",
		"assigneeId": volunteer.ID,
	}, token)
	s.Equal(http.StatusOK, w.Code)

	var a schema.Assignment
	s.decode(resp, &a)
	s.Equal(schema.AssignmentVolunteer, a.Type)
	s.Equal(schema.AssignmentPending, a.Status)
}

func (s *APITestSuite) TestAssignExisting() {
	_, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestApproved)
	volunteer := &schema.Volunteer{ID: uuid.New(), IsActive: true}

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().ResolveAssignee(schema.AssignmentVolunteer, volunteer.ID).
		Return(&schema.Assignee{Type: schema.AssignmentVolunteer, Volunteer: volunteer}, nil)
	s.store.EXPECT().CreateAssignment(gomock.Any(), schema.RequestApproved, s.now).Return(store.ErrAssignmentExists)

	w, resp := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/assign", map[string]interface{}{
		"type":       "volunteer",
		"assigneeId": volunteer.ID,
	}, token)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errorAssignmentExists.Code, resp.Error.Code)
}

func (s *APITestSuite) TestCancelRequest() {
	_, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestDonorAssigned)

	cancelled := *r
	cancelled.Status = schema.RequestCancelled

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().CancelRequest(r.ID, "patient discharged", s.now).Return(&cancelled, nil)

	w, resp := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/cancel", map[string]string{
		"reason": "patient discharged",
	}, token)
	s.Equal(http.StatusOK, w.Code)

	var result schema.BloodRequest
	s.decode(resp, &result)
	s.Equal(schema.RequestCancelled, result.Status)
}

func (s *APITestSuite) TestCancelCompletedRequest() {
	_, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestCompleted)
	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)

	w, _ := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/cancel", map[string]string{
		"reason": "late",
	}, token)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *APITestSuite) expectDonor(donor *schema.Donor) {
	s.store.EXPECT().ResolveAssignee(schema.AssignmentDonor, donor.ID).
		Return(&schema.Assignee{Type: schema.AssignmentDonor, Donor: donor}, nil)
}

func (s *APITestSuite) TestAssignDonorByVolunteer() {
	actor, token := s.login(schema.RoleVolunteer)
	r := s.bloodRequest(schema.RequestVolunteerAssigned)
	r.AssignedVolunteerID = actor.VolunteerID
	donor := &schema.Donor{ID: uuid.New(), ProfileID: uuid.New(), BloodGroup: schema.BloodGroupONegative, IsAvailable: true}

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.expectDonor(donor)
	s.store.EXPECT().CreateAssignment(gomock.Any(), schema.RequestVolunteerAssigned, s.now).Return(nil)
	s.store.EXPECT().CreateNotification(gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().NotifyAssignmentCreated(gomock.Any()).Return(nil)

	w, _ := s.request("POST", "/api/requests/"+r.ID.String()+"/assign-donor", map[string]interface{}{
		"donorId": donor.ID,
	}, token)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestAssignDonorByOtherVolunteer() {
	_, token := s.login(schema.RoleVolunteer)
	other := uuid.New()
	r := s.bloodRequest(schema.RequestVolunteerAssigned)
	r.AssignedVolunteerID = &other

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)

	w, resp := s.request("POST", "/api/requests/"+r.ID.String()+"/assign-donor", map[string]interface{}{
		"donorId": uuid.New(),
	}, token)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(errorNotAssignee.Code, resp.Error.Code)
}

func (s *APITestSuite) TestAssignDonorChecks() {
	lastDonation := s.now.Add(-30 * 24 * time.Hour)

	for _, tc := range []struct {
		donor  *schema.Donor
		status int
		code   int64
	}{
		{&schema.Donor{ID: uuid.New(), BloodGroup: schema.BloodGroupAPositive}, http.StatusConflict, errorDonorUnavailable.Code},
		{&schema.Donor{ID: uuid.New(), BloodGroup: schema.BloodGroupAPositive, IsAvailable: true, LastDonationDate: &lastDonation}, http.StatusConflict, errorDonorDeferred.Code},
		{&schema.Donor{ID: uuid.New(), BloodGroup: schema.BloodGroupBPositive, IsAvailable: true}, http.StatusBadRequest, errorBloodGroupMismatch.Code},
	} {
		_, token := s.login(schema.RoleAdmin)
		r := s.bloodRequest(schema.RequestApproved)
		s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
		s.expectDonor(tc.donor)

		w, resp := s.request("POST", "/api/requests/"+r.ID.String()+"/assign-donor", map[string]interface{}{
			"donorId": tc.donor.ID,
		}, token)
		s.Equal(tc.status, w.Code)
		s.Equal(tc.code, resp.Error.Code)
	}
}

func (s *APITestSuite) assignment(assigneeID uuid.UUID, t schema.AssignmentType, status schema.AssignmentStatus) *schema.Assignment {
	return &schema.Assignment{
		ID:         uuid.New(),
		RequestID:  uuid.New(),
		AssigneeID: assigneeID,
		Type:       t,
		AssignedBy: uuid.New(),
		Status:     status,
	}
}

func (s *APITestSuite) TestRespondByNonOwner() {
	_, token := s.login(schema.RoleDonor)
	a := s.assignment(uuid.New(), schema.AssignmentDonor, schema.AssignmentPending)
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)

	// no write is expected on the store
	w, resp := s.request("POST", "/api/assignments/"+a.ID.String()+"/respond", map[string]interface{}{
		"accept": true,
	}, token)
	s.Equal(http.StatusForbidden, w.Code)
	s.False(resp.Success)
	s.Equal(errorNotAssignee.Code, resp.Error.Code)
}

func (s *APITestSuite) TestRespondAccept() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentPending)
	r := s.bloodRequest(schema.RequestDonorConfirmed)
	r.ID = a.RequestID

	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)
	s.store.EXPECT().RespondToAssignment(a, true, "on my way", s.now).
		DoAndReturn(func(a *schema.Assignment, accept bool, notes string, at time.Time) error {
			a.Status = schema.AssignmentAccepted
			return nil
		})
	s.store.EXPECT().GetRequest(a.RequestID).Return(r, nil)
	s.store.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *schema.Notification) error {
		s.Equal(a.AssignedBy, n.ProfileID)
		s.Equal(schema.NotificationResponded, n.Type)
		return nil
	})

	w, resp := s.request("POST", "/api/assignments/"+a.ID.String()+"/respond", map[string]interface{}{
		"accept": true,
		"notes":  "on my way",
	}, token)
	s.Equal(http.StatusOK, w.Code)

	var result schema.Assignment
	s.decode(resp, &result)
	s.Equal(schema.AssignmentAccepted, result.Status)
}

func (s *APITestSuite) TestRespondMissingAnswer() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentPending)
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)

	w, resp := s.request("POST", "/api/assignments/"+a.ID.String()+"/respond", map[string]interface{}{}, token)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("required", resp.Error.Fields["accept"])
}

func (s *APITestSuite) TestRespondTwice() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentRejected)
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)

	w, _ := s.request("POST", "/api/assignments/"+a.ID.String()+"/respond", map[string]interface{}{
		"accept": true,
	}, token)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *APITestSuite) TestRespondReject() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentPending)
	r := s.bloodRequest(schema.RequestDonorAssigned)
	r.ID = a.RequestID

	// the request is only read back for the notification
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)
	s.store.EXPECT().RespondToAssignment(a, false, "", s.now).
		DoAndReturn(func(a *schema.Assignment, accept bool, notes string, at time.Time) error {
			a.Status = schema.AssignmentRejected
			return nil
		})
	s.store.EXPECT().GetRequest(a.RequestID).Return(r, nil)
	s.store.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *schema.Notification) error {
		s.Equal(schema.NotificationResponded, n.Type)
		return nil
	})

	w, resp := s.request("POST", "/api/assignments/"+a.ID.String()+"/respond", map[string]interface{}{
		"accept": false,
	}, token)
	s.Equal(http.StatusOK, w.Code)

	var result schema.Assignment
	s.decode(resp, &result)
	s.Equal(schema.AssignmentRejected, result.Status)
	s.Equal(schema.RequestDonorAssigned, r.Status)
}

func (s *APITestSuite) TestRejectingVolunteerLosesRequest() {
	actor, token := s.login(schema.RoleVolunteer)
	a := s.assignment(*actor.VolunteerID, schema.AssignmentVolunteer, schema.AssignmentPending)
	r := s.bloodRequest(schema.RequestVolunteerAssigned)
	r.ID = a.RequestID
	r.AssignedVolunteerID = actor.VolunteerID

	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)
	s.store.EXPECT().RespondToAssignment(a, false, "", s.now).
		DoAndReturn(func(a *schema.Assignment, accept bool, notes string, at time.Time) error {
			a.Status = schema.AssignmentRejected
			r.AssignedVolunteerID = nil
			return nil
		})
	s.store.EXPECT().GetRequest(r.ID).Return(r, nil).Times(2)
	s.store.EXPECT().CreateNotification(gomock.Any()).Return(nil)
	s.store.EXPECT().GetActor(actor.Profile.ID).Return(actor, nil)

	w, _ := s.request("POST", "/api/assignments/"+a.ID.String()+"/respond", map[string]interface{}{
		"accept": false,
	}, token)
	s.Equal(http.StatusOK, w.Code)

	w, resp := s.request("POST", "/api/requests/"+r.ID.String()+"/assign-donor", map[string]interface{}{
		"donorId": uuid.New(),
	}, token)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(errorNotAssignee.Code, resp.Error.Code)
}

func (s *APITestSuite) TestReassignVolunteerAfterRejection() {
	_, token := s.login(schema.RoleAdmin)
	r := s.bloodRequest(schema.RequestVolunteerAssigned)
	volunteer := &schema.Volunteer{ID: uuid.New(), ProfileID: uuid.New(), IsActive: true}

	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().ResolveAssignee(schema.AssignmentVolunteer, volunteer.ID).
		Return(&schema.Assignee{Type: schema.AssignmentVolunteer, Volunteer: volunteer}, nil)
	s.store.EXPECT().CreateAssignment(gomock.Any(), schema.RequestVolunteerAssigned, s.now).Return(nil)
	s.store.EXPECT().CreateNotification(gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().NotifyAssignmentCreated(gomock.Any()).Return(nil)

	w, _ := s.request("POST", "/api/admin/requests/"+r.ID.String()+"/assign", map[string]interface{}{
		"type":       "volunteer",
		"assigneeId": volunteer.ID,
	}, token)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestStartTransitPlansRoute() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentAccepted)
	r := s.bloodRequest(schema.RequestDonorConfirmed)
	r.ID = a.RequestID
	origin := schema.Coordinate{Lat: 23.7000, Lng: 90.4000}

	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)
	s.store.EXPECT().GetRequest(a.RequestID).Return(r, nil)
	s.router.EXPECT().Route(gomock.Any(), origin, r.Location(), gomock.Any()).Return(geo.Directions{
		Path:     schema.Path{origin, r.Location()},
		Distance: 1112,
		Duration: 180,
	}, nil)
	s.store.EXPECT().StartTransit(a, gomock.Any(), s.now).
		DoAndReturn(func(a *schema.Assignment, route *schema.Route, at time.Time) error {
			s.Require().NotNil(route)
			s.Equal(schema.RoutePending, route.Status)
			s.Equal(1112.0, route.DistanceMeters)
			s.Equal(s.now.Add(180*time.Second), *route.CurrentETA)
			return nil
		})

	w, _ := s.request("POST", "/api/assignments/"+a.ID.String()+"/start-transit", map[string]interface{}{
		"latitude":  origin.Lat,
		"longitude": origin.Lng,
	}, token)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestStartTransitBeforeAccept() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentPending)
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)

	w, resp := s.request("POST", "/api/assignments/"+a.ID.String()+"/start-transit", nil, token)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errorAssignmentNotAccepted.Code, resp.Error.Code)
}

func (s *APITestSuite) TestCompleteDonation() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentAccepted)
	r := s.bloodRequest(schema.RequestCompleted)
	r.ID = a.RequestID
	donationID := uuid.New()

	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)
	s.store.EXPECT().CompleteDonation(a, gomock.Any()).
		DoAndReturn(func(a *schema.Assignment, d *schema.Donation) error {
			s.Equal(2, d.UnitsDonated)
			s.Equal(s.now, d.DonatedAt)
			d.ID = donationID
			d.DonorID = a.AssigneeID
			return nil
		}).Times(1)
	s.store.EXPECT().GetRequest(a.RequestID).Return(r, nil)
	s.store.EXPECT().CreateNotification(gomock.Any()).Return(nil)

	w, resp := s.request("POST", "/api/donations/complete", map[string]interface{}{
		"assignmentId": a.ID,
		"unitsDonated": 2,
	}, token)
	s.Equal(http.StatusOK, w.Code)

	var d schema.Donation
	s.decode(resp, &d)
	s.Equal(donationID, d.ID)
	s.Equal(*actor.DonorID, d.DonorID)
}

func (s *APITestSuite) TestCompleteDonationTwice() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentCompleted)
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)

	w, resp := s.request("POST", "/api/donations/complete", map[string]interface{}{
		"assignmentId": a.ID,
		"unitsDonated": 1,
	}, token)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errorStateConflict.Code, resp.Error.Code)
}

func (s *APITestSuite) TestCompleteDonationConcurrently() {
	actor, token := s.login(schema.RoleDonor)
	a := s.assignment(*actor.DonorID, schema.AssignmentDonor, schema.AssignmentAccepted)
	s.store.EXPECT().GetAssignment(a.ID).Return(a, nil)
	s.store.EXPECT().CompleteDonation(a, gomock.Any()).Return(store.ErrStateConflict)

	w, _ := s.request("POST", "/api/donations/complete", map[string]interface{}{
		"assignmentId": a.ID,
		"unitsDonated": 1,
	}, token)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *APITestSuite) TestVerifyDonation() {
	actor, token := s.login(schema.RoleVolunteer)
	r := s.bloodRequest(schema.RequestCompleted)
	r.AssignedVolunteerID = actor.VolunteerID
	d := &schema.Donation{ID: uuid.New(), RequestID: r.ID}

	verifiedAt := s.now
	verified := *d
	verified.VerifiedBy = &actor.Profile.ID
	verified.VerifiedAt = &verifiedAt

	s.store.EXPECT().GetDonation(d.ID).Return(d, nil)
	s.store.EXPECT().GetRequest(r.ID).Return(r, nil)
	s.store.EXPECT().VerifyDonation(d.ID, actor.Profile.ID, s.now).Return(&verified, nil)

	w, resp := s.request("POST", "/api/donations/"+d.ID.String()+"/verify", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var result schema.Donation
	s.decode(resp, &result)
	s.NotNil(result.VerifiedAt)
}

func (s *APITestSuite) TestVerifyDonationByDonor() {
	_, token := s.login(schema.RoleDonor)

	w, _ := s.request("POST", "/api/donations/"+uuid.New().String()+"/verify", nil, token)
	s.Equal(http.StatusForbidden, w.Code)
}
