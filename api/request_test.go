package api

import (
	"net/http"
	"regexp"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
)

var trackingIDFormat = regexp.MustCompile(`^BR-\d{8}-[0-9A-Z]{4}$`)

type intakeResult struct {
	TrackingID  string               `json:"trackingId"`
	Status      schema.RequestStatus `json:"status"`
	Urgency     schema.Urgency       `json:"urgency"`
	IsEmergency bool                 `json:"isEmergency"`
}

func (s *APITestSuite) intake(neededBy time.Time, emergency bool) map[string]interface{} {
	return map[string]interface{}{
		"requesterName":  "Rahim Uddin",
		"requesterPhone": "01712345678",
		"patientName":    "Karim",
		"hospitalName":   "Dhaka Medical College Hospital",
		"bloodGroup":     "O-",
		"unitsNeeded":    2,
		"latitude":       23.7257,
		"longitude":      90.3976,
		"district":       "dhaka",
		"neededBy":       neededBy.Format(time.RFC3339),
		"isEmergency":    emergency,
	}
}

// expectCreate accepts the insert the way the store does
func (s *APITestSuite) expectCreate(captured *[]*schema.BloodRequest) {
	s.store.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r *schema.BloodRequest) error {
		r.ID = uuid.New()
		r.Status = schema.RequestSubmitted
		if captured != nil {
			*captured = append(*captured, r)
		}
		return nil
	})
}

func (s *APITestSuite) TestSubmitCriticalRequest() {
	var created []*schema.BloodRequest
	s.expectCreate(&created)

	body := s.intake(s.now.Add(2*time.Hour), false)
	body["requesterEmail"] = "rahim@example.com"
	s.dispatcher.EXPECT().NotifyRequestSubmitted(gomock.Any()).Return(nil)

	w, resp := s.request("POST", "/api/public/request-blood", body, "")
	s.Equal(http.StatusOK, w.Code)

	var result intakeResult
	s.decode(resp, &result)
	s.Regexp(trackingIDFormat, result.TrackingID)
	s.Equal("BR-20261014-", result.TrackingID[:12])
	s.Equal(schema.RequestSubmitted, result.Status)
	s.Equal(schema.UrgencyCritical, result.Urgency)
	s.True(result.IsEmergency)

	s.Require().Len(created, 1)
	s.Equal("Dhaka", created[0].District)
	s.Equal("Dhaka", created[0].Division)
	s.Equal(schema.BloodGroupONegative, created[0].BloodGroup)
}

func (s *APITestSuite) TestSubmitUrgencyClasses() {
	for _, tc := range []struct {
		hours     int
		emergency bool
		urgency   schema.Urgency
		flagged   bool
	}{
		{3, false, schema.UrgencyCritical, true},
		{12, false, schema.UrgencyUrgent, false},
		{72, false, schema.UrgencyNormal, false},
		{72, true, schema.UrgencyCritical, true},
	} {
		s.expectCreate(nil)

		w, resp := s.request("POST", "/api/public/request-blood",
			s.intake(s.now.Add(time.Duration(tc.hours)*time.Hour), tc.emergency), "")
		s.Equal(http.StatusOK, w.Code)

		var result intakeResult
		s.decode(resp, &result)
		s.Equal(tc.urgency, result.Urgency, "%d hours", tc.hours)
		s.Equal(tc.flagged, result.IsEmergency, "%d hours", tc.hours)
	}
}

func (s *APITestSuite) TestSubmitUniqueTrackingIDs() {
	var created []*schema.BloodRequest
	for i := 0; i < 20; i++ {
		s.expectCreate(&created)
		w, _ := s.request("POST", "/api/public/request-blood", s.intake(s.now.Add(48*time.Hour), false), "")
		s.Equal(http.StatusOK, w.Code)
	}

	seen := map[string]bool{}
	for _, r := range created {
		s.False(seen[r.TrackingID], "duplicated tracking id %s", r.TrackingID)
		seen[r.TrackingID] = true
	}
}

func (s *APITestSuite) TestSubmitRegeneratesTakenTrackingID() {
	var attempts []string
	gomock.InOrder(
		s.store.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r *schema.BloodRequest) error {
			attempts = append(attempts, r.TrackingID)
			return store.ErrTrackingIDTaken
		}),
		s.store.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r *schema.BloodRequest) error {
			attempts = append(attempts, r.TrackingID)
			r.Status = schema.RequestSubmitted
			return nil
		}),
	)

	w, resp := s.request("POST", "/api/public/request-blood", s.intake(s.now.Add(48*time.Hour), false), "")
	s.Equal(http.StatusOK, w.Code)

	var result intakeResult
	s.decode(resp, &result)
	s.Require().Len(attempts, 2)
	s.NotEqual(attempts[0], attempts[1])
	s.Equal(attempts[1], result.TrackingID)
}

func (s *APITestSuite) TestSubmitValidation() {
	body := s.intake(s.now.Add(48*time.Hour), false)
	body["requesterPhone"] = "12345"
	body["bloodGroup"] = "C+"
	body["unitsNeeded"] = 11
	delete(body, "patientName")

	w, resp := s.request("POST", "/api/public/request-blood", body, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(resp.Success)
	s.Require().NotNil(resp.Error)
	s.Equal(errorInvalidParameters.Code, resp.Error.Code)
	s.Equal("bdphone", resp.Error.Fields["requesterPhone"])
	s.Equal("bloodgroup", resp.Error.Fields["bloodGroup"])
	s.Equal("max", resp.Error.Fields["unitsNeeded"])
	s.Equal("required", resp.Error.Fields["patientName"])
}

func (s *APITestSuite) TestSubmitUnknownDistrict() {
	body := s.intake(s.now.Add(48*time.Hour), false)
	body["district"] = "Atlantis"

	w, resp := s.request("POST", "/api/public/request-blood", body, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("district", resp.Error.Fields["district"])
}

func (s *APITestSuite) TestSubmitStoreFailure() {
	s.store.EXPECT().CreateRequest(gomock.Any()).Return(gorm.ErrInvalidTransaction)

	w, resp := s.request("POST", "/api/public/request-blood", s.intake(s.now.Add(48*time.Hour), false), "")
	s.Equal(http.StatusInternalServerError, w.Code)
	s.False(resp.Success)
	s.Equal(errorInternalServer.Code, resp.Error.Code)
}

func (s *APITestSuite) TestTrackUnknown() {
	s.store.EXPECT().GetRequestByTrackingID("BR-20261014-ZZZZ").Return(nil, gorm.ErrRecordNotFound)

	w, resp := s.request("GET", "/api/public/track/BR-20261014-ZZZZ", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.False(resp.Success)
	s.Equal(errorRequestNotFound.Code, resp.Error.Code)
}

func (s *APITestSuite) TestTrackRedactsPatient() {
	approvedAt := s.now.Add(-time.Hour)
	r := &schema.BloodRequest{
		ID:          uuid.New(),
		TrackingID:  "BR-20261014-AB12",
		PatientName: "Karim Ahmed",
		BloodGroup:  schema.BloodGroupBPositive,
		Status:      schema.RequestApproved,
		Urgency:     schema.UrgencyUrgent,
		CreatedAt:   s.now.Add(-2 * time.Hour),
		ApprovedAt:  &approvedAt,
	}
	s.store.EXPECT().GetRequestByTrackingID("BR-20261014-AB12").Return(r, nil)
	s.store.EXPECT().GetRouteByRequest(r.ID).Return(nil, gorm.ErrRecordNotFound)

	w, resp := s.request("GET", "/api/public/track/br-20261014-ab12", nil, "")
	s.Equal(http.StatusOK, w.Code)

	var result struct {
		PatientName string          `json:"patientName"`
		Status      string          `json:"status"`
		Timeline    []timelineEvent `json:"timeline"`
		Route       *routeSummary   `json:"route"`
	}
	s.decode(resp, &result)
	s.Equal("K***", result.PatientName)
	s.Equal("approved", result.Status)
	s.Len(result.Timeline, 2)
	s.Nil(result.Route)
}

func (s *APITestSuite) TestMapMarkers() {
	expected := schema.NewBounds(23.7, 90.3, 23.9, 90.5)
	s.store.EXPECT().ListActiveRequests(schema.MarkerFilter{
		BloodGroup: schema.BloodGroupAPositive,
		Urgency:    schema.UrgencyCritical,
		Bounds:     &expected,
	}).Return([]schema.BloodRequest{
		{TrackingID: "BR-20261014-0001", Latitude: 23.8, Longitude: 90.4, BloodGroup: schema.BloodGroupAPositive},
		{TrackingID: "BR-20261014-0002"},
	}, nil)

	w, resp := s.request("GET", "/api/public/map/markers?bloodGroup=A%2B&urgency=critical&bounds=23.9,90.5,23.7,90.3", nil, "")
	s.Equal(http.StatusOK, w.Code)

	var markers []marker
	s.decode(resp, &markers)
	s.Require().Len(markers, 1)
	s.Equal("BR-20261014-0001", markers[0].TrackingID)
}

func (s *APITestSuite) TestMapMarkersUnescapedBloodGroup() {
	s.store.EXPECT().ListActiveRequests(schema.MarkerFilter{BloodGroup: schema.BloodGroupABPositive}).
		Return([]schema.BloodRequest{}, nil)

	w, _ := s.request("GET", "/api/public/map/markers?bloodGroup=AB+", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestMapMarkersInvalidQuery() {
	for _, query := range []string{
		"bounds=23.9,90.5,23.7",
		"bounds=a,b,c,d",
		"bounds=100,90.5,23.7,90.3",
		"urgency=soon",
		"bloodGroup=Z",
	} {
		w, resp := s.request("GET", "/api/public/map/markers?"+query, nil, "")
		s.Equal(http.StatusBadRequest, w.Code, query)
		s.False(resp.Success, query)
	}
}

func (s *APITestSuite) TestRedactName() {
	s.Equal("K***", redactName("Karim"))
	s.Equal("র***", redactName("রহিম"))
	s.Equal("", redactName("  "))
}
