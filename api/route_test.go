package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/geo"
	"github.com/lifeline-bd/lifeline-api/schema"
)

var (
	routeStart = schema.Coordinate{Lat: 23.7000, Lng: 90.4000}
	routeMid   = schema.Coordinate{Lat: 23.7050, Lng: 90.4000}
	routeEnd   = schema.Coordinate{Lat: 23.7100, Lng: 90.4000}
)

func (s *APITestSuite) liveRoute(status schema.RouteStatus) *schema.Route {
	return &schema.Route{
		ID:                uuid.New(),
		RequestID:         uuid.New(),
		AssignmentID:      uuid.New(),
		StartLocation:     routeStart,
		EndLocation:       routeEnd,
		Geometry:          schema.Path{routeStart, routeMid, routeEnd},
		DistanceMeters:    1112,
		DurationSeconds:   300,
		RemainingDistance: 1112,
		RemainingDuration: 300,
		Status:            status,
	}
}

// expectRouteOwner makes the actor the assignee of the route
func (s *APITestSuite) expectRouteOwner(r *schema.Route, actor *schema.Actor) {
	s.store.EXPECT().GetRoute(r.ID).Return(r, nil)
	s.store.EXPECT().GetAssignment(r.AssignmentID).Return(&schema.Assignment{
		ID:         r.AssignmentID,
		RequestID:  r.RequestID,
		AssigneeID: *actor.DonorID,
		Type:       schema.AssignmentDonor,
		Status:     schema.AssignmentAccepted,
	}, nil)
}

type positionResult struct {
	Status         schema.RouteStatus `json:"status"`
	DeviationCount int                `json:"deviationCount"`
	CurrentETA     time.Time          `json:"currentEta"`
	Update         struct {
		OnRoute       bool    `json:"onRoute"`
		ShouldReroute bool    `json:"shouldReroute"`
		Progress      float64 `json:"progress"`
		Arrived       bool    `json:"arrived"`
	} `json:"update"`
	Reroute *geo.Directions `json:"reroute"`
}

func (s *APITestSuite) postPosition(r *schema.Route, token string, lat, lng float64) (int, positionResult) {
	w, resp := s.request("POST", "/api/routes/"+r.ID.String()+"/eta", map[string]float64{
		"latitude":  lat,
		"longitude": lng,
	}, token)

	var result positionResult
	if w.Code == http.StatusOK {
		s.decode(resp, &result)
	}
	return w.Code, result
}

func (s *APITestSuite) TestPositionUpdateDeviation() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.expectRouteOwner(r, actor)

	off := schema.Coordinate{Lat: 23.7050, Lng: 90.4030}
	s.positions.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p *schema.RoutePosition) error {
			s.Equal(r.ID, p.RouteID)
			s.Equal(off.Lat, p.Latitude)
			s.Equal(s.now, p.RecordedAt)
			return nil
		})
	s.store.EXPECT().SaveRouteProgress(r).Return(nil)
	s.router.EXPECT().Route(gomock.Any(), off, routeEnd, gomock.Any()).Return(geo.Directions{
		Path:     schema.Path{off, routeEnd},
		Distance: 650,
		Duration: 120,
	}, nil)

	code, result := s.postPosition(r, token, off.Lat, off.Lng)
	s.Equal(http.StatusOK, code)
	s.Equal(schema.RouteDeviated, result.Status)
	s.Equal(1, result.DeviationCount)
	s.True(result.Update.ShouldReroute)
	s.Require().NotNil(result.Reroute)
	s.Equal(650.0, result.Reroute.Distance)
}

func (s *APITestSuite) TestPositionUpdateRerouteUnavailable() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.expectRouteOwner(r, actor)

	s.positions.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).Return(fmt.Errorf("mongo is down"))
	s.store.EXPECT().SaveRouteProgress(r).Return(nil)
	s.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(geo.Directions{}, geo.ErrNoRouteFound)

	code, result := s.postPosition(r, token, 23.7050, 90.4030)
	s.Equal(http.StatusOK, code)
	s.Equal(schema.RouteDeviated, result.Status)
	s.Nil(result.Reroute)
}

func (s *APITestSuite) TestPositionUpdatesApproachDestination() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RoutePending)

	s.store.EXPECT().GetRoute(r.ID).Return(r, nil).Times(2)
	s.store.EXPECT().GetAssignment(r.AssignmentID).Return(&schema.Assignment{
		AssigneeID: *actor.DonorID,
		Type:       schema.AssignmentDonor,
	}, nil).Times(2)
	s.store.EXPECT().GetActor(actor.Profile.ID).Return(actor, nil)
	s.positions.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.store.EXPECT().SaveRouteProgress(r).Return(nil).Times(2)

	code, first := s.postPosition(r, token, 23.7020, 90.4000)
	s.Equal(http.StatusOK, code)
	s.Equal(schema.RouteActive, first.Status)

	s.now = s.now.Add(10 * time.Second)
	code, second := s.postPosition(r, token, 23.7060, 90.4000)
	s.Equal(http.StatusOK, code)

	s.GreaterOrEqual(second.Update.Progress, first.Update.Progress)
	s.False(second.CurrentETA.After(first.CurrentETA), "eta should not increase")
	s.Nil(second.Reroute)
}

func (s *APITestSuite) TestPositionUpdateArrival() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.expectRouteOwner(r, actor)
	s.positions.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().SaveRouteProgress(r).Return(nil)

	code, result := s.postPosition(r, token, 23.7097, 90.4001)
	s.Equal(http.StatusOK, code)
	s.Equal(schema.RouteCompleted, result.Status)
	s.True(result.Update.Arrived)
	s.Equal(s.now, *r.CompletedAt)
}

func (s *APITestSuite) TestPositionUpdateArrivalSkipsReroute() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	r.Geometry = schema.Path{routeStart, routeMid}
	s.expectRouteOwner(r, actor)
	s.positions.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().SaveRouteProgress(r).Return(nil)

	// no directions are asked for a completed route
	code, result := s.postPosition(r, token, routeEnd.Lat, routeEnd.Lng)
	s.Equal(http.StatusOK, code)
	s.Equal(schema.RouteCompleted, result.Status)
	s.True(result.Update.Arrived)
	s.False(result.Update.ShouldReroute)
	s.Nil(result.Reroute)
}

func (s *APITestSuite) TestPositionUpdateMissingFields() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.expectRouteOwner(r, actor)

	w, resp := s.request("POST", "/api/routes/"+r.ID.String()+"/eta", map[string]float64{
		"latitude": 23.7,
	}, token)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("required", resp.Error.Fields["longitude"])
}

func (s *APITestSuite) TestPositionUpdateUnauthenticated() {
	r := s.liveRoute(schema.RouteActive)

	w, _ := s.request("POST", "/api/routes/"+r.ID.String()+"/eta", map[string]float64{
		"latitude":  23.7,
		"longitude": 90.4,
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestPositionUpdateWithShareTokenOnly() {
	r := s.liveRoute(schema.RouteActive)
	token := "shared"
	r.ShareToken = &token
	s.store.EXPECT().GetRoute(r.ID).Return(r, nil)

	w, resp := s.request("POST", "/api/routes/"+r.ID.String()+"/eta?token=shared", map[string]float64{
		"latitude":  23.7,
		"longitude": 90.4,
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(errorAuthenticationRequired.Code, resp.Error.Code)
}

func (s *APITestSuite) TestRouteNotFound() {
	_, token := s.login(schema.RoleDonor)
	id := uuid.New()
	s.store.EXPECT().GetRoute(id).Return(nil, gorm.ErrRecordNotFound)

	w, resp := s.request("GET", "/api/routes/"+id.String()+"/eta", nil, token)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorRouteNotFound.Code, resp.Error.Code)
}

func (s *APITestSuite) TestRouteETAWithShareToken() {
	r := s.liveRoute(schema.RouteActive)
	token := "0123456789abcdef"
	expiresAt := s.now.Add(time.Hour)
	r.ShareToken = &token
	r.ShareExpiresAt = &expiresAt

	s.store.EXPECT().GetRoute(r.ID).Return(r, nil)
	s.positions.EXPECT().RecentPositions(gomock.Any(), r.ID, int64(routeTrailSize)).Return([]schema.RoutePosition{
		{RouteID: r.ID, Latitude: 23.7010, Longitude: 90.4000},
	}, nil)

	w, resp := s.request("GET", "/api/routes/"+r.ID.String()+"/eta?token="+token, nil, "")
	s.Equal(http.StatusOK, w.Code)

	var result struct {
		Route schema.Route           `json:"route"`
		Trail []schema.RoutePosition `json:"trail"`
	}
	s.decode(resp, &result)
	s.Equal(r.ID, result.Route.ID)
	s.Len(result.Trail, 1)
}

func (s *APITestSuite) TestRouteETAWithExpiredShareToken() {
	r := s.liveRoute(schema.RouteActive)
	token := "0123456789abcdef"
	expiresAt := s.now.Add(-time.Minute)
	r.ShareToken = &token
	r.ShareExpiresAt = &expiresAt

	s.store.EXPECT().GetRoute(r.ID).Return(r, nil)

	w, resp := s.request("GET", "/api/routes/"+r.ID.String()+"/eta?token="+token, nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(errorInvalidShareToken.Code, resp.Error.Code)
}

func (s *APITestSuite) TestReroute() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteDeviated)
	r.CurrentStepIndex = 1
	current := schema.Coordinate{Lat: 23.7050, Lng: 90.4030}
	r.LastPosition = &current
	s.expectRouteOwner(r, actor)

	s.router.EXPECT().Route(gomock.Any(), current, routeEnd, gomock.Any()).Return(geo.Directions{
		Path:     schema.Path{current, routeEnd},
		Distance: 650,
		Duration: 120,
	}, nil)
	s.store.EXPECT().SaveRouteProgress(r).Return(nil)

	w, resp := s.request("POST", "/api/routes/"+r.ID.String()+"/reroute", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var result schema.Route
	s.decode(resp, &result)
	s.Equal(schema.RouteActive, result.Status)
	s.Equal(0, result.CurrentStepIndex)
	s.Equal(650.0, result.DistanceMeters)
	s.Equal(current, result.StartLocation)
}

func (s *APITestSuite) TestRerouteProviderFailure() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteDeviated)
	s.expectRouteOwner(r, actor)

	s.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(geo.Directions{}, geo.ErrNoRouteFound)

	w, resp := s.request("POST", "/api/routes/"+r.ID.String()+"/reroute", nil, token)
	s.Equal(http.StatusBadGateway, w.Code)
	s.Equal(errorDirectionsUnavailable.Code, resp.Error.Code)
}

func (s *APITestSuite) TestShareRoute() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.expectRouteOwner(r, actor)

	var issued string
	s.store.EXPECT().SetRouteShare(r.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, token *string, expiresAt *time.Time) error {
			s.Require().NotNil(token)
			s.Len(*token, 32)
			s.Equal(s.now.Add(2*time.Hour), *expiresAt)
			issued = *token
			return nil
		})

	w, resp := s.request("POST", "/api/routes/"+r.ID.String()+"/share", map[string]int{"ttlHours": 2}, token)
	s.Equal(http.StatusOK, w.Code)

	var result struct {
		Token    string `json:"token"`
		ShareURL string `json:"shareUrl"`
	}
	s.decode(resp, &result)
	s.Equal(issued, result.Token)
	s.Contains(result.ShareURL, "/routes/"+r.ID.String()+"?token="+issued)
}

func (s *APITestSuite) TestRevokeRouteShare() {
	actor, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.expectRouteOwner(r, actor)
	s.store.EXPECT().SetRouteShare(r.ID, nil, nil).Return(nil)

	w, _ := s.request("DELETE", "/api/routes/"+r.ID.String()+"/share", nil, token)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestShareRouteByStranger() {
	_, token := s.login(schema.RoleDonor)
	r := s.liveRoute(schema.RouteActive)
	s.store.EXPECT().GetRoute(r.ID).Return(r, nil)
	s.store.EXPECT().GetAssignment(r.AssignmentID).Return(&schema.Assignment{
		AssigneeID: uuid.New(),
		Type:       schema.AssignmentDonor,
	}, nil)

	w, _ := s.request("POST", "/api/routes/"+r.ID.String()+"/share", nil, token)
	s.Equal(http.StatusForbidden, w.Code)
}
