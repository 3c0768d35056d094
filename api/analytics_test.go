package api

import (
	"net/http"

	"github.com/lifeline-bd/lifeline-api/consts"
	"github.com/lifeline-bd/lifeline-api/schema"
)

func (s *APITestSuite) TestAnalyticsBloodGroups() {
	_, token := s.login(schema.RoleAdmin)
	s.store.EXPECT().AnalyticsBloodGroups(s.now.Add(-schema.AnalyticsWindow)).Return([]schema.BloodGroupDemand{
		{BloodGroup: "O-", Requests: 4, Units: 6, Fulfilled: 3},
	}, nil)

	w, resp := s.request("GET", "/api/admin/analytics?type=bloodGroups", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var result []schema.BloodGroupDemand
	s.decode(resp, &result)
	s.Len(result, 1)
	s.Equal(int64(6), result[0].Units)
}

func (s *APITestSuite) TestAnalyticsAll() {
	_, token := s.login(schema.RoleAdmin)
	since := s.now.Add(-schema.AnalyticsWindow)

	s.store.EXPECT().AnalyticsDashboard(since).Return(&schema.DashboardStats{TotalRequests: 12}, nil)
	s.store.EXPECT().AnalyticsTrends(since).Return([]schema.DailyTrend{}, nil)
	s.store.EXPECT().AnalyticsBloodGroups(since).Return([]schema.BloodGroupDemand{}, nil)
	s.store.EXPECT().AnalyticsVolunteers(consts.VolunteerLeaderboardSize).Return([]schema.VolunteerRank{}, nil)
	s.store.EXPECT().AnalyticsGeographic(since).Return([]schema.DistrictCount{}, nil)
	s.store.EXPECT().AnalyticsResponseTimes(since).Return(&schema.ResponseTimes{}, nil)

	w, resp := s.request("GET", "/api/admin/analytics", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var result struct {
		Dashboard     schema.DashboardStats `json:"dashboard"`
		Volunteers    []schema.VolunteerRank `json:"volunteers"`
		ResponseTimes *schema.ResponseTimes  `json:"responseTimes"`
	}
	s.decode(resp, &result)
	s.Equal(int64(12), result.Dashboard.TotalRequests)
	s.NotNil(result.Volunteers)
	s.NotNil(result.ResponseTimes)
}

func (s *APITestSuite) TestAnalyticsUnknownType() {
	_, token := s.login(schema.RoleAdmin)

	w, resp := s.request("GET", "/api/admin/analytics?type=revenue", nil, token)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorUnknownAnalyticsType.Code, resp.Error.Code)
	s.Equal("oneof", resp.Error.Fields["type"])
}

func (s *APITestSuite) TestAnalyticsRequiresAdmin() {
	_, token := s.login(schema.RoleVolunteer)

	w, _ := s.request("GET", "/api/admin/analytics?type=dashboard", nil, token)
	s.Equal(http.StatusForbidden, w.Code)
}
