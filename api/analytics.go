package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-bd/lifeline-api/consts"
	"github.com/lifeline-bd/lifeline-api/schema"
)

const analyticsAll = "all"

type analyticsQuery func(s *Server) (interface{}, error)

var analyticsQueries = map[string]analyticsQuery{
	"dashboard": func(s *Server) (interface{}, error) {
		return s.store.AnalyticsDashboard(s.analyticsSince())
	},
	"trends": func(s *Server) (interface{}, error) {
		return s.store.AnalyticsTrends(s.analyticsSince())
	},
	"bloodGroups": func(s *Server) (interface{}, error) {
		return s.store.AnalyticsBloodGroups(s.analyticsSince())
	},
	"volunteers": func(s *Server) (interface{}, error) {
		return s.store.AnalyticsVolunteers(consts.VolunteerLeaderboardSize)
	},
	"geographic": func(s *Server) (interface{}, error) {
		return s.store.AnalyticsGeographic(s.analyticsSince())
	},
	"responseTimes": func(s *Server) (interface{}, error) {
		return s.store.AnalyticsResponseTimes(s.analyticsSince())
	},
}

func (s *Server) analyticsSince() time.Time {
	return s.now().Add(-schema.AnalyticsWindow)
}

// analytics returns one or all of the read only aggregations
func (s *Server) analytics(c *gin.Context) {
	t := c.DefaultQuery("type", analyticsAll)

	if t != analyticsAll {
		query, ok := analyticsQueries[t]
		if !ok {
			resp := errorUnknownAnalyticsType
			resp.Fields = map[string]string{"type": "oneof"}
			abortWithEncoding(c, http.StatusBadRequest, resp)
			return
		}

		result, err := query(s)
		if shouldInterupt(err, c) {
			return
		}

		responseOK(c, result)
		return
	}

	results := gin.H{}
	for name, query := range analyticsQueries {
		result, err := query(s)
		if shouldInterupt(err, c) {
			return
		}
		results[name] = result
	}

	responseOK(c, results)
}
