package api

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"

	"github.com/lifeline-bd/lifeline-api/geo"
	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
	"github.com/lifeline-bd/lifeline-api/tracking"
)

const (
	shareTokenBytes   = 24
	defaultShareTTL   = 24
	routeTrailSize    = 20
	maxShareTTLInHour = 24 * 7
)

type positionParams struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Bearing   *float64 `json:"bearing" binding:"omitempty,min=0,max=360"`
	Speed     *float64 `json:"speed" binding:"omitempty,min=0"`
	Accuracy  *float64 `json:"accuracy" binding:"omitempty,min=0"`
}

// plan asks the directions provider for a path. Without a provider paths are
// straight lines.
func (s *Server) plan(ctx context.Context, origin, destination schema.Coordinate, waypoints []schema.Coordinate) (geo.Directions, error) {
	if s.router == nil {
		return geo.NewStraightRouter(s.tracker).Route(ctx, origin, destination, waypoints)
	}
	return s.router.Route(ctx, origin, destination, waypoints)
}

func (s *Server) loadRoute(c *gin.Context) (*schema.Route, bool) {
	id, ok := uuidParam(c, "id", errorRouteNotFound)
	if !ok {
		return nil, false
	}

	r, err := s.store.GetRoute(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRouteNotFound)
		return nil, false
	} else if shouldInterupt(err, c) {
		return nil, false
	}

	return r, true
}

// routeAccess checks the caller may act on a route. Admins and the assignee
// of the route always may. With shareable set, the volunteer of the request
// and holders of a valid share token may as well.
func (s *Server) routeAccess(c *gin.Context, r *schema.Route, shareable bool) bool {
	token := c.Query("token")
	shared := shareable && r.ShareValid(token, s.now())

	actor := actorOf(c)
	if actor == nil {
		switch {
		case shared:
			return true
		case shareable && token != "":
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidShareToken)
		default:
			abortWithEncoding(c, http.StatusUnauthorized, errorAuthenticationRequired)
		}
		return false
	}

	if actor.IsAdmin() || shared {
		return true
	}

	a, err := s.store.GetAssignment(r.AssignmentID)
	if err == nil && actor.Owns(a) {
		return true
	} else if err != nil && !gorm.IsRecordNotFoundError(err) {
		shouldInterupt(err, c)
		return false
	}

	if shareable && actor.VolunteerID != nil {
		req, err := s.store.GetRequest(r.RequestID)
		if err != nil && !gorm.IsRecordNotFoundError(err) {
			shouldInterupt(err, c)
			return false
		}
		if err == nil && actor.Handles(req) {
			return true
		}
	}

	abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
	return false
}

// routeETA returns the tracking snapshot of a route with its latest positions
func (s *Server) routeETA(c *gin.Context) {
	logger := log.WithField("api", "routeETA")

	r, ok := s.loadRoute(c)
	if !ok || !s.routeAccess(c, r, true) {
		return
	}

	trail, err := s.positions.RecentPositions(c, r.ID, routeTrailSize)
	if err != nil {
		logger.WithError(err).Warn("cannot query positions of the route")
		trail = []schema.RoutePosition{}
	}

	responseOK(c, gin.H{
		"route": r,
		"trail": trail,
	})
}

// updateRoutePosition applies a sample reported by the assignee to the route
func (s *Server) updateRoutePosition(c *gin.Context) {
	logger := log.WithField("api", "updateRoutePosition")

	r, ok := s.loadRoute(c)
	if !ok || !s.routeAccess(c, r, false) {
		return
	}

	var params positionParams
	if !bindJSON(c, &params) {
		return
	}

	if r.Status == schema.RouteCompleted {
		abortWithEncoding(c, http.StatusConflict, errorRouteCompleted)
		return
	}

	now := s.now()
	position := schema.Coordinate{Lat: *params.Latitude, Lng: *params.Longitude}

	if err := s.positions.AppendPosition(c, &schema.RoutePosition{
		RouteID:    r.ID,
		Latitude:   position.Lat,
		Longitude:  position.Lng,
		Bearing:    params.Bearing,
		Speed:      params.Speed,
		Accuracy:   params.Accuracy,
		RecordedAt: now,
	}); err != nil {
		logger.WithError(err).Warn("cannot append position of the route")
	}

	update, err := s.tracker.Advance(r, tracking.Sample{
		Position: position,
		Bearing:  params.Bearing,
		Speed:    params.Speed,
		Accuracy: params.Accuracy,
	}, now)
	if err == tracking.ErrRouteCompleted {
		abortWithEncoding(c, http.StatusConflict, errorRouteCompleted, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := s.store.SaveRouteProgress(r); err == store.ErrStateConflict {
		abortWithEncoding(c, http.StatusConflict, errorRouteCompleted, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	var suggestion *geo.Directions
	if update.ShouldReroute {
		directions, err := s.plan(c, position, r.EndLocation, tracking.RemainingWaypoints(r, update))
		if err != nil {
			logger.WithError(err).Warn("cannot suggest a reroute")
		} else {
			suggestion = &directions
		}
	}

	responseOK(c, gin.H{
		"update":         update,
		"status":         r.Status,
		"deviationCount": r.DeviationCount,
		"currentEta":     r.CurrentETA,
		"reroute":        suggestion,
	})
}

// reroute replans a route from the current position to its destination
func (s *Server) reroute(c *gin.Context) {
	var params struct {
		Latitude      *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
		Longitude     *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
		KeepWaypoints *bool    `json:"keepWaypoints"`
	}

	r, ok := s.loadRoute(c)
	if !ok || !s.routeAccess(c, r, true) {
		return
	}

	if c.Request.ContentLength != 0 && !bindJSON(c, &params) {
		return
	}

	if r.Status == schema.RouteCompleted {
		abortWithEncoding(c, http.StatusConflict, errorRouteCompleted)
		return
	}

	current := r.StartLocation
	switch {
	case params.Latitude != nil && params.Longitude != nil:
		current = schema.Coordinate{Lat: *params.Latitude, Lng: *params.Longitude}
	case params.Latitude != nil || params.Longitude != nil:
		abortWithEncoding(c, http.StatusBadRequest, invalidField("latitude", "required"))
		return
	case r.LastPosition != nil:
		current = *r.LastPosition
	}

	var waypoints []schema.Coordinate
	if params.KeepWaypoints == nil || *params.KeepWaypoints {
		waypoints = tracking.WaypointsAhead(r, current)
	}

	directions, err := s.plan(c, current, r.EndLocation, waypoints)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorDirectionsUnavailable, err)
		return
	}

	tracking.Replan(r, current, waypoints, directions.Path, directions.Distance, directions.Duration, s.now())

	if err := s.store.SaveRouteProgress(r); err == store.ErrStateConflict {
		abortWithEncoding(c, http.StatusConflict, errorRouteCompleted, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	responseOK(c, r)
}

func newShareToken() (string, error) {
	b := make([]byte, shareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// shareRoute issues a public read link of a route
func (s *Server) shareRoute(c *gin.Context) {
	var params struct {
		TTLHours int `json:"ttlHours" binding:"omitempty,min=1,max=168"`
	}

	r, ok := s.loadRoute(c)
	if !ok || !s.routeAccess(c, r, false) {
		return
	}

	if c.Request.ContentLength != 0 && !bindJSON(c, &params) {
		return
	}

	ttl := params.TTLHours
	if ttl == 0 {
		ttl = viper.GetInt("tracking.share_ttl")
	}
	if ttl <= 0 || ttl > maxShareTTLInHour {
		ttl = defaultShareTTL
	}

	token, err := newShareToken()
	if shouldInterupt(err, c) {
		return
	}
	expiresAt := s.now().Add(time.Duration(ttl) * time.Hour)

	if err := s.store.SetRouteShare(r.ID, &token, &expiresAt); err != nil {
		abortWithStoreError(c, err)
		return
	}

	data := gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"shareUrl": fmt.Sprintf("%s/routes/%s?token=%s",
			strings.TrimRight(viper.GetString("server.app_url"), "/"), r.ID, token),
	}
	if key := viper.GetString("maps.api_key"); key != "" {
		data["previewUrl"] = geo.StaticMapURL(key, r)
	}

	responseOK(c, data)
}

// revokeRouteShare clears the share link of a route
func (s *Server) revokeRouteShare(c *gin.Context) {
	r, ok := s.loadRoute(c)
	if !ok || !s.routeAccess(c, r, false) {
		return
	}

	if err := s.store.SetRouteShare(r.ID, nil, nil); err != nil {
		abortWithStoreError(c, err)
		return
	}

	responseOK(c, gin.H{"id": r.ID, "shared": false})
}
