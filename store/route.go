package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifeline-bd/lifeline-api/schema"
)

func (s *LifelineStore) GetRoute(id uuid.UUID) (*schema.Route, error) {
	var r schema.Route
	if err := s.ormDB.Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *LifelineStore) GetRouteByRequest(requestID uuid.UUID) (*schema.Route, error) {
	var r schema.Route
	if err := s.ormDB.Where("request_id = ?", requestID).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveRouteProgress writes the tracking state and planned path of a route. A
// route completed in the meantime is not overwritten and ErrStateConflict is
// returned.
func (s *LifelineStore) SaveRouteProgress(r *schema.Route) error {
	return guardedUpdate(s.ormDB, &schema.Route{}, map[string]interface{}{
		"start_location":     r.StartLocation,
		"waypoints":          r.Waypoints,
		"geometry":           r.Geometry,
		"last_position":      r.LastPosition,
		"distance_meters":    r.DistanceMeters,
		"duration_seconds":   r.DurationSeconds,
		"remaining_distance": r.RemainingDistance,
		"remaining_duration": r.RemainingDuration,
		"progress":           r.Progress,
		"current_step_index": r.CurrentStepIndex,
		"deviation_count":    r.DeviationCount,
		"status":             r.Status,
		"current_eta":        r.CurrentETA,
		"started_at":         r.StartedAt,
		"completed_at":       r.CompletedAt,
	}, "id = ? AND status <> ?", r.ID, schema.RouteCompleted)
}

// SetRouteShare issues or, with a nil token, revokes the share link of a route
func (s *LifelineStore) SetRouteShare(id uuid.UUID, token *string, expiresAt *time.Time) error {
	return guardedUpdate(s.ormDB, &schema.Route{}, map[string]interface{}{
		"share_token":      token,
		"share_expires_at": expiresAt,
	}, "id = ?", id)
}
