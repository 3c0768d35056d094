package store

import (
	"time"

	"github.com/lifeline-bd/lifeline-api/schema"
)

// AnalyticsDashboard returns the headline numbers of the requests created since
// the given time together with the current donor and volunteer pool
func (s *LifelineStore) AnalyticsDashboard(since time.Time) (*schema.DashboardStats, error) {
	var totals struct {
		TotalRequests     int64
		ActiveRequests    int64
		EmergencyRequests int64
	}
	if err := s.ormDB.Raw(
		`SELECT count(*) AS total_requests,
			count(*) FILTER (WHERE status NOT IN ('completed', 'cancelled')) AS active_requests,
			count(*) FILTER (WHERE is_emergency) AS emergency_requests
		FROM blood_requests WHERE created_at >= ?`, since,
	).Scan(&totals).Error; err != nil {
		return nil, err
	}

	var pool struct {
		AvailableDonors    int64
		ActiveVolunteers   int64
		CompletedDonations int64
	}
	if err := s.ormDB.Raw(
		`SELECT (SELECT count(*) FROM donors WHERE is_available) AS available_donors,
			(SELECT count(*) FROM volunteers WHERE is_active) AS active_volunteers,
			(SELECT count(*) FROM donations WHERE donated_at >= ?) AS completed_donations`, since,
	).Scan(&pool).Error; err != nil {
		return nil, err
	}

	stats := schema.DashboardStats{
		TotalRequests:      totals.TotalRequests,
		ActiveRequests:     totals.ActiveRequests,
		EmergencyRequests:  totals.EmergencyRequests,
		AvailableDonors:    pool.AvailableDonors,
		ActiveVolunteers:   pool.ActiveVolunteers,
		CompletedDonations: pool.CompletedDonations,
		ByStatus:           []schema.StatusCount{},
		ByUrgency:          []schema.UrgencyCount{},
	}

	if err := s.ormDB.Raw(
		`SELECT status, count(*) AS count FROM blood_requests
		WHERE created_at >= ? GROUP BY status ORDER BY count DESC`, since,
	).Scan(&stats.ByStatus).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Raw(
		`SELECT urgency, count(*) AS count FROM blood_requests
		WHERE created_at >= ? GROUP BY urgency ORDER BY count DESC`, since,
	).Scan(&stats.ByUrgency).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// AnalyticsTrends returns the number of requests created and completed per day
func (s *LifelineStore) AnalyticsTrends(since time.Time) ([]schema.DailyTrend, error) {
	trends := []schema.DailyTrend{}
	if err := s.ormDB.Raw(
		`SELECT to_char(d.day, 'YYYY-MM-DD') AS day,
			(SELECT count(*) FROM blood_requests r WHERE r.created_at::date = d.day) AS created,
			(SELECT count(*) FROM blood_requests r WHERE r.completed_at::date = d.day) AS completed
		FROM generate_series(?::date, now()::date, interval '1 day') AS d(day)
		ORDER BY d.day`, since,
	).Scan(&trends).Error; err != nil {
		return nil, err
	}
	return trends, nil
}

// AnalyticsBloodGroups returns the demand of each blood group
func (s *LifelineStore) AnalyticsBloodGroups(since time.Time) ([]schema.BloodGroupDemand, error) {
	demand := []schema.BloodGroupDemand{}
	if err := s.ormDB.Raw(
		`SELECT blood_group, count(*) AS requests,
			coalesce(sum(units_needed), 0) AS units,
			count(*) FILTER (WHERE status = 'completed') AS fulfilled
		FROM blood_requests WHERE created_at >= ?
		GROUP BY blood_group ORDER BY requests DESC`, since,
	).Scan(&demand).Error; err != nil {
		return nil, err
	}
	return demand, nil
}

// AnalyticsVolunteers returns the volunteers who handled the most requests
func (s *LifelineStore) AnalyticsVolunteers(limit int) ([]schema.VolunteerRank, error) {
	ranks := []schema.VolunteerRank{}
	if err := s.ormDB.Raw(
		`SELECT v.id AS volunteer_id, p.full_name, v.district,
			v.requests_handled, v.donations_facilitated, v.success_rate,
			count(a.id) AS accepted_assignments
		FROM volunteers v
		JOIN profiles p ON p.id = v.profile_id
		LEFT JOIN assignments a ON a.assignee_id = v.id AND a.type = 'volunteer' AND a.status IN ('accepted', 'completed')
		GROUP BY v.id, p.full_name
		ORDER BY v.requests_handled DESC, v.donations_facilitated DESC
		LIMIT ?`, limit,
	).Scan(&ranks).Error; err != nil {
		return nil, err
	}
	return ranks, nil
}

// AnalyticsGeographic returns the request counts per district
func (s *LifelineStore) AnalyticsGeographic(since time.Time) ([]schema.DistrictCount, error) {
	counts := []schema.DistrictCount{}
	if err := s.ormDB.Raw(
		`SELECT district, division, count(*) AS requests,
			count(*) FILTER (WHERE status = 'completed') AS completed
		FROM blood_requests WHERE created_at >= ? AND district <> ''
		GROUP BY district, division ORDER BY requests DESC`, since,
	).Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

const latencySelect = `SELECT
	coalesce(avg(extract(epoch FROM approved_at - created_at)) / 3600, 0) AS avg_approval_hours,
	coalesce(avg(extract(epoch FROM completed_at - created_at)) FILTER (WHERE status = 'completed') / 3600, 0) AS avg_completion_hours,
	count(approved_at) AS approved_requests,
	count(*) FILTER (WHERE status = 'completed') AS completed_requests`

// AnalyticsResponseTimes returns the mean hours from submission to approval
// and to completion, overall and per urgency
func (s *LifelineStore) AnalyticsResponseTimes(since time.Time) (*schema.ResponseTimes, error) {
	times := schema.ResponseTimes{ByUrgency: []schema.LatencyStats{}}

	if err := s.ormDB.Raw(
		latencySelect+` FROM blood_requests WHERE created_at >= ?`, since,
	).Scan(&times.Overall).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Raw(
		latencySelect+`, urgency FROM blood_requests WHERE created_at >= ?
		GROUP BY urgency ORDER BY urgency`, since,
	).Scan(&times.ByUrgency).Error; err != nil {
		return nil, err
	}

	return &times, nil
}
