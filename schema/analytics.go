package schema

import "time"

// AnalyticsWindow is the trailing window every aggregation is computed over
const AnalyticsWindow = 30 * 24 * time.Hour

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type UrgencyCount struct {
	Urgency string `json:"urgency"`
	Count   int64  `json:"count"`
}

type DashboardStats struct {
	TotalRequests      int64          `json:"totalRequests"`
	ActiveRequests     int64          `json:"activeRequests"`
	EmergencyRequests  int64          `json:"emergencyRequests"`
	AvailableDonors    int64          `json:"availableDonors"`
	ActiveVolunteers   int64          `json:"activeVolunteers"`
	CompletedDonations int64          `json:"completedDonations"`
	ByStatus           []StatusCount  `json:"byStatus"`
	ByUrgency          []UrgencyCount `json:"byUrgency"`
}

type DailyTrend struct {
	Day       string `json:"day"`
	Created   int64  `json:"created"`
	Completed int64  `json:"completed"`
}

type BloodGroupDemand struct {
	BloodGroup string `json:"bloodGroup"`
	Requests   int64  `json:"requests"`
	Units      int64  `json:"units"`
	Fulfilled  int64  `json:"fulfilled"`
}

type VolunteerRank struct {
	VolunteerID          string  `json:"volunteerId"`
	FullName             string  `json:"fullName"`
	District             string  `json:"district"`
	RequestsHandled      int64   `json:"requestsHandled"`
	DonationsFacilitated int64   `json:"donationsFacilitated"`
	AcceptedAssignments  int64   `json:"acceptedAssignments"`
	SuccessRate          float64 `json:"successRate"`
}

type DistrictCount struct {
	District  string `json:"district"`
	Division  string `json:"division"`
	Requests  int64  `json:"requests"`
	Completed int64  `json:"completed"`
}

type LatencyStats struct {
	Urgency            string  `json:"urgency,omitempty"`
	AvgApprovalHours   float64 `json:"avgApprovalHours"`
	AvgCompletionHours float64 `json:"avgCompletionHours"`
	ApprovedRequests   int64   `json:"approvedRequests"`
	CompletedRequests  int64   `json:"completedRequests"`
}

type ResponseTimes struct {
	Overall   LatencyStats   `json:"overall"`
	ByUrgency []LatencyStats `json:"byUrgency"`
}
