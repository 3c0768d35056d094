package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-bd/lifeline-api/consts"
	"github.com/lifeline-bd/lifeline-api/lifecycle"
	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
	"github.com/lifeline-bd/lifeline-api/utils"
)

type bloodRequestParams struct {
	RequesterName   string    `json:"requesterName" binding:"required,max=100"`
	RequesterPhone  string    `json:"requesterPhone" binding:"required,bdphone"`
	RequesterEmail  string    `json:"requesterEmail" binding:"omitempty,email"`
	PatientName     string    `json:"patientName" binding:"required,max=100"`
	PatientAge      int       `json:"patientAge" binding:"omitempty,min=0,max=120"`
	PatientGender   string    `json:"patientGender" binding:"omitempty,oneof=male female other"`
	HospitalName    string    `json:"hospitalName" binding:"required,max=200"`
	HospitalAddress string    `json:"hospitalAddress" binding:"max=500"`
	BloodGroup      string    `json:"bloodGroup" binding:"required,bloodgroup"`
	UnitsNeeded     int       `json:"unitsNeeded" binding:"required,min=1,max=10"`
	Latitude        *float64  `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64  `json:"longitude" binding:"omitempty,min=-180,max=180"`
	District        string    `json:"district"`
	Division        string    `json:"division"`
	NeededBy        time.Time `json:"neededBy" binding:"required"`
	IsEmergency     bool      `json:"isEmergency"`
	Notes           string    `json:"notes" binding:"max=1000"`
}

func invalidField(field, tag string) ErrorResponse {
	resp := errorInvalidParameters
	resp.Fields = map[string]string{field: tag}
	return resp
}

// locate fills the district and division of a request. Names are normalized
// to the official ones, and a request which names neither is reverse geocoded
// when a resolver is configured.
func (s *Server) locate(c *gin.Context, r *schema.BloodRequest, params bloodRequestParams) (ErrorResponse, bool) {
	logger := log.WithField("api", "submitBloodRequest")

	switch {
	case params.District != "":
		district, division, err := consts.BdDistrict(params.District)
		if err != nil {
			return invalidField("district", "district"), false
		}
		if params.Division != "" {
			if d, err := consts.BdDivision(params.Division); err != nil || d != division {
				return invalidField("division", "division"), false
			}
		}
		r.District, r.Division = district, division
	case params.Division != "":
		division, err := consts.BdDivision(params.Division)
		if err != nil {
			return invalidField("division", "division"), false
		}
		r.Division = division
	case s.resolver != nil && params.Latitude != nil:
		d, err := s.resolver.ResolveDistrict(c, r.Location())
		if err != nil {
			logger.WithError(err).Warn("cannot resolve district of the request")
			break
		}
		r.District, r.Division = d.District, d.Division
		if r.HospitalAddress == "" {
			r.HospitalAddress = d.Address
		}
	}

	return ErrorResponse{}, true
}

// submitBloodRequest is the public intake of a blood need
func (s *Server) submitBloodRequest(c *gin.Context) {
	logger := log.WithField("api", "submitBloodRequest")

	var params bloodRequestParams
	if !bindJSON(c, &params) {
		return
	}

	if (params.Latitude == nil) != (params.Longitude == nil) {
		field := "latitude"
		if params.Longitude == nil {
			field = "longitude"
		}
		abortWithEncoding(c, http.StatusBadRequest, invalidField(field, "required"))
		return
	}

	now := s.now()
	urgency, emergency := lifecycle.ClassifyUrgency(params.NeededBy, now, params.IsEmergency)

	r := &schema.BloodRequest{
		RequesterName:   strings.TrimSpace(params.RequesterName),
		RequesterPhone:  params.RequesterPhone,
		RequesterEmail:  params.RequesterEmail,
		PatientName:     strings.TrimSpace(params.PatientName),
		PatientAge:      params.PatientAge,
		PatientGender:   params.PatientGender,
		HospitalName:    strings.TrimSpace(params.HospitalName),
		HospitalAddress: params.HospitalAddress,
		BloodGroup:      schema.BloodGroup(params.BloodGroup),
		UnitsNeeded:     params.UnitsNeeded,
		NeededBy:        params.NeededBy,
		Urgency:         urgency,
		Status:          schema.RequestSubmitted,
		IsEmergency:     emergency,
		Notes:           params.Notes,
	}
	if params.Latitude != nil {
		r.Latitude, r.Longitude = *params.Latitude, *params.Longitude
	}

	if resp, ok := s.locate(c, r, params); !ok {
		abortWithEncoding(c, http.StatusBadRequest, resp)
		return
	}

	created := false
	for attempt := 0; attempt < consts.TrackingIDAttempts; attempt++ {
		trackingID, err := s.trackingIDs.New(now)
		if err != nil {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorTrackingIDExhausted, err)
			return
		}
		r.TrackingID = trackingID

		err = s.store.CreateRequest(r)
		if err == store.ErrTrackingIDTaken {
			logger.WithField("tracking_id", trackingID).Warn("tracking id collision")
			continue
		} else if shouldInterupt(err, c) {
			return
		}

		created = true
		break
	}

	if !created {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorTrackingIDExhausted, utils.ErrTrackingIDExhausted)
		return
	}

	if r.RequesterEmail != "" {
		if err := s.background.NotifyRequestSubmitted(r.TrackingID); err != nil {
			logger.WithError(err).Error("cannot dispatch request submitted notification")
		}
	}

	responseOK(c, gin.H{
		"trackingId":  r.TrackingID,
		"status":      r.Status,
		"urgency":     r.Urgency,
		"isEmergency": r.IsEmergency,
	})
}

type timelineEvent struct {
	Status schema.RequestStatus `json:"status"`
	At     time.Time            `json:"at"`
}

type routeSummary struct {
	ID                uuid.UUID          `json:"id"`
	Status            schema.RouteStatus `json:"status"`
	CurrentETA        *time.Time         `json:"currentEta,omitempty"`
	Progress          float64            `json:"progress"`
	RemainingDistance float64            `json:"remainingDistance"`
	RemainingDuration float64            `json:"remainingDuration"`
}

// redactName keeps only the first character of a name
func redactName(name string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if size == 0 {
		return ""
	}
	return string(r) + "***"
}

// timeline lists the stamped transitions of a request in order
func timeline(r *schema.BloodRequest) []timelineEvent {
	assigned := schema.RequestDonorAssigned
	if r.Status == schema.RequestVolunteerAssigned {
		assigned = schema.RequestVolunteerAssigned
	}

	events := []timelineEvent{{Status: schema.RequestSubmitted, At: r.CreatedAt}}
	for _, e := range []struct {
		status schema.RequestStatus
		at     *time.Time
	}{
		{schema.RequestApproved, r.ApprovedAt},
		{assigned, r.AssignedAt},
		{schema.RequestDonorConfirmed, r.DonorConfirmedAt},
		{schema.RequestInProgress, r.InProgressAt},
		{schema.RequestCompleted, r.CompletedAt},
		{schema.RequestCancelled, r.CancelledAt},
	} {
		if e.at != nil {
			events = append(events, timelineEvent{Status: e.status, At: *e.at})
		}
	}
	return events
}

// trackRequest is the public status lookup by tracking id
func (s *Server) trackRequest(c *gin.Context) {
	logger := log.WithField("api", "trackRequest")

	r, err := s.store.GetRequestByTrackingID(strings.ToUpper(c.Param("trackingID")))
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	events := timeline(r)

	var summary *routeSummary
	route, err := s.store.GetRouteByRequest(r.ID)
	switch {
	case err == nil:
		summary = &routeSummary{
			ID:                route.ID,
			Status:            route.Status,
			CurrentETA:        route.CurrentETA,
			Progress:          route.Progress,
			RemainingDistance: route.RemainingDistance,
			RemainingDuration: route.RemainingDuration,
		}
	case !gorm.IsRecordNotFoundError(err):
		logger.WithError(err).Error("cannot query route of the request")
	}

	responseOK(c, gin.H{
		"trackingId":   r.TrackingID,
		"status":       r.Status,
		"urgency":      r.Urgency,
		"isEmergency":  r.IsEmergency,
		"bloodGroup":   r.BloodGroup,
		"unitsNeeded":  r.UnitsNeeded,
		"patientName":  redactName(r.PatientName),
		"hospitalName": r.HospitalName,
		"district":     r.District,
		"division":     r.Division,
		"neededBy":     r.NeededBy,
		"timeline":     events,
		"route":        summary,
	})
}

// parseBounds parses a `lat1,lng1,lat2,lng2` viewport
func parseBounds(value string) (*schema.Bounds, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bounds needs 4 numbers")
	}

	var n [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		n[i] = f
	}

	if n[0] < -90 || n[0] > 90 || n[2] < -90 || n[2] > 90 ||
		n[1] < -180 || n[1] > 180 || n[3] < -180 || n[3] > 180 {
		return nil, fmt.Errorf("bounds out of range")
	}

	b := schema.NewBounds(n[0], n[1], n[2], n[3])
	return &b, nil
}

type marker struct {
	TrackingID   string               `json:"trackingId"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	BloodGroup   schema.BloodGroup    `json:"bloodGroup"`
	UnitsNeeded  int                  `json:"unitsNeeded"`
	Urgency      schema.Urgency       `json:"urgency"`
	IsEmergency  bool                 `json:"isEmergency"`
	Status       schema.RequestStatus `json:"status"`
	HospitalName string               `json:"hospitalName"`
	District     string               `json:"district,omitempty"`
	NeededBy     time.Time            `json:"neededBy"`
}

// mapMarkers lists the active requests as points of the public map
func (s *Server) mapMarkers(c *gin.Context) {
	var filter schema.MarkerFilter

	if bg := c.Query("bloodGroup"); bg != "" {
		// an unescaped `+` arrives as a space
		filter.BloodGroup = schema.BloodGroup(strings.ReplaceAll(bg, " ", "+"))
		if !filter.BloodGroup.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, invalidField("bloodGroup", "bloodgroup"))
			return
		}
	}

	if u := c.Query("urgency"); u != "" {
		filter.Urgency = schema.Urgency(u)
		if !filter.Urgency.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, invalidField("urgency", "oneof"))
			return
		}
	}

	if b := c.Query("bounds"); b != "" {
		bounds, err := parseBounds(b)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, invalidField("bounds", "bounds"), err)
			return
		}
		filter.Bounds = bounds
	}

	requests, err := s.store.ListActiveRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	markers := make([]marker, 0, len(requests))
	for _, r := range requests {
		if r.Latitude == 0 && r.Longitude == 0 {
			continue
		}
		markers = append(markers, marker{
			TrackingID:   r.TrackingID,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
			BloodGroup:   r.BloodGroup,
			UnitsNeeded:  r.UnitsNeeded,
			Urgency:      r.Urgency,
			IsEmergency:  r.IsEmergency,
			Status:       r.Status,
			HospitalName: r.HospitalName,
			District:     r.District,
			NeededBy:     r.NeededBy,
		})
	}

	responseOK(c, markers)
}
