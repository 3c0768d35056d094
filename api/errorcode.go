package api

import (
	"github.com/lifeline-bd/lifeline-api/store"
	"github.com/lifeline-bd/lifeline-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "authentication required",
		1005: "permission denied",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid login credentials",

		1100: store.ErrProfileRegistered.Error(),
		1101: "profile not found",
		1102: "admin accounts cannot be registered",

		1200: "request not found",
		1201: store.ErrStateConflict.Error(),
		1202: "invalid status transition",
		1203: utils.ErrTrackingIDExhausted.Error(),

		1300: "assignment not found",
		1301: store.ErrAssignmentExists.Error(),
		1302: "you are not the assignee of this assignment",
		1303: "donor is not available",
		1304: "donor is within the donation deferral period",
		1305: "donor blood group is not compatible with the request",
		1306: "assignee not found",
		1307: "assignment is not accepted yet",
		1308: "volunteer is not active",

		1400: "donation not found",

		1500: "route not found",
		1501: "route is already completed",
		1502: "directions provider unavailable",
		1503: "invalid share token",

		1600: "unknown analytics type",

		1700: "notification not found",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorAuthenticationRequired     = errorJSON(1004)
	errorPermissionDenied           = errorJSON(1005)

	errorInvalidParameters   = errorJSON(1010)
	errorCannotParseRequest  = errorJSON(1011)
	errorInvalidCredentials  = errorJSON(1012)
	errorProfileRegistered   = errorJSON(1100)
	errorProfileNotFound     = errorJSON(1101)
	errorAdminNotRegistrable = errorJSON(1102)

	errorRequestNotFound     = errorJSON(1200)
	errorStateConflict       = errorJSON(1201)
	errorInvalidTransition   = errorJSON(1202)
	errorTrackingIDExhausted = errorJSON(1203)

	errorAssignmentNotFound    = errorJSON(1300)
	errorAssignmentExists      = errorJSON(1301)
	errorNotAssignee           = errorJSON(1302)
	errorDonorUnavailable      = errorJSON(1303)
	errorDonorDeferred         = errorJSON(1304)
	errorBloodGroupMismatch    = errorJSON(1305)
	errorAssigneeNotFound      = errorJSON(1306)
	errorAssignmentNotAccepted = errorJSON(1307)
	errorVolunteerInactive     = errorJSON(1308)

	errorDonationNotFound = errorJSON(1400)

	errorRouteNotFound         = errorJSON(1500)
	errorRouteCompleted        = errorJSON(1501)
	errorDirectionsUnavailable = errorJSON(1502)
	errorInvalidShareToken     = errorJSON(1503)

	errorUnknownAnalyticsType = errorJSON(1600)

	errorNotificationNotFound = errorJSON(1700)
)

type ErrorResponse struct {
	Code    int64             `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
