package api

import "github.com/agrinet/cropguard-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid API key",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1500: store.ErrStorageUnavailable.Error(),
		1501: "report not found",
	}

	errorInternalServer     = errorJSON(999)
	errorInvalidAPIKey      = errorJSON(1001)
	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorStorageUnavailable = errorJSON(1500)
	errorReportNotFound     = errorJSON(1501)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
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
