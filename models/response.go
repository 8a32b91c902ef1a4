package models

// Response codes
const (
	// success
	CodeSuccess = 0

	// client errors (1000-1999)
	CodeInvalidParams   = 1000 // invalid parameter value
	CodeMissingParams   = 1001 // required parameter missing
	CodeUnknownTripType = 1002 // trip_type outside the closed set
	CodeUnknownSeason   = 1003 // season outside the closed set

	// server errors (2000-2999)
	CodeServerError   = 2000 // internal error
	CodeCatalogError  = 2001 // catalog load/refresh failure
	CodeCatalogEmpty  = 2002 // no catalog snapshot available
	CodeDatabaseError = 2003 // database error
)

// CodeMessages maps response codes to their default messages.
var CodeMessages = map[int]string{
	CodeSuccess:         "success",
	CodeInvalidParams:   "invalid parameters",
	CodeMissingParams:   "missing required parameters",
	CodeUnknownTripType: "unknown trip type",
	CodeUnknownSeason:   "unknown season",
	CodeServerError:     "internal server error",
	CodeCatalogError:    "catalog error",
	CodeCatalogEmpty:    "catalog not loaded",
	CodeDatabaseError:   "database error",
}

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope with the code's default message.
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse builds an error envelope with a custom message.
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
