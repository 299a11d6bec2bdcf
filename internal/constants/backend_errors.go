package constants

// Backend Error Codes
// These constants define specific error scenarios for the route-search and
// conflict-validation backends.

const (
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeBackendError      = "BACKEND_ERROR"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

// BackendErrorMessages maps error codes to human-readable messages.
var BackendErrorMessages = map[string]string{
	ErrCodeNetworkError:      "Could not reach the flight search backend",
	ErrCodeBackendError:      "The flight search backend returned an error",
	ErrCodeRateLimited:       "Too many requests to the flight search backend",
	ErrCodeInvalidDataFormat: "The backend response could not be parsed",
}

// GetErrorMessage returns the human-readable message for an error code.
func GetErrorMessage(code string) string {
	if msg, exists := BackendErrorMessages[code]; exists {
		return msg
	}
	return "Unknown backend error"
}
