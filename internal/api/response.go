package api

import (
	"encoding/json"
	"net/http"
	"time"

	"flightdeck/routeview/internal/common"
	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/models/dtos"
)

// respondSuccess sends a standardized JSON success response.
func respondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any) {
	writeJSON(w, http.StatusOK, dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: common.GetResponseTime(initTime),
		Data:         data,
	})
}

// respondError sends a standardized JSON error response.
func respondError(w http.ResponseWriter, initTime time.Time, statusCode int, message string) {
	writeJSON(w, statusCode, dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ResponseTime: common.GetResponseTime(initTime),
	})
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
