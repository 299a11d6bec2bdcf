package dtos

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}
