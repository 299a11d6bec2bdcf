package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
)

// RouteSearcher is the slice of the backend the search flow needs.
type RouteSearcher interface {
	FindRoutes(ctx context.Context, req dtos.SearchRequest) (dtos.ResultSet, int, error)
}

// ConflictValidator is the slice of the backend the conflict flow needs.
type ConflictValidator interface {
	ValidateFlights(ctx context.Context, flightNumbers []string) (*dtos.ConflictValidation, int, error)
	GetConflictReport(ctx context.Context) (*dtos.ConflictReport, int, error)
}

// ConstantsFetcher serves the lookup tables.
type ConstantsFetcher interface {
	GetConstants(ctx context.Context) (*dtos.ConstantsResponse, int, error)
}

// SearchAPIProvider talks to the route-search and conflict-validation
// backend over HTTP. Both engines are opaque to Routeview: this provider
// only moves JSON.
type SearchAPIProvider struct {
	BaseURL string
	Client  *http.Client
}

var (
	_ RouteSearcher     = (*SearchAPIProvider)(nil)
	_ ConflictValidator = (*SearchAPIProvider)(nil)
	_ ConstantsFetcher  = (*SearchAPIProvider)(nil)
)

// NewSearchAPIProvider creates a new route-search backend provider
func NewSearchAPIProvider(baseURL string, timeout time.Duration) *SearchAPIProvider {
	return &SearchAPIProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FindRoutes submits one multi-criterion route search.
func (p *SearchAPIProvider) FindRoutes(ctx context.Context, req dtos.SearchRequest) (dtos.ResultSet, int, error) {
	if req.Start == "" || req.End == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Start and end airports are required",
		}
	}

	var result dtos.ResultSet
	status, err := p.doPost(ctx, "/api/find-routes", req, &result)
	if err != nil {
		return nil, status, err
	}

	return result, status, nil
}

// GetConstants fetches the airline/airport lookup tables.
func (p *SearchAPIProvider) GetConstants(ctx context.Context) (*dtos.ConstantsResponse, int, error) {
	var result dtos.ConstantsResponse
	status, err := p.doGET(ctx, "/api/constants", &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// ValidateFlights checks one specific flight-number set for schedule
// conflicts.
func (p *SearchAPIProvider) ValidateFlights(ctx context.Context, flightNumbers []string) (*dtos.ConflictValidation, int, error) {
	if len(flightNumbers) == 0 {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "At least one flight number is required",
		}
	}

	reqBody := dtos.ValidateFlightsRequest{FlightNumbers: flightNumbers}

	var result dtos.ConflictValidation
	status, err := p.doPost(ctx, "/api/validate-collisions", reqBody, &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// GetConflictReport fetches the schedule-wide conflict report.
func (p *SearchAPIProvider) GetConflictReport(ctx context.Context) (*dtos.ConflictReport, int, error) {
	var result dtos.ConflictReport
	status, err := p.doGET(ctx, "/api/collision-report", &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

// doGET performs a GET request against the backend
func (p *SearchAPIProvider) doGET(ctx context.Context, endpoint string, result interface{}) (int, error) {
	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, p.buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// doPost performs a POST request with a JSON body
func (p *SearchAPIProvider) doPost(ctx context.Context, endpoint string, payload interface{}, result interface{}) (int, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to marshal request body",
			Err:     err,
		}
	}

	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payloadBytes))
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, p.buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// buildHTTPError maps a non-2xx backend response to a ProviderError
func (p *SearchAPIProvider) buildHTTPError(statusCode int, endpoint, body string) error {
	code := constants.ErrCodeBackendError
	if statusCode == http.StatusTooManyRequests {
		code = constants.ErrCodeRateLimited
	}

	return &ProviderError{
		Code:    code,
		Message: fmt.Sprintf("%s (HTTP %d on %s)", constants.GetErrorMessage(code), statusCode, endpoint),
		Details: body,
	}
}
