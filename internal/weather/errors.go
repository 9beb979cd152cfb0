package weather

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrConfig means the service cannot call upstream because it lacks an API key.
	ErrConfig = errors.New("CWA API key is not configured")
	// ErrValidation means the request is missing a city name.
	ErrValidation = errors.New("city name is required")
	// ErrNotFound means upstream returned no record for the requested city.
	ErrNotFound = errors.New("no data for location")
	// ErrMalformedData means the upstream payload lacks an expected substructure.
	ErrMalformedData = errors.New("malformed upstream data")
	// ErrServer covers transport failures reaching upstream and undecodable responses.
	ErrServer = errors.New("failed to reach CWA API")
)

// UpstreamError carries a non-2xx answer from the CWA API so the handler can
// pass its status through.
type UpstreamError struct {
	StatusCode int
	// Message is the upstream body's "message" field, if it had one.
	Message string
	// Details is the upstream body, decoded as JSON when possible.
	Details any
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("CWA API returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("CWA API returned status %d", e.StatusCode)
}

// newUpstreamError interprets a failed response body.
func newUpstreamError(statusCode int, body []byte) *UpstreamError {
	upErr := &UpstreamError{StatusCode: statusCode}
	if len(body) == 0 {
		return upErr
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		upErr.Details = string(body)
		return upErr
	}
	upErr.Details = decoded

	if obj, ok := decoded.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok {
			upErr.Message = msg
		}
	}
	return upErr
}
