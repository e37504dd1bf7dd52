package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials reports that the client ID or secret was absent from
// the configuration.
var ErrMissingCredentials = errors.New("spotify client ID and secret are required")

// UpstreamError is a failure reported by the Spotify API itself (throttling,
// invalid token, malformed query), as opposed to a transport or decoding
// failure on our side.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("spotify API error: %s (status %d)", e.Message, e.Status)
}
