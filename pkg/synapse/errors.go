package synapse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySynapseName is returned by RunSynapse for a synapse without a name.
	ErrEmptySynapseName = errors.New("synapse: name is required")

	// ErrMalformedResponse is returned when a response body is not the JSON
	// the endpoint is expected to return.
	ErrMalformedResponse = errors.New("synapse: malformed response")
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}
