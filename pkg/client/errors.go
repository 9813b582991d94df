package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors classifying upstream failures. Handlers switch on
// these to pick the outward status code.
var (
	// ErrUpstreamTimeout marks a request that exceeded the client timeout.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrUpstreamUnavailable marks any other transport failure
	// (connection refused, DNS, non-2xx where the client checks status).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNoRoute means the routing provider answered but found no route.
	// Absence of a result, not a malfunction.
	ErrNoRoute = errors.New("no route found")
)

// APIError is a non-success code reported inside an otherwise readable
// upstream response body, such as OpenWeatherMap's "city not found".
// Message carries the upstream's human-readable text, possibly empty.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream reported code %s", e.Code)
	}
	return fmt.Sprintf("upstream reported code %s: %s", e.Code, e.Message)
}

// wrapTransport classifies a failed round trip into one of the
// transport sentinels while keeping the cause in the chain.
func wrapTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
