package adapters

import "context"

// HTTPResponse represents the response from an HTTP request.
type HTTPResponse struct {
	OK     bool
	Status int
}

// HTTPAdapter is an interface for HTTP communication.
// Implement this interface to use custom HTTP clients.
type HTTPAdapter interface {
	// Send delivers a mapped request.
	//
	// Returns HTTP response or error. Non-2xx statuses are not errors.
	Send(ctx context.Context, request *Request) (*HTTPResponse, error)
}
