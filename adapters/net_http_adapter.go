package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// NetHTTPAdapter is the standard HTTP adapter implementation using net/http package.
type NetHTTPAdapter struct {
	client *http.Client
}

// Ensure NetHTTPAdapter implements HTTPAdapter interface
var _ HTTPAdapter = (*NetHTTPAdapter)(nil)

// NewNetHTTPAdapter creates a new NetHTTPAdapter instance.
func NewNetHTTPAdapter() HTTPAdapter {
	return NewNetHTTPAdapterWithClient(&http.Client{})
}

// NewNetHTTPAdapterWithClient creates a NetHTTPAdapter on top of an existing client.
func NewNetHTTPAdapterWithClient(client *http.Client) HTTPAdapter {
	if client == nil {
		client = &http.Client{}
	}
	return &NetHTTPAdapter{client: client}
}

// Send performs the request described by request.
func (h *NetHTTPAdapter) Send(ctx context.Context, request *Request) (*HTTPResponse, error) {
	req, err := request.HTTPRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return &HTTPResponse{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
	}, nil
}
