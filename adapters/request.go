package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Header is an HTTP header, encoded as a [name, value] pair.
type Header struct {
	Name  string
	Value string
}

func (h Header) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{h.Name, h.Value})
}

func (h *Header) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	h.Name, h.Value = pair[0], pair[1]
	return nil
}

// Request describes the HTTP call the host pipeline has to perform.
// The zero Request is the empty result and encodes as {}.
type Request struct {
	Method  string   `json:"method,omitempty"`
	URL     string   `json:"url,omitempty"`
	Headers []Header `json:"headers,omitempty"`
	Data    *Payload `json:"data,omitempty"`
}

// IsEmpty reports whether the request carries nothing to deliver.
func (r *Request) IsEmpty() bool {
	return r == nil || (r.Method == "" && r.URL == "" && r.Data == nil)
}

// Header returns the first header value stored under name.
func (r *Request) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if http.CanonicalHeaderKey(h.Name) == http.CanonicalHeaderKey(name) {
			return h.Value, true
		}
	}
	return "", false
}

// Body encodes the request data as JSON.
func (r *Request) Body() ([]byte, error) {
	body, err := json.Marshal(r.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return body, nil
}

// HTTPRequest converts the descriptor into a *http.Request.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	if r.IsEmpty() {
		return nil, errors.New("empty request")
	}
	body, err := r.Body()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for _, h := range r.Headers {
		req.Header.Set(h.Name, h.Value)
	}
	return req, nil
}
