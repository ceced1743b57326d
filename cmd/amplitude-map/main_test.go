package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	amplitude "github.com/Tap30/amplitude-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventJSON = `{
	"uuid": "evt-1",
	"session_start": true,
	"session": {"session_id": "6", "previous_session_id": "5", "session_start": true},
	"identify": {"user_id": "", "anonymous_id": "", "edgee_id": "edge-123"},
	"client": {"user_agent": "ua", "locale": "fr-FR", "ip": "198.51.100.1", "os_name": "", "os_version": "", "user_agent_model": ""},
	"page": {"referrer": "https://example.com/x"}
}`

func writeCredentials(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_MapsEventFromStdin(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-api-key", "cli-key"}, strings.NewReader(eventJSON), &out)
	require.NoError(t, err)

	var req amplitude.Request
	require.NoError(t, json.Unmarshal(out.Bytes(), &req))
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "cli-key", req.Data.APIKey)
	require.Len(t, req.Data.Events, 3)
	assert.Equal(t, "edge-123", req.Data.Events[2].DeviceID)
}

func TestRun_UsesCredentialsFile(t *testing.T) {
	path := writeCredentials(t, "amplitude_api_key: file-key\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-credentials", path, "-sample"}, nil, &out))
	assert.Contains(t, out.String(), `"api_key": "file-key"`)
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("AMPLITUDE_API_KEY", "ignored")

	err := run([]string{}, strings.NewReader(eventJSON), &bytes.Buffer{})
	assert.ErrorIs(t, err, amplitude.ErrMissingCredential)
}

func TestRun_InvalidEvent(t *testing.T) {
	err := run([]string{"-api-key", "k"}, strings.NewReader("{"), &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-api-key", "k"}, strings.NewReader(""), &bytes.Buffer{})
	assert.EqualError(t, err, "no event given")
}

func TestRun_Send(t *testing.T) {
	var received atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		assert.Equal(t, "198.51.100.1", r.Header.Get("X-Forwarded-For"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := writeCredentials(t, "amplitude_api_key: k\namplitude_endpoint: "+server.URL+"\n")

	require.NoError(t, run([]string{"-credentials", path, "-send"}, strings.NewReader(eventJSON), &bytes.Buffer{}))
	assert.Equal(t, int32(1), received.Load())
}

func TestRun_SendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	path := writeCredentials(t, "amplitude_api_key: k\namplitude_endpoint: "+server.URL+"\n")

	err := run([]string{"-credentials", path, "-send"}, strings.NewReader(eventJSON), &bytes.Buffer{})
	assert.EqualError(t, err, "delivery rejected with status 400")
}
