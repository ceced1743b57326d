package amplitude

import (
	"github.com/Tap30/amplitude-go/adapters"
)

// Re-export adapter types for convenience
type (
	Event          = adapters.Event
	Session        = adapters.Session
	Identify       = adapters.Identify
	Client         = adapters.Client
	Page           = adapters.Page
	Campaign       = adapters.Campaign
	UserProperties = adapters.UserProperties
	Request        = adapters.Request
	Header         = adapters.Header
	Payload        = adapters.Payload
	Options        = adapters.Options
	AnalyticsEvent = adapters.AnalyticsEvent
	SessionID      = adapters.SessionID
	Property       = adapters.Property
	HTTPAdapter    = adapters.HTTPAdapter
	HTTPResponse   = adapters.HTTPResponse
	LoggerAdapter  = adapters.LoggerAdapter
	LogLevel       = adapters.LogLevel
)

const (
	// DefaultEndpoint is the Amplitude HTTP V2 ingestion URL.
	DefaultEndpoint = "https://api2.amplitude.com/2/httpapi"

	// CredentialAPIKey is the required credential holding the project API key.
	CredentialAPIKey = "amplitude_api_key"
	// CredentialEndpoint optionally overrides DefaultEndpoint.
	CredentialEndpoint = "amplitude_endpoint"

	Library  = "Edgee"
	Platform = "Web"

	EventTypeSessionEnd   = "session_end"
	EventTypeSessionStart = "session_start"
	EventTypePageView     = "[Amplitude] Page Viewed"
)
