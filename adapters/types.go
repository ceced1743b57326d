package adapters

// Event is a normalized page event handed over by the edge pipeline.
// Empty strings mean the value is absent.
type Event struct {
	UUID         string   `json:"uuid"`
	SessionStart bool     `json:"session_start"`
	Session      Session  `json:"session"`
	Identify     Identify `json:"identify"`
	Client       Client   `json:"client"`
	Page         *Page    `json:"page,omitempty"`
	Campaign     Campaign `json:"campaign"`
}

// Session carries the already resolved session of the visitor.
type Session struct {
	SessionID         string `json:"session_id"`
	PreviousSessionID string `json:"previous_session_id"`
	SessionStart      bool   `json:"session_start"`
}

// Identify carries the visitor identifiers.
type Identify struct {
	UserID      string `json:"user_id"`
	AnonymousID string `json:"anonymous_id"`
	EdgeeID     string `json:"edgee_id"`
}

// Client describes the device the event was collected from.
type Client struct {
	UserAgent      string `json:"user_agent"`
	Locale         string `json:"locale"`
	IP             string `json:"ip"`
	OSName         string `json:"os_name"`
	OSVersion      string `json:"os_version"`
	UserAgentModel string `json:"user_agent_model"`
	City           string `json:"city"`
	Region         string `json:"region"`
	CountryCode    string `json:"country_code"`
}

// Page holds the page context of a page view.
type Page struct {
	Referrer string `json:"referrer"`
}

// Campaign holds the UTM parameters of the visit.
type Campaign struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Medium  string `json:"medium"`
	Term    string `json:"term"`
	Content string `json:"content"`
}
