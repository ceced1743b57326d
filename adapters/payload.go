package adapters

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Payload is the body accepted by the Amplitude HTTP V2 API.
type Payload struct {
	APIKey  string           `json:"api_key"`
	Options Options          `json:"options"`
	Events  []AnalyticsEvent `json:"events"`
}

// Options tunes how the ingestion API validates identifiers.
type Options struct {
	MinIDLength int `json:"min_id_length"`
}

// AnalyticsEvent is a single Amplitude event.
// Pointer fields are omitted from the JSON body when nil.
type AnalyticsEvent struct {
	EventType       string          `json:"event_type"`
	Library         string          `json:"library"`
	Platform        string          `json:"platform"`
	Time            int64           `json:"time"`
	SessionID       *SessionID      `json:"session_id,omitempty"`
	UserID          *string         `json:"user_id,omitempty"`
	DeviceID        string          `json:"device_id"`
	EventProperties []Property      `json:"event_properties"`
	UserProperties  *UserProperties `json:"user_properties,omitempty"`

	UserAgent   *string `json:"user_agent,omitempty"`
	Language    *string `json:"language,omitempty"`
	IP          *string `json:"ip,omitempty"`
	InsertID    *string `json:"insert_id,omitempty"`
	OSName      *string `json:"os_name,omitempty"`
	OSVersion   *string `json:"os_version,omitempty"`
	DeviceModel *string `json:"device_model,omitempty"`
	City        *string `json:"city,omitempty"`
	Region      *string `json:"region,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// UserProperties are the user property operations attached to an event.
type UserProperties struct {
	AnonymousID string            `json:"anonymous_id,omitempty"`
	Set         map[string]string `json:"$set"`
	SetOnce     map[string]string `json:"$setOnce"`
}

// SessionID is a session identifier scaled to milliseconds.
// An invalid identifier is kept and rendered as JSON null.
type SessionID struct {
	Millis int64
	Valid  bool
}

// Positive reports whether the identifier refers to a real session.
func (s SessionID) Positive() bool {
	return s.Valid && s.Millis > 0
}

func (s SessionID) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, s.Millis, 10), nil
}

func (s *SessionID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = SessionID{}
		return nil
	}
	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}
	*s = SessionID{Millis: millis, Valid: true}
	return nil
}

// Property is an ordered event property, encoded as a [key, value] pair.
type Property struct {
	Key   string
	Value string
}

func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Key, p.Value})
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Key, p.Value = pair[0], pair[1]
	return nil
}
