package amplitude

import (
	"errors"
	"net/http"
	"time"

	"github.com/Tap30/amplitude-go/adapters"
)

// MapperOption customizes a PageViewMapper.
type MapperOption func(*PageViewMapper)

// WithLogger sets the logger used by the mapper.
func WithLogger(logger LoggerAdapter) MapperOption {
	return func(m *PageViewMapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock replaces time.Now. The clock is read once per emitted event.
func WithClock(now func() time.Time) MapperOption {
	return func(m *PageViewMapper) {
		if now != nil {
			m.now = now
		}
	}
}

// PageViewMapper converts page events into Amplitude ingestion requests.
// It holds no mutable state and is safe for concurrent use.
type PageViewMapper struct {
	config Config
	logger LoggerAdapter
	now    func() time.Time
}

// NewPageViewMapper creates a mapper bound to config. A Config built by
// NewConfig is always accepted; a literal Config needs an API key.
func NewPageViewMapper(config Config, opts ...MapperOption) (*PageViewMapper, error) {
	if !config.validated && config.APIKey == "" {
		return nil, &MissingCredentialError{Key: CredentialAPIKey}
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}

	m := &PageViewMapper{
		config: config,
		logger: adapters.NewNoOpLoggerAdapter(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Map builds the request for a single page event. The payload holds, in
// order, an optional session_end, an optional session_start and the page view.
func (m *PageViewMapper) Map(event *Event) (*Request, error) {
	if event == nil {
		return nil, errors.New("event is required")
	}

	who := resolveIdentity(event.Identify)
	payload := &Payload{
		APIKey:  m.config.APIKey,
		Options: Options{MinIDLength: 1},
		Events:  make([]AnalyticsEvent, 0, 3),
	}

	if endsPreviousSession(event) {
		previous := ParseSessionID(event.Session.PreviousSessionID)
		end := m.newEvent(EventTypeSessionEnd, who)
		end.SessionID = &previous
		payload.Events = append(payload.Events, end)
	}

	sessionID := ParseSessionID(event.Session.SessionID)

	if event.Session.SessionStart {
		start := m.newEvent(EventTypeSessionStart, who)
		start.SessionID = &sessionID
		payload.Events = append(payload.Events, start)
	}

	view, err := m.pageView(event, who, sessionID)
	if err != nil {
		return nil, err
	}
	payload.Events = append(payload.Events, view)

	m.logger.Debug("Mapped page event %s into %d events", event.UUID, len(payload.Events))

	return &Request{
		Method: http.MethodPost,
		URL:    m.config.Endpoint,
		Headers: []Header{
			{Name: "content-type", Value: "application/json"},
			{Name: "user-agent", Value: event.Client.UserAgent},
			{Name: "x-forwarded-for", Value: event.Client.IP},
		},
		Data: payload,
	}, nil
}

func (m *PageViewMapper) pageView(event *Event, who identity, sessionID SessionID) (AnalyticsEvent, error) {
	view := m.newEvent(EventTypePageView, who)
	view.UserAgent = stringPtr(event.Client.UserAgent)
	view.Language = stringPtr(event.Client.Locale)
	view.IP = stringPtr(event.Client.IP)
	view.InsertID = stringPtr(event.UUID)
	view.OSName = stringPtr(event.Client.OSName)
	view.OSVersion = stringPtr(event.Client.OSVersion)
	view.DeviceModel = stringPtr(event.Client.UserAgentModel)

	if sessionID.Positive() {
		view.SessionID = &sessionID
	}

	view.City = optionalString(event.Client.City)
	view.Region = optionalString(event.Client.Region)
	view.Country = optionalString(event.Client.CountryCode)

	var referrer, host string
	if event.Page != nil && event.Page.Referrer != "" {
		referrer = event.Page.Referrer
		parsed, err := referrerHost(referrer)
		if err != nil {
			m.logger.Warn("Dropping page event %s: %v", event.UUID, err)
			return AnalyticsEvent{}, err
		}
		host = parsed
		view.EventProperties = referrerProperties(referrer, host)
	}
	view.UserProperties = userProperties(event, referrer, host)
	return view, nil
}

func (m *PageViewMapper) newEvent(eventType string, who identity) AnalyticsEvent {
	event := AnalyticsEvent{
		EventType:       eventType,
		Library:         Library,
		Platform:        Platform,
		Time:            m.now().UnixMilli(),
		EventProperties: []Property{},
	}
	who.apply(&event)
	return event
}
