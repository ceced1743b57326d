package amplitude

// EventProcessor is the entry point used by the edge pipeline. Each call
// receives the destination credentials alongside the event.
type EventProcessor struct {
	opts     []MapperOption
	identify IdentityMapper
	track    TrackMapper
}

// NewEventProcessor creates a processor whose page mappers use opts.
func NewEventProcessor(opts ...MapperOption) *EventProcessor {
	return &EventProcessor{opts: opts}
}

// Page maps a page event. It fails with a *MissingCredentialError when
// credentials lack the API key.
func (p *EventProcessor) Page(event *Event, credentials map[string]string) (*Request, error) {
	config, err := NewConfig(credentials)
	if err != nil {
		return nil, err
	}
	mapper, err := NewPageViewMapper(config, p.opts...)
	if err != nil {
		return nil, err
	}
	return mapper.Map(event)
}

// Identify maps an identify event.
func (p *EventProcessor) Identify(payload any, credentials map[string]string) *Request {
	return p.identify.Map(payload, credentials)
}

// Track maps a track event.
func (p *EventProcessor) Track(payload any, credentials map[string]string) *Request {
	return p.track.Map(payload, credentials)
}
