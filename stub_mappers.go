package amplitude

// IdentityMapper handles identify events. Nothing is forwarded yet.
type IdentityMapper struct{}

// Map always returns the empty request.
func (IdentityMapper) Map(payload any, credentials map[string]string) *Request {
	return &Request{}
}

// TrackMapper handles track events. Nothing is forwarded yet.
type TrackMapper struct{}

// Map always returns the empty request.
func (TrackMapper) Map(payload any, credentials map[string]string) *Request {
	return &Request{}
}
