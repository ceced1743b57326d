package amplitude

// identity is the user/device pair stamped on every emitted event.
type identity struct {
	userID   string
	deviceID string
}

func resolveIdentity(id Identify) identity {
	deviceID := id.AnonymousID
	if deviceID == "" {
		deviceID = id.EdgeeID
	}
	return identity{userID: id.UserID, deviceID: deviceID}
}

func (i identity) apply(event *AnalyticsEvent) {
	event.UserID = optionalString(i.userID)
	event.DeviceID = i.deviceID
}

// optionalString returns nil for the empty string.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringPtr(s string) *string {
	return &s
}
