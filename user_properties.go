package amplitude

// campaignFields lists the UTM parameters in the order they are recorded.
func campaignFields(c Campaign) [][2]string {
	return [][2]string{
		{"utm_campaign", c.Name},
		{"utm_source", c.Source},
		{"utm_medium", c.Medium},
		{"utm_term", c.Term},
		{"utm_content", c.Content},
	}
}

// userProperties builds the user property operations of a page view:
// $set records the latest attribution, $setOnce the first one seen.
// It returns nil when there is nothing to record.
func userProperties(event *Event, referrer, host string) *UserProperties {
	props := &UserProperties{
		AnonymousID: event.Identify.AnonymousID,
		Set:         map[string]string{},
		SetOnce:     map[string]string{},
	}

	if referrer != "" {
		props.Set["referrer"] = referrer
		props.SetOnce["initial_referrer"] = referrer
		if host != "" {
			props.Set["referring_domain"] = host
			props.SetOnce["initial_referring_domain"] = host
		}
	}

	for _, field := range campaignFields(event.Campaign) {
		if field[1] == "" {
			continue
		}
		props.Set[field[0]] = field[1]
		props.SetOnce["initial_"+field[0]] = field[1]
	}

	if props.AnonymousID == "" && len(props.Set) == 0 {
		return nil
	}
	return props
}
