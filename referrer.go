package amplitude

import (
	"fmt"
	"net/url"
	"strings"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// referrerHost returns the lowercased host of an absolute referrer URL.
// The port is kept unless it is the default one of the scheme.
func referrerHost(referrer string) (string, error) {
	u, err := url.Parse(referrer)
	if err != nil {
		return "", fmt.Errorf("invalid referrer: %w", err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("invalid referrer: %q is not an absolute URL", referrer)
	}

	host := strings.ToLower(u.Host)
	if port := u.Port(); port != "" && defaultPorts[strings.ToLower(u.Scheme)] == port {
		host = strings.TrimSuffix(host, ":"+port)
	}
	return host, nil
}

// referrerProperties returns the referrer attribution pairs of a page view.
func referrerProperties(referrer, host string) []Property {
	return []Property{
		{Key: "referrer", Value: referrer},
		{Key: "initial_referrer", Value: referrer},
		{Key: "referring_domain", Value: host},
		{Key: "initial_referring_domain", Value: host},
	}
}
