package amplitude

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the destination settings of the Amplitude component.
type Config struct {
	APIKey   string
	Endpoint string

	// set by NewConfig once the credential set carried the API key
	validated bool
}

// NewConfig builds a Config from the credential set of a destination.
// The API key must be present, though its value may be empty; the endpoint
// falls back to DefaultEndpoint.
func NewConfig(credentials map[string]string) (Config, error) {
	apiKey, ok := credentials[CredentialAPIKey]
	if !ok {
		return Config{}, &MissingCredentialError{Key: CredentialAPIKey}
	}

	endpoint := credentials[CredentialEndpoint]
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return Config{
		APIKey:    apiKey,
		Endpoint:  endpoint,
		validated: true,
	}, nil
}

// LoadCredentials reads a YAML mapping of credential keys to values.
func LoadCredentials(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCredentials(data)
}

// ParseCredentials decodes a YAML mapping of credential keys to values.
func ParseCredentials(data []byte) (map[string]string, error) {
	credentials := make(map[string]string)
	if err := yaml.Unmarshal(data, &credentials); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}
	return credentials, nil
}
