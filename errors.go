package amplitude

import (
	"errors"
	"fmt"
)

// ErrMissingCredential matches every *MissingCredentialError through errors.Is.
var ErrMissingCredential = errors.New("missing credential")

// MissingCredentialError reports a required credential that was not supplied.
type MissingCredentialError struct {
	Key string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential %q", e.Key)
}

func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}
