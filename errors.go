package moneybook

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports input rejected before any state mutation or
// network activity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func errValidation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RemoteError reports a failed call to the remote service. Status is
// the HTTP status code, or 0 for transport failures (network errors,
// unparseable responses).
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsAuthExpired reports whether err is a remote 401, meaning the
// session credential is no longer accepted and the caller should force
// a logout.
func IsAuthExpired(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusUnauthorized
}
