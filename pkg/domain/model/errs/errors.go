package errs

import (
	"errors"
)

// ErrMessengerUnavailable is returned when no push delivery backend is configured.
var ErrMessengerUnavailable = errors.New("messenger is not available")
