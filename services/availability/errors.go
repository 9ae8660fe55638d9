package availability

import "errors"

var (
	// ErrPastDate means the requested day or month has fully elapsed.
	// It is a terminal outcome, not a fetch failure.
	ErrPastDate = errors.New("requested date is entirely in the past")

	// ErrBackendUnavailable means the scheduling backend could not be
	// reached. The caller may retry the whole request once.
	ErrBackendUnavailable = errors.New("scheduling backend unavailable")

	// ErrConfigurationMissing means the tenant identity or timezone is not
	// resolvable. Surfaced upstream as a generic "system not ready" message.
	ErrConfigurationMissing = errors.New("tenant configuration missing")
)
