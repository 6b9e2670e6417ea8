package core

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHandle         = errors.New("github handle is required")
	ErrFetchFailure          = errors.New("primary fetch failed")
	ErrSecondaryFetchFailure = errors.New("secondary fetch failed")
	ErrInvalidTimestamp      = errors.New("invalid timestamp")
)

// FetchError reports a failed upstream read. Primary marks the platform whose
// failure aborts the whole refresh.
type FetchError struct {
	Platform Platform
	Primary  bool
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch: %v", e.Platform, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	if e.Primary {
		return target == ErrFetchFailure
	}
	return target == ErrSecondaryFetchFailure
}
