package results

import "errors"

var (
	// ErrAlreadySubmitted is returned when a phone number already has a result
	// and no retake has been granted for it.
	ErrAlreadySubmitted = errors.New("already submitted")

	// ErrResultNotFound is returned when no result matches the given result id.
	ErrResultNotFound = errors.New("result not found")
)
