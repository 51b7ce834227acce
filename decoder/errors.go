package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is wrapped by every *PayloadError.
	ErrMissingField = errors.New("schedule payload is missing a required field")
	// ErrOutOfRange is wrapped by a *PayloadError whose count is unusable.
	ErrOutOfRange = errors.New("schedule payload count is out of range")
	ErrNilPayload = errors.New("schedule payload is nil")
)

// PayloadError names the top-level key that made decoding impossible.
type PayloadError struct {
	Key string
	// OutOfRange is set when the key is present but Value exceeds the
	// bounds the decoder iterates over.
	OutOfRange bool
	Value      int
}

func (e *PayloadError) Error() string {
	if e.OutOfRange {
		return fmt.Sprintf("schedule payload: key %q value %d is out of range", e.Key, e.Value)
	}
	return fmt.Sprintf("schedule payload: key %q is missing or not an array", e.Key)
}

func (e *PayloadError) Unwrap() error {
	if e.OutOfRange {
		return ErrOutOfRange
	}
	return ErrMissingField
}
