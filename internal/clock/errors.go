package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidTimezone matches every *InvalidTimezoneError via errors.Is.
var ErrInvalidTimezone = errors.New("invalid timezone")

// InvalidTimezoneError indicates a zone name the system zone database cannot resolve
type InvalidTimezoneError struct {
	Name string
	Err  error
}

func (e *InvalidTimezoneError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid timezone %q", e.Name)
	}

	return fmt.Sprintf("invalid timezone %q: %v", e.Name, e.Err)
}

func (e *InvalidTimezoneError) Unwrap() error {
	return e.Err
}

func (e *InvalidTimezoneError) Is(target error) bool {
	return target == ErrInvalidTimezone
}
