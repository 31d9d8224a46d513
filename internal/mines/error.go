package mines

import "errors"

var ErrInvalidLevel = errors.New("invalid level")

// AssertionError reports a violated precondition. It is raised with panic
// because it indicates a programming error, not bad runtime data.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
