package trail

import "fmt"

// InitializationError reports that the environment could not be set up.
// It is fatal: the run loop never starts.
type InitializationError struct {
	Component string
	Err       error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Component, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// NewInitializationError wraps err for component.
func NewInitializationError(component string, err error) error {
	return &InitializationError{Component: component, Err: err}
}
