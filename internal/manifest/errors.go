package manifest

import (
	"errors"
	"fmt"
)

// InvalidError indicates a manifest that could not be parsed or failed validation.
type InvalidError struct {
	File string
	Err  error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid manifest %s: %v", e.File, e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

// IsInvalid reports whether err indicates an invalid manifest.
func IsInvalid(err error) bool {
	var ie *InvalidError
	return errors.As(err, &ie)
}

// EntryError indicates a manifest entry that could not be resolved.
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
