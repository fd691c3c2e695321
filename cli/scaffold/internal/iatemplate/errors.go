package iatemplate

import (
	"fmt"
)

// InvalidConfigurationError means a template definition is malformed.
// It is raised at construction time and is not recoverable.
type InvalidConfigurationError struct {
	// Template is the name of the malformed template, may be empty.
	Template string
	// Reason describes what exactly is malformed.
	Reason string
}

// Error returns error message.
func (e *InvalidConfigurationError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("invalid template configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration of template %q: %s", e.Template, e.Reason)
}

// MissingFieldError means a required generation option is absent.
type MissingFieldError struct {
	// Field is the name of the missing option field.
	Field string
}

// Error returns error message.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// OutputAlreadyExistsError means the target file pre-exists. Generation
// never overwrites existing artifacts.
type OutputAlreadyExistsError struct {
	// Path is the pre-existing output path.
	Path string
}

// Error returns error message.
func (e *OutputAlreadyExistsError) Error() string {
	return fmt.Sprintf("output file %q already exists", e.Path)
}

// WriteError means writing the output file failed.
type WriteError struct {
	// Path is the target output path.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error returns error message.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %s", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Err
}
