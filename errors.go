package nbconvert

import "fmt"

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
// The result keeps the kind of the wrapped error, so a wrapped
// "not found" still satisfies IsNotFound.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	text := fmt.Sprintf("%v: %v", msg, err)

	switch {
	case IsNotFound(err):
		return notFound{text}
	case IsMalformedDocument(err):
		return malformedDocument{text}
	case IsValidationError(err):
		return validationError{text}
	}

	return fmt.Errorf("%v: %v", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return notFound{fmt.Sprintf("Not found: %v", fmt.Errorf(s, v...))}
}

func (n notFound) Error() string {
	return n.message
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	_, ok := err.(notFound)
	return ok
}

type malformedDocument struct {
	message string
}

// NewMalformedDocument creates an error for a document that exists
// but cannot be decoded.
//
// Callers that work through a list of documents are expected to
// check for this kind, report the bad document and carry on with
// the rest.
func NewMalformedDocument(s string, v ...interface{}) error {
	return malformedDocument{fmt.Sprintf("Malformed document: %v", fmt.Errorf(s, v...))}
}

func (m malformedDocument) Error() string {
	return m.message
}

// IsMalformedDocument checks if the given error is a "malformed document" error.
func IsMalformedDocument(err error) bool {
	_, ok := err.(malformedDocument)
	return ok
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(validationError)
	return ok
}
