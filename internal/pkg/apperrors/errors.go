package apperrors

import "errors"

// Common errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Course errors
var (
	// ErrCourseNotFound is returned when a course addressed by URL does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrCourseNotResolved is returned when a course referenced from a request
	// body does not exist. Distinct from ErrCourseNotFound because the API maps
	// it to a business-rule failure rather than a missing resource.
	ErrCourseNotResolved = errors.New("course reference does not resolve")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled   = errors.New("student already enrolled in course")
	ErrNotEnrolled       = errors.New("student not enrolled in course")
	ErrNoEligibleStudent = errors.New("no student with a graded enrollment")
)

// CustomError carries an underlying sentinel plus request-specific context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap so errors.Is matching reaches the sentinel.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping the given sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// WithDetails adds context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
