package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Academic catalog errors
var (
	ErrAcademicYearNotFound  = errors.New("academic year not found")
	ErrAcademicYearInUse     = errors.New("academic year has associated semesters or courses and cannot be deleted")
	ErrSemesterNotFound      = errors.New("semester not found")
	ErrCourseNotFound        = errors.New("course not found")
	ErrCourseAlreadyExists   = errors.New("course with this code already exists")
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomAlreadyExists     = errors.New("room with this name already exists")
	ErrGuidanceGroupNotFound = errors.New("guidance group not found")
	ErrGuidanceGroupInUse    = errors.New("guidance group has associated students or schedules and cannot be deleted")
)

// People errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrNationalNoExists   = errors.New("national number already exists")
	ErrStudentNotInGroup  = errors.New("student does not belong to the session group")
	ErrRoleNotFound       = errors.New("role not found")
)

// Schedule and attendance errors
var (
	ErrScheduleNotFound       = errors.New("session schedule not found")
	ErrScheduleSlotTaken      = errors.New("room or group already has a session in this slot")
	ErrSessionGroupNotFound   = errors.New("session group not found")
	ErrSessionAlreadyRecorded = errors.New("attendance for this schedule and date has already been recorded")
	ErrNotificationNotFound   = errors.New("notification not found")
)

// Token format errors
var (
	ErrInvalidFormat = errors.New("invalid token format")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
