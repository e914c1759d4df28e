package student

import "errors"

// Student domain errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInactiveStudent = errors.New("student is not active")
)
