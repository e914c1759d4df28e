package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidRange = errors.New("from date must not be after to date")
	ErrUnauthorized = errors.New("unauthorized to view this timesheet")
)
