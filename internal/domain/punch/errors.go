package punch

import "errors"

// Punch domain errors
var (
	ErrPunchNotFound = errors.New("punch event not found")
)
