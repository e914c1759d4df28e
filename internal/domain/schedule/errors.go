package schedule

import "errors"

// Schedule domain errors
var (
	ErrConfigNotFound = errors.New("shift configuration not found")
	ErrGrantNotFound  = errors.New("overtime grant not found")
)
