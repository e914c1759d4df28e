package timesheet

import (
	"context"
	"time"
)

// TimesheetService reconciles raw punches against resolved schedules and
// computes worked hours.
type TimesheetService interface {
	// GetTimesheet returns reconciled day records and totals for one student
	// over [from, to] (inclusive calendar dates in the portal timezone).
	GetTimesheet(ctx context.Context, studentID string, from, to time.Time) (TimesheetResponse, error)

	// ComputeRange is the I/O-free variant used internally and by jobs: the
	// caller has already fetched everything; nothing is persisted.
	ComputeRange(ctx context.Context, studentID string, from, to time.Time) (RangeSummary, error)
}
