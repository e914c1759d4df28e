package timesheet

import (
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
)

// Session is one reconstructed work period: an in-tap matched to an out-tap
// (real or synthesized) inside one shift slot.
type Session struct {
	Shift schedule.ShiftKind
	In    punch.Event
	Out   *punch.Event // nil while the session is still open today

	// Duration is the worked time clamped to the official window, or taken
	// from a coordinator's finalized override.
	Duration time.Duration

	// Validated is true when both endpoints carry an approved status, so the
	// duration counts toward validated hours.
	Validated bool

	// AutoClosed marks sessions closed by a synthesized out on a past day.
	AutoClosed bool

	IsLate      bool
	LateMinutes int
}

// Complete reports whether the session has both endpoints.
func (s Session) Complete() bool {
	return s.Out != nil
}

// DayRecord is the reconciled attendance of one student on one date.
type DayRecord struct {
	Date     time.Time // midnight in the portal's civil timezone
	Schedule schedule.Day
	Sessions []Session // at most one per shift, AM then PM then OT

	Total     time.Duration
	Validated time.Duration
	Pending   time.Duration
}

// RangeSummary aggregates day records across a date range.
type RangeSummary struct {
	StudentID string
	From      time.Time
	To        time.Time
	Days      []DayRecord

	Total     time.Duration
	Validated time.Duration
	Pending   time.Duration
}
