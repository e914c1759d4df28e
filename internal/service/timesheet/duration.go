package timesheet

import (
	"log/slog"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/timeparse"
)

// clampedOverlap computes worked time as the intersection of what the
// student actually punched and the official window.
// Disjoint intervals yield exactly zero, never a negative.
func clampedOverlap(in, out, officialIn, officialOut time.Time) time.Duration {
	start := in
	if officialIn.After(start) {
		start = officialIn
	}
	end := out
	if officialOut.Before(end) {
		end = officialOut
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// resolveDuration fills in sess.Duration for a completed session.
//
// Precedence:
//  1. a finalized validated-hours override on the out-event, verbatim;
//  2. official times frozen onto the out-event at finalization, so later
//     schedule edits never change a finalized record;
//  3. the live window for the session's shift and date.
func resolveDuration(sess *timesheet.Session, window schedule.Window, date time.Time, loc *time.Location, logger *slog.Logger) {
	if sess.Out == nil {
		sess.Duration = 0
		return
	}

	out := sess.Out

	if out.ValidatedHours != nil {
		sess.Duration = time.Duration(*out.ValidatedHours * float64(time.Hour))
		return
	}

	if out.OfficialInSnapshot != nil && out.OfficialOutSnapshot != nil {
		pmCtx := snapshotContext(sess.Shift)
		offIn := timeparse.Parse(*out.OfficialInSnapshot, pmCtx).At(date, loc)
		offOut := timeparse.Parse(*out.OfficialOutSnapshot, pmCtx).At(date, loc)
		// A frozen out behind the frozen in means the shift ran past
		// midnight; roll the out to the next civil day.
		if offOut.Before(offIn) {
			offOut = offOut.AddDate(0, 0, 1)
		}
		sess.Duration = clampedOverlap(sess.In.Timestamp, out.Timestamp, offIn, offOut)
		return
	}

	if window.End.Before(window.Start) {
		logger.Warn("official window inverted after correction, counting zero hours",
			"student_id", sess.In.StudentID,
			"shift", string(sess.Shift),
			"date", date.Format("2006-01-02"))
		sess.Duration = 0
		return
	}

	sess.Duration = clampedOverlap(sess.In.Timestamp, out.Timestamp, window.Start, window.End)
}

// snapshotContext picks the PM-context for parsing frozen official times:
// afternoon and overtime shifts read a bare "1:00" as 13:00, the morning
// shift reads it literally. Conforming "HH:mm" snapshots are unaffected.
func snapshotContext(shift schedule.ShiftKind) bool {
	return shift != schedule.ShiftAM
}

// markValidated sets the session's validated flag: hours count as validated
// only when both endpoints passed review. Synthetic close-outs never do.
func markValidated(sess *timesheet.Session) {
	sess.Validated = sess.Complete() && sess.In.Approved() && sess.Out.Approved()
}
