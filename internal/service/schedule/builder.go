package schedule

import (
	"log/slog"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/timeparse"
)

// Builder turns time-of-day shift configuration into absolute official
// windows for a calendar date, in the portal's civil timezone.
type Builder struct {
	loc    *time.Location
	logger *slog.Logger
}

func NewBuilder(loc *time.Location, logger *slog.Logger) *Builder {
	return &Builder{loc: loc, logger: logger}
}

// Location returns the portal's civil timezone.
func (b *Builder) Location() *time.Location {
	return b.loc
}

// Resolve picks the effective configuration for a student: the per-student
// override beats the global default, which beats the built-in fallback.
// Per-date overtime grants are applied later, in BuildDay.
func (b *Builder) Resolve(global, override *schedule.Config) schedule.Config {
	if override != nil {
		return *override
	}
	if global != nil {
		return *global
	}
	return schedule.DefaultConfig()
}

// BuildDay anchors cfg to date and returns the resolved windows.
//
// Each field parses with PM-context matching its half of the day, then gets
// the crossing correction: an out that lands before its in moves forward 12
// hours, twice if needed. Overtime resolves grant > static config > none
// (a zero-width window at PM out).
func (b *Builder) BuildDay(date time.Time, cfg schedule.Config, grant *schedule.OvertimeGrant) schedule.Day {
	day := schedule.Day{Date: b.Midnight(date)}

	day.AM = b.buildWindow(date, cfg.AMIn, cfg.AMOut, false)
	day.PM = b.buildWindow(date, cfg.PMIn, cfg.PMOut, true)

	switch {
	case grant != nil:
		day.OT = schedule.Window{Start: grant.Start, End: grant.End}
		if grant.End.Before(grant.Start) {
			b.logger.Warn("inverted overtime grant window, shift will count zero hours",
				"student_id", grant.StudentID, "date", day.Date.Format("2006-01-02"))
		}
	case cfg.OTIn != nil && cfg.OTOut != nil:
		ot := b.buildWindow(date, *cfg.OTIn, *cfg.OTOut, true)
		// Static overtime never starts before the PM shift ends.
		if ot.Start.Before(day.PM.End) {
			ot.Start = day.PM.End
		}
		if ot.End.Before(ot.Start) {
			ot.End = ot.Start
		}
		day.OT = ot
	default:
		day.OT = schedule.Window{Start: day.PM.End, End: day.PM.End}
	}

	return day
}

// Midnight returns the civil-date midnight of t in the portal timezone.
func (b *Builder) Midnight(t time.Time) time.Time {
	y, m, d := t.In(b.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, b.loc)
}

func (b *Builder) buildWindow(date time.Time, in, out string, pmContext bool) schedule.Window {
	start := timeparse.Parse(in, pmContext).At(date, b.loc)
	end := timeparse.Parse(out, pmContext).At(date, b.loc)

	// Crossing correction: "8:00" to "5:00" style configs put the out twelve
	// hours behind the in. A second pass covers wraparound past midnight.
	for i := 0; i < 2 && end.Before(start); i++ {
		end = end.Add(12 * time.Hour)
	}

	return schedule.Window{Start: start, End: end}
}
