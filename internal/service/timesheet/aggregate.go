package timesheet

import (
	"fmt"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
)

// summarizeDay fills the day's totals from its sessions. The raw total is
// ungated; validated counts only sessions whose endpoints both passed
// review; pending is the remainder, so raw == validated + pending always.
func summarizeDay(rec *timesheet.DayRecord) {
	rec.Total, rec.Validated, rec.Pending = 0, 0, 0
	for _, s := range rec.Sessions {
		rec.Total += s.Duration
		if s.Validated {
			rec.Validated += s.Duration
		} else {
			rec.Pending += s.Duration
		}
	}
}

// summarizeRange sums day totals into the range summary.
func summarizeRange(sum *timesheet.RangeSummary) {
	sum.Total, sum.Validated, sum.Pending = 0, 0, 0
	for _, day := range sum.Days {
		sum.Total += day.Total
		sum.Validated += day.Validated
		sum.Pending += day.Pending
	}
}

// FormatHours renders a duration as "3h 25m", rounded to the nearest whole
// minute. Rounding, not truncating, keeps sub-minute remainders from
// shaving a minute off day after day.
func FormatHours(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := (d.Milliseconds() + 30_000) / 60_000
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
