package timesheet

import (
	"testing"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0h 0m"},
		{29999 * time.Millisecond, "0h 0m"}, // just under the rounding boundary
		{30000 * time.Millisecond, "0h 1m"}, // half a minute rounds up
		{time.Minute, "0h 1m"},
		{59*time.Minute + 29*time.Second, "0h 59m"},
		{59*time.Minute + 30*time.Second, "1h 0m"},
		{3 * time.Hour, "3h 0m"},
		{2*time.Hour + 58*time.Minute, "2h 58m"},
		{26*time.Hour + 5*time.Minute, "26h 5m"},
		{-time.Minute, "0h 0m"}, // defensive: durations are never negative upstream
	}

	for _, c := range cases {
		if got := FormatHours(c.d); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestSummarizeDay_TotalsSplit(t *testing.T) {
	rec := timesheet.DayRecord{
		Sessions: []timesheet.Session{
			{Shift: schedule.ShiftAM, Duration: 3 * time.Hour, Validated: true},
			{Shift: schedule.ShiftPM, Duration: 4 * time.Hour},
			{Shift: schedule.ShiftOT, Duration: 90 * time.Minute, Validated: true},
		},
	}

	summarizeDay(&rec)
	assert.Equal(t, 8*time.Hour+30*time.Minute, rec.Total)
	assert.Equal(t, 4*time.Hour+30*time.Minute, rec.Validated)
	assert.Equal(t, 4*time.Hour, rec.Pending)
	assert.Equal(t, rec.Total, rec.Validated+rec.Pending)
}

func TestSummarizeRange(t *testing.T) {
	sum := timesheet.RangeSummary{
		Days: []timesheet.DayRecord{
			{Total: 7 * time.Hour, Validated: 3 * time.Hour, Pending: 4 * time.Hour},
			{Total: 2 * time.Hour, Validated: 0, Pending: 2 * time.Hour},
			{},
		},
	}

	summarizeRange(&sum)
	assert.Equal(t, 9*time.Hour, sum.Total)
	assert.Equal(t, 3*time.Hour, sum.Validated)
	assert.Equal(t, 6*time.Hour, sum.Pending)
	assert.Equal(t, sum.Total, sum.Validated+sum.Pending)
}

func TestNormalize(t *testing.T) {
	e1 := in("a", at(2026, 1, 19, 9, 0))
	dupByID := e1
	dupByID.Timestamp = at(2026, 1, 19, 9, 1) // same ID, different time
	noID := out("", at(2026, 1, 19, 12, 0))
	noIDDup := out("", at(2026, 1, 19, 12, 0))
	rejected := in("r", at(2026, 1, 19, 13, 0))
	rejected.Approval = "rejected"
	marker := in("m", at(2026, 1, 19, 17, 0))
	marker.Tag = "ot_auth"
	nextDay := in("n", at(2026, 1, 20, 9, 0))

	events := []punch.Event{e1, dupByID, noID, noIDDup, rejected, marker, nextDay}
	clean := filterComputable(dedupeEvents(events))
	assert.Len(t, clean, 3)

	byDay := groupByDay(clean, testLoc)
	assert.Len(t, byDay, 2)
	assert.Len(t, byDay[at(2026, 1, 19, 0, 0)], 2)
	assert.Len(t, byDay[at(2026, 1, 20, 0, 0)], 1)

	// Buckets are chronologically sorted.
	day1 := byDay[at(2026, 1, 19, 0, 0)]
	assert.True(t, !day1[0].Timestamp.After(day1[1].Timestamp))
}
