package timesheet

import (
	"log/slog"
	"testing"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func TestClampedOverlap(t *testing.T) {
	hm := func(hh, mm int) time.Time { return at(2026, 1, 19, hh, mm) }

	cases := []struct {
		name                 string
		in, out              time.Time
		offIn, offOut        time.Time
		want                 time.Duration
	}{
		{"fully inside", hm(9, 30), hm(11, 30), hm(9, 0), hm(12, 0), 2 * time.Hour},
		{"early in clamped", hm(8, 39), hm(12, 42), hm(9, 0), hm(12, 0), 3 * time.Hour},
		{"late in counted", hm(9, 2), hm(12, 0), hm(9, 0), hm(12, 0), 2*time.Hour + 58*time.Minute},
		{"disjoint before", hm(6, 0), hm(8, 0), hm(9, 0), hm(12, 0), 0},
		{"disjoint after", hm(13, 0), hm(14, 0), hm(9, 0), hm(12, 0), 0},
		{"zero width window", hm(9, 0), hm(12, 0), hm(17, 0), hm(17, 0), 0},
		{"inverted window", hm(9, 0), hm(12, 0), hm(12, 0), hm(9, 0), 0},
		{"touching endpoints", hm(12, 0), hm(13, 0), hm(9, 0), hm(12, 0), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, clampedOverlap(c.in, c.out, c.offIn, c.offOut))
		})
	}

	// Output never exceeds either interval's own length.
	got := clampedOverlap(hm(8, 0), hm(18, 0), hm(9, 0), hm(12, 0))
	assert.Equal(t, 3*time.Hour, got)
	assert.LessOrEqual(t, got, hm(18, 0).Sub(hm(8, 0)))
}

func session(shift schedule.ShiftKind, inTs, outTs time.Time) timesheet.Session {
	i := in("i", inTs)
	o := out("o", outTs)
	return timesheet.Session{Shift: shift, In: i, Out: &o}
}

func TestResolveDuration_LiveSchedule(t *testing.T) {
	window := schedule.Window{Start: at(2026, 1, 20, 9, 0), End: at(2026, 1, 20, 12, 0)}
	s := session(schedule.ShiftAM, at(2026, 1, 20, 9, 2), at(2026, 1, 20, 12, 0))

	resolveDuration(&s, window, at(2026, 1, 20, 0, 0), testLoc, slog.Default())
	assert.Equal(t, 2*time.Hour+58*time.Minute, s.Duration)
	assert.Equal(t, int64(10_680_000), s.Duration.Milliseconds())
}

func TestResolveDuration_FinalizedOverrideWins(t *testing.T) {
	window := schedule.Window{Start: at(2026, 1, 20, 9, 0), End: at(2026, 1, 20, 12, 0)}
	s := session(schedule.ShiftAM, at(2026, 1, 20, 9, 0), at(2026, 1, 20, 12, 0))

	hours := 1.5
	snapIn, snapOut := "10:00", "11:00"
	s.Out.ValidatedHours = &hours
	s.Out.OfficialInSnapshot = &snapIn
	s.Out.OfficialOutSnapshot = &snapOut

	resolveDuration(&s, window, at(2026, 1, 20, 0, 0), testLoc, slog.Default())
	assert.Equal(t, 90*time.Minute, s.Duration)
}

func TestResolveDuration_SnapshotBeatsLiveSchedule(t *testing.T) {
	// The live schedule says 08:00 to 11:00, but the record was finalized
	// when the shift ran 09:00 to 12:00. Frozen times keep the old hours.
	window := schedule.Window{Start: at(2026, 1, 20, 8, 0), End: at(2026, 1, 20, 11, 0)}
	s := session(schedule.ShiftAM, at(2026, 1, 20, 9, 0), at(2026, 1, 20, 12, 0))

	snapIn, snapOut := "09:00", "12:00"
	s.Out.OfficialInSnapshot = &snapIn
	s.Out.OfficialOutSnapshot = &snapOut

	resolveDuration(&s, window, at(2026, 1, 20, 0, 0), testLoc, slog.Default())
	assert.Equal(t, 3*time.Hour, s.Duration)
}

func TestResolveDuration_SnapshotRollsPastMidnight(t *testing.T) {
	window := schedule.Window{Start: at(2026, 1, 20, 17, 0), End: at(2026, 1, 20, 22, 0)}
	s := session(schedule.ShiftOT, at(2026, 1, 20, 21, 0), at(2026, 1, 21, 1, 0))

	// Frozen out before frozen in means the window crossed midnight.
	snapIn, snapOut := "21:00", "01:00"
	s.Out.OfficialInSnapshot = &snapIn
	s.Out.OfficialOutSnapshot = &snapOut

	resolveDuration(&s, window, at(2026, 1, 20, 0, 0), testLoc, slog.Default())
	assert.Equal(t, 4*time.Hour, s.Duration)
}

func TestResolveDuration_OpenSessionIsZero(t *testing.T) {
	window := schedule.Window{Start: at(2026, 1, 20, 9, 0), End: at(2026, 1, 20, 12, 0)}
	s := timesheet.Session{Shift: schedule.ShiftAM, In: in("i", at(2026, 1, 20, 9, 0))}

	resolveDuration(&s, window, at(2026, 1, 20, 0, 0), testLoc, slog.Default())
	assert.Equal(t, time.Duration(0), s.Duration)
}

func TestMarkValidated(t *testing.T) {
	approved := func(e punch.Event) punch.Event {
		e.Approval = punch.StatusApproved
		return e
	}

	s := session(schedule.ShiftAM, at(2026, 1, 19, 9, 0), at(2026, 1, 19, 12, 0))
	markValidated(&s)
	assert.False(t, s.Validated, "unreviewed endpoints stay pending")

	s.In = approved(s.In)
	markValidated(&s)
	assert.False(t, s.Validated, "one approved endpoint is not enough")

	o := approved(*s.Out)
	s.Out = &o
	markValidated(&s)
	assert.True(t, s.Validated)
}

func TestAnnotateLateness(t *testing.T) {
	window := schedule.Window{Start: at(2026, 1, 19, 9, 0), End: at(2026, 1, 19, 12, 0)}
	date := at(2026, 1, 19, 0, 0)
	officialIn := window.Start

	onTime := timesheet.Session{Shift: schedule.ShiftAM, In: in("i", officialIn.Add(60*time.Second))}
	annotateLateness(&onTime, window, date, testLoc)
	assert.False(t, onTime.IsLate, "exactly one minute late is still on time")

	late := timesheet.Session{Shift: schedule.ShiftAM, In: in("i", officialIn.Add(60*time.Second+time.Millisecond))}
	annotateLateness(&late, window, date, testLoc)
	assert.True(t, late.IsLate)
	assert.Equal(t, 1, late.LateMinutes)

	later := timesheet.Session{Shift: schedule.ShiftAM, In: in("i", officialIn.Add(9*time.Minute+59*time.Second))}
	annotateLateness(&later, window, date, testLoc)
	assert.True(t, later.IsLate)
	assert.Equal(t, 9, later.LateMinutes, "late minutes floor, not round")
}

func TestAnnotateLateness_PrefersSnapshotOfficialIn(t *testing.T) {
	// Live schedule now says 08:00, but the finalized record froze 09:00.
	window := schedule.Window{Start: at(2026, 1, 19, 8, 0), End: at(2026, 1, 19, 12, 0)}
	date := at(2026, 1, 19, 0, 0)

	s := session(schedule.ShiftAM, at(2026, 1, 19, 9, 0), at(2026, 1, 19, 12, 0))
	snapIn := "09:00"
	s.Out.OfficialInSnapshot = &snapIn

	annotateLateness(&s, window, date, testLoc)
	assert.False(t, s.IsLate)
}

func TestResolveDuration_SingleDigitAfternoonSnapshot(t *testing.T) {
	// A hand-entered afternoon snapshot without the leading zero must still
	// resolve to the afternoon, not one in the morning.
	window := schedule.Window{Start: at(2026, 1, 20, 13, 0), End: at(2026, 1, 20, 17, 0)}
	s := session(schedule.ShiftPM, at(2026, 1, 20, 13, 0), at(2026, 1, 20, 17, 0))

	snapIn, snapOut := "1:00", "5:00"
	s.Out.OfficialInSnapshot = &snapIn
	s.Out.OfficialOutSnapshot = &snapOut

	resolveDuration(&s, window, at(2026, 1, 20, 0, 0), testLoc, slog.Default())
	assert.Equal(t, 4*time.Hour, s.Duration)
}

func TestAnnotateLateness_SingleDigitAfternoonSnapshot(t *testing.T) {
	window := schedule.Window{Start: at(2026, 1, 20, 13, 0), End: at(2026, 1, 20, 17, 0)}
	date := at(2026, 1, 20, 0, 0)

	s := session(schedule.ShiftPM, at(2026, 1, 20, 13, 5), at(2026, 1, 20, 17, 0))
	snapIn := "1:00"
	s.Out.OfficialInSnapshot = &snapIn

	annotateLateness(&s, window, date, testLoc)
	assert.True(t, s.IsLate)
	assert.Equal(t, 5, s.LateMinutes, "snapshot reads as 13:00, not 01:00")
}
