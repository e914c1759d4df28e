package timesheet

import (
	"testing"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, testLoc)
}

func in(id string, ts time.Time) punch.Event {
	return punch.Event{ID: id, StudentID: "s1", Kind: punch.KindIn, Timestamp: ts}
}

func out(id string, ts time.Time) punch.Event {
	return punch.Event{ID: id, StudentID: "s1", Kind: punch.KindOut, Timestamp: ts}
}

func testDay(y int, m time.Month, d int) schedule.Day {
	pmEnd := at(y, m, d, 17, 0)
	return schedule.Day{
		Date: at(y, m, d, 0, 0),
		AM:   schedule.Window{Start: at(y, m, d, 9, 0), End: at(y, m, d, 12, 0)},
		PM:   schedule.Window{Start: at(y, m, d, 13, 0), End: pmEnd},
		OT:   schedule.Window{Start: pmEnd, End: pmEnd},
	}
}

func TestPairDay_TwoCompleteSessions(t *testing.T) {
	day := testDay(2026, 1, 19)
	events := []punch.Event{
		in("1", at(2026, 1, 19, 8, 39)),
		out("2", at(2026, 1, 19, 12, 42)),
		in("3", at(2026, 1, 19, 12, 45)),
		out("4", at(2026, 1, 19, 17, 3)),
	}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 2)

	assert.Equal(t, schedule.ShiftAM, sessions[0].Shift)
	assert.Equal(t, "1", sessions[0].In.ID)
	require.NotNil(t, sessions[0].Out)
	assert.Equal(t, "2", sessions[0].Out.ID)

	assert.Equal(t, schedule.ShiftPM, sessions[1].Shift)
	assert.Equal(t, "3", sessions[1].In.ID)
	require.NotNil(t, sessions[1].Out)
	assert.Equal(t, "4", sessions[1].Out.ID)
}

func TestPairDay_LastOutTapWins(t *testing.T) {
	day := testDay(2026, 1, 19)
	events := []punch.Event{
		in("1", at(2026, 1, 19, 9, 0)),
		out("2", at(2026, 1, 19, 11, 50)),
		out("3", at(2026, 1, 19, 11, 52)),
	}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Out)
	assert.Equal(t, "3", sessions[0].Out.ID)
}

func TestPairDay_OutBoundedByNextFilledSlot(t *testing.T) {
	day := testDay(2026, 1, 19)
	// The 17:03 out belongs to the PM session, not the AM one, because the
	// PM in at 12:45 bounds the AM candidate range.
	events := []punch.Event{
		in("1", at(2026, 1, 19, 9, 0)),
		in("2", at(2026, 1, 19, 12, 45)),
		out("3", at(2026, 1, 19, 17, 3)),
	}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 2)
	assert.Equal(t, schedule.ShiftAM, sessions[0].Shift)
	assert.True(t, sessions[0].AutoClosed) // past day, no out in range
	assert.Equal(t, schedule.ShiftPM, sessions[1].Shift)
	require.NotNil(t, sessions[1].Out)
	assert.Equal(t, "3", sessions[1].Out.ID)
}

func TestPairDay_VirtualCloseOutOnPastDay(t *testing.T) {
	day := testDay(2026, 1, 20)
	events := []punch.Event{in("1", at(2026, 1, 20, 9, 5))}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 1)
	s := sessions[0]
	assert.True(t, s.AutoClosed)
	require.NotNil(t, s.Out)
	assert.Equal(t, at(2026, 1, 20, 12, 0), s.Out.Timestamp)
	assert.Equal(t, punch.TagAutoClosed, s.Out.Tag)
	assert.Nil(t, s.Out.PhotoRef)
	assert.False(t, s.Out.Approved())
}

func TestPairDay_VirtualCloseOutWhenOfficialEndPrecedesIn(t *testing.T) {
	day := testDay(2026, 1, 20)
	// In accepted at the very end of the AM window; synthetic out lands one
	// minute later, never before the in.
	events := []punch.Event{in("1", at(2026, 1, 20, 12, 0))}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Out)
	assert.False(t, sessions[0].Out.Timestamp.Before(sessions[0].In.Timestamp))
}

func TestPairDay_CurrentDayStaysOpen(t *testing.T) {
	day := testDay(2026, 1, 21)
	events := []punch.Event{in("1", at(2026, 1, 21, 9, 0))}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].Out)
	assert.False(t, sessions[0].AutoClosed)
	assert.False(t, sessions[0].Complete())
}

func TestPairDay_StrayInDropped(t *testing.T) {
	day := testDay(2026, 1, 19)
	events := []punch.Event{
		in("1", at(2026, 1, 19, 20, 30)), // outside every acceptance window
		in("2", at(2026, 1, 19, 8, 25)),  // five minutes too early for AM
	}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	assert.Empty(t, sessions)
}

func TestPairDay_EarlyInAllowanceBoundary(t *testing.T) {
	day := testDay(2026, 1, 19)
	events := []punch.Event{in("1", at(2026, 1, 19, 8, 30))}

	sessions := pairDay(day, events, at(2026, 1, 21, 0, 0))
	require.Len(t, sessions, 1)
	assert.Equal(t, schedule.ShiftAM, sessions[0].Shift)
}

func TestPairDay_Idempotent(t *testing.T) {
	day := testDay(2026, 1, 19)
	events := []punch.Event{
		in("1", at(2026, 1, 19, 8, 39)),
		out("2", at(2026, 1, 19, 12, 42)),
		in("3", at(2026, 1, 19, 12, 45)),
		out("4", at(2026, 1, 19, 17, 3)),
	}

	first := pairDay(day, events, at(2026, 1, 21, 0, 0))
	second := pairDay(day, events, at(2026, 1, 21, 0, 0))
	assert.Equal(t, first, second)

	// Inputs are never mutated.
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, punch.KindIn, events[0].Kind)
}
