package timesheet

import (
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
)

// earlyInAllowance is how long before the official shift start a time-in is
// still accepted into that shift's slot.
const earlyInAllowance = 30 * time.Minute

type slot struct {
	kind   schedule.ShiftKind
	window schedule.Window
	in     *punch.Event
	out    *punch.Event
}

// pairDay reconstructs the day's sessions from its sorted, filtered events.
// today is the midnight of the reference "current date"; it decides whether
// an unterminated session may be auto-closed.
//
// Slot priority is fixed AM, then PM, then OT: when a time-in falls inside two
// acceptance windows (possible with overlapping misconfigured shifts), the
// earlier slot in that order wins. Stray ins matching no open slot are
// dropped; stray outs are never promoted to ins.
func pairDay(day schedule.Day, events []punch.Event, today time.Time) []timesheet.Session {
	slots := []slot{
		{kind: schedule.ShiftAM, window: day.AM},
		{kind: schedule.ShiftPM, window: day.PM},
		{kind: schedule.ShiftOT, window: day.OT},
	}

	assignIns(slots, events)
	matchOuts(slots, events)

	past := day.Date.Before(today)
	sessions := make([]timesheet.Session, 0, len(slots))
	for _, s := range slots {
		if s.in == nil {
			continue
		}

		sess := timesheet.Session{Shift: s.kind, In: *s.in, Out: s.out}
		if s.out == nil && past {
			v := synthesizeOut(s)
			sess.Out = &v
			sess.AutoClosed = true
		}
		sessions = append(sessions, sess)
	}

	return sessions
}

func assignIns(slots []slot, events []punch.Event) {
	for i := range events {
		e := &events[i]
		if e.Kind != punch.KindIn {
			continue
		}
		for j := range slots {
			if slots[j].in != nil {
				continue
			}
			if accepts(slots[j].window, e.Timestamp) {
				slots[j].in = e
				break
			}
		}
	}
}

// matchOuts pairs each filled slot with the last out tapped after its in and
// before the next filled slot's in. Taking the last tap tolerates students
// double-tapping the out button; only the final tap is authoritative.
func matchOuts(slots []slot, events []punch.Event) {
	consumed := make(map[int]bool)

	for j := range slots {
		if slots[j].in == nil {
			continue
		}

		lower := slots[j].in.Timestamp
		upper := nextFilledIn(slots, j)

		best := -1
		for i := range events {
			e := &events[i]
			if e.Kind != punch.KindOut || consumed[i] {
				continue
			}
			if !e.Timestamp.After(lower) {
				continue
			}
			if upper != nil && !e.Timestamp.Before(*upper) {
				continue
			}
			if best < 0 || e.Timestamp.After(events[best].Timestamp) {
				best = i
			}
		}

		if best >= 0 {
			consumed[best] = true
			slots[j].out = &events[best]
		}
	}
}

func nextFilledIn(slots []slot, after int) *time.Time {
	for j := after + 1; j < len(slots); j++ {
		if slots[j].in != nil {
			ts := slots[j].in.Timestamp
			return &ts
		}
	}
	return nil
}

// synthesizeOut builds the virtual close-out for a past-day session the
// student never closed: stamped at the shift's official end, or one minute
// after the in when the official end precedes it. No photo, never approved.
func synthesizeOut(s slot) punch.Event {
	end := s.window.End
	if end.Before(s.in.Timestamp) {
		end = s.in.Timestamp.Add(time.Minute)
	}
	return punch.Event{
		StudentID: s.in.StudentID,
		Kind:      punch.KindOut,
		Timestamp: end,
		Tag:       punch.TagAutoClosed,
	}
}

func accepts(w schedule.Window, ts time.Time) bool {
	return !ts.Before(w.Start.Add(-earlyInAllowance)) && !ts.After(w.End)
}
