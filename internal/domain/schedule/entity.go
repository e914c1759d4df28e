package schedule

import "time"

type ShiftKind string

const (
	ShiftAM ShiftKind = "AM"
	ShiftPM ShiftKind = "PM"
	ShiftOT ShiftKind = "OT"
)

// ShiftKinds lists the slots of one work day in priority order.
var ShiftKinds = []ShiftKind{ShiftAM, ShiftPM, ShiftOT}

// Window is the official start and end of one shift on one date. A window
// with Start == End means the shift is not worked that day.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) IsZero() bool {
	return !w.Start.Before(w.End)
}

func (w Window) Duration() time.Duration {
	if w.IsZero() {
		return 0
	}
	return w.End.Sub(w.Start)
}

// Day holds the resolved official windows for one calendar date.
type Day struct {
	Date time.Time // midnight in the portal's civil timezone
	AM   Window
	PM   Window
	OT   Window
}

// Window returns the official window for the given shift.
func (d Day) Window(kind ShiftKind) Window {
	switch kind {
	case ShiftAM:
		return d.AM
	case ShiftPM:
		return d.PM
	default:
		return d.OT
	}
}

// Config is the time-of-day configuration a day schedule is built from.
// Fields hold free-form strings as entered by coordinators ("8:00",
// "1:00 PM", "13:00"); parsing rules live in the timeparse package.
type Config struct {
	AMIn  string
	AMOut string
	PMIn  string
	PMOut string
	OTIn  *string
	OTOut *string
}

// DefaultConfig is the fallback schedule when neither a global nor a
// per-student configuration exists.
func DefaultConfig() Config {
	return Config{
		AMIn:  "08:00",
		AMOut: "12:00",
		PMIn:  "13:00",
		PMOut: "17:00",
	}
}

// OvertimeGrant authorizes overtime for one student on one date, with the
// window already fixed as absolute instants. It beats any static OT config
// for that date.
type OvertimeGrant struct {
	ID        string
	StudentID string
	Date      time.Time
	Start     time.Time
	End       time.Time
	GrantedBy string
	CreatedAt time.Time
}
