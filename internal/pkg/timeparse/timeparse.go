package timeparse

import (
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock hour and minute with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse interprets a free-form time-of-day string such as "8:00", "08:00:00",
// "1:00 PM" or "13:00". pmContext tells the parser the string came from an
// afternoon or overtime field, so a bare small hour like "1:00" means 13:00.
//
// Resolution order:
//  1. An explicit AM/PM suffix always wins.
//  2. Three colon components, a leading zero, or an hour above 12 mean the
//     string is already 24-hour time.
//  3. Otherwise, with pmContext set, hours 1 through 6 shift to the afternoon.
//
// Parse never fails: anything unreadable comes back as 00:00.
func Parse(s string, pmContext bool) TimeOfDay {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return TimeOfDay{}
	}

	upper := strings.ToUpper(raw)
	hasAM := strings.HasSuffix(upper, "AM")
	hasPM := strings.HasSuffix(upper, "PM")
	if hasAM || hasPM {
		raw = strings.TrimSpace(raw[:len(raw)-2])
	}

	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return TimeOfDay{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return TimeOfDay{}
		}
	}

	// Seconds, when present, only matter for format detection.
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return TimeOfDay{}
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}
	}

	switch {
	case hasAM:
		if hour == 12 {
			hour = 0
		}
	case hasPM:
		if hour < 12 {
			hour += 12
		}
	case len(parts) == 3 || hasLeadingZero(parts[0]) || hour > 12:
		// Literal 24-hour time, leave as parsed.
	case pmContext && hour >= 1 && hour <= 6:
		hour += 12
	}

	return TimeOfDay{Hour: hour, Minute: minute}
}

// At anchors the time of day to the civil date of ref in loc, returning an
// absolute instant.
func (t TimeOfDay) At(ref time.Time, loc *time.Location) time.Time {
	y, m, d := ref.In(loc).Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, loc)
}

func hasLeadingZero(field string) bool {
	return len(field) > 1 && field[0] == '0'
}
