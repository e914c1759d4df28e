package timesheet

import (
	"sort"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
)

// dedupeEvents drops duplicate punches. The row ID is the dedupe key when
// present; otherwise (timestamp, kind) catches double-submitted taps. The
// first occurrence wins. The input slice is never modified.
func dedupeEvents(events []punch.Event) []punch.Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]punch.Event, 0, len(events))

	for _, e := range events {
		key := e.ID
		if key == "" {
			key = e.Timestamp.UTC().Format(time.RFC3339Nano) + "|" + string(e.Kind)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	return out
}

// filterComputable keeps only punches the engine should reason about:
// non-attendance markers (overtime authorizations) and rejected punches are
// excluded. They stay visible in raw listings owned by the API layer.
func filterComputable(events []punch.Event) []punch.Event {
	out := make([]punch.Event, 0, len(events))
	for _, e := range events {
		if e.Tag != "" {
			continue
		}
		if e.Approval == punch.StatusRejected {
			continue
		}
		out = append(out, e)
	}
	return out
}

// groupByDay buckets events by the civil calendar date of their timestamp in
// loc, keyed by that date's midnight. Each bucket comes back chronologically
// sorted.
func groupByDay(events []punch.Event, loc *time.Location) map[time.Time][]punch.Event {
	byDay := make(map[time.Time][]punch.Event)
	for _, e := range events {
		y, m, d := e.Timestamp.In(loc).Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, loc)
		byDay[key] = append(byDay[key], e)
	}

	for _, day := range byDay {
		sort.Slice(day, func(i, j int) bool {
			return day[i].Timestamp.Before(day[j].Timestamp)
		})
	}

	return byDay
}
