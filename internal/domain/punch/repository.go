package punch

import (
	"context"
	"time"
)

type EventRepository interface {
	// ListByStudentAndRange returns every punch recorded in [from, to),
	// ordered by timestamp ascending.
	ListByStudentAndRange(ctx context.Context, studentID string, from, to time.Time) ([]Event, error)
}
