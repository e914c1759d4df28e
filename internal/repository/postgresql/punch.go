package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.EventRepository {
	return &punchRepository{db: db}
}

// ListByStudentAndRange implements punch.EventRepository.
func (r *punchRepository) ListByStudentAndRange(ctx context.Context, studentID string, from, to time.Time) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, student_id, kind, punched_at, photo_ref, approval_status, tag,
		       validated_hours, official_in_snapshot, official_out_snapshot
		FROM punch_events
		WHERE student_id = $1
		  AND punched_at >= $2
		  AND punched_at < $3
		ORDER BY punched_at
	`

	rows, err := q.Query(ctx, query, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var e punch.Event
		var approval, tag *string
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.Kind, &e.Timestamp, &e.PhotoRef, &approval, &tag,
			&e.ValidatedHours, &e.OfficialInSnapshot, &e.OfficialOutSnapshot,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		if approval != nil {
			e.Approval = punch.ApprovalStatus(*approval)
		}
		if tag != nil {
			e.Tag = *tag
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
