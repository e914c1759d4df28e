package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/database"
)

type scheduleConfigRepository struct {
	db *database.DB
}

func NewScheduleConfigRepository(db *database.DB) schedule.ConfigRepository {
	return &scheduleConfigRepository{db: db}
}

// GetGlobal implements schedule.ConfigRepository. A missing row is not an
// error: resolution falls through to the built-in default.
func (r *scheduleConfigRepository) GetGlobal(ctx context.Context) (*schedule.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT am_in, am_out, pm_in, pm_out, ot_in, ot_out
		FROM shift_configs
		WHERE student_id IS NULL
		LIMIT 1
	`

	var cfg schedule.Config
	err := q.QueryRow(ctx, query).Scan(
		&cfg.AMIn, &cfg.AMOut, &cfg.PMIn, &cfg.PMOut, &cfg.OTIn, &cfg.OTOut,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get global shift config: %w", err)
	}
	return &cfg, nil
}

// GetByStudent implements schedule.ConfigRepository.
func (r *scheduleConfigRepository) GetByStudent(ctx context.Context, studentID string) (*schedule.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT am_in, am_out, pm_in, pm_out, ot_in, ot_out
		FROM shift_configs
		WHERE student_id = $1
		LIMIT 1
	`

	var cfg schedule.Config
	err := q.QueryRow(ctx, query, studentID).Scan(
		&cfg.AMIn, &cfg.AMOut, &cfg.PMIn, &cfg.PMOut, &cfg.OTIn, &cfg.OTOut,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student shift config: %w", err)
	}
	return &cfg, nil
}

type grantRepository struct {
	db *database.DB
}

func NewGrantRepository(db *database.DB) schedule.GrantRepository {
	return &grantRepository{db: db}
}

// ListByStudentAndRange implements schedule.GrantRepository.
func (r *grantRepository) ListByStudentAndRange(ctx context.Context, studentID string, from, to time.Time) ([]schedule.OvertimeGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, student_id, date, start_at, end_at, granted_by, created_at
		FROM overtime_grants
		WHERE student_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime grants: %w", err)
	}
	defer rows.Close()

	var grants []schedule.OvertimeGrant
	for rows.Next() {
		var g schedule.OvertimeGrant
		if err := rows.Scan(&g.ID, &g.StudentID, &g.Date, &g.Start, &g.End, &g.GrantedBy, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan overtime grant: %w", err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}
