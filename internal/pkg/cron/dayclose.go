package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/clock"
)

// TimesheetJobs recomputes recent timesheets in the background so that
// dangling sessions surface in the logs soon after the day closes, not
// only when someone opens the portal.
type TimesheetJobs struct {
	studentRepo      student.StudentRepository
	timesheetService timesheet.TimesheetService
	clock            clock.Clock
	loc              *time.Location
}

func NewTimesheetJobs(
	studentRepo student.StudentRepository,
	timesheetService timesheet.TimesheetService,
	clk clock.Clock,
	loc *time.Location,
) *TimesheetJobs {
	return &TimesheetJobs{
		studentRepo:      studentRepo,
		timesheetService: timesheetService,
		clock:            clk,
		loc:              loc,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_out_previous_day", 1*time.Hour, j.CloseOutPreviousDay)
}

// CloseOutPreviousDay recomputes yesterday for every active student and logs
// sessions the engine had to close on their behalf. Computation is pure, so
// the run only reads and reports.
func (j *TimesheetJobs) CloseOutPreviousDay(ctx context.Context) error {
	// Only run in the first hour after midnight, portal time.
	now := j.clock.Now().In(j.loc)
	if now.Hour() != 0 {
		return nil
	}

	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.loc).AddDate(0, 0, -1)

	slog.Info("Cron: Starting previous-day close-out sweep", "date", yesterday.Format("2006-01-02"))

	students, err := j.studentRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active students: %w", err)
	}

	autoClosed := 0
	for _, s := range students {
		summary, err := j.timesheetService.ComputeRange(ctx, s.ID, yesterday, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to recompute day", "student_id", s.ID, "error", err)
			continue
		}
		for _, day := range summary.Days {
			for _, sess := range day.Sessions {
				if sess.AutoClosed {
					autoClosed++
					slog.Warn("Session closed at official shift end",
						"student_id", s.ID,
						"date", day.Date.Format("2006-01-02"),
						"shift", sess.Shift,
						"time_in", sess.In.Timestamp,
					)
				}
			}
		}
	}

	slog.Info("Cron: Previous-day close-out sweep finished",
		"students", len(students),
		"auto_closed_sessions", autoClosed,
	)
	return nil
}
