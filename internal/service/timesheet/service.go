package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/punch"
	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/clock"
	schedulesvc "github.com/ojtportal/ojt-backend-go/internal/service/schedule"
)

type TimesheetServiceImpl struct {
	studentRepo student.StudentRepository
	punchRepo   punch.EventRepository
	configRepo  schedule.ConfigRepository
	grantRepo   schedule.GrantRepository
	builder     *schedulesvc.Builder
	clock       clock.Clock
	logger      *slog.Logger
}

func NewTimesheetService(
	studentRepo student.StudentRepository,
	punchRepo punch.EventRepository,
	configRepo schedule.ConfigRepository,
	grantRepo schedule.GrantRepository,
	builder *schedulesvc.Builder,
	clk clock.Clock,
	logger *slog.Logger,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		studentRepo: studentRepo,
		punchRepo:   punchRepo,
		configRepo:  configRepo,
		grantRepo:   grantRepo,
		builder:     builder,
		clock:       clk,
		logger:      logger,
	}
}

// ComputeRange implements timesheet.TimesheetService. It fetches the raw
// inputs up front, then runs the pure reconciliation pipeline day by day:
// normalize, pair, duration, lateness, aggregate. Nothing is persisted
// and no input is mutated; records are recomputed on every read.
func (t *TimesheetServiceImpl) ComputeRange(ctx context.Context, studentID string, from, to time.Time) (timesheet.RangeSummary, error) {
	fromDay := t.builder.Midnight(from)
	toDay := t.builder.Midnight(to)
	if fromDay.After(toDay) {
		return timesheet.RangeSummary{}, timesheet.ErrInvalidRange
	}

	events, err := t.punchRepo.ListByStudentAndRange(ctx, studentID, fromDay, toDay.AddDate(0, 0, 1))
	if err != nil {
		return timesheet.RangeSummary{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	global, err := t.configRepo.GetGlobal(ctx)
	if err != nil {
		return timesheet.RangeSummary{}, fmt.Errorf("failed to get global shift config: %w", err)
	}
	override, err := t.configRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return timesheet.RangeSummary{}, fmt.Errorf("failed to get student shift config: %w", err)
	}
	cfg := t.builder.Resolve(global, override)

	grants, err := t.grantRepo.ListByStudentAndRange(ctx, studentID, fromDay, toDay.AddDate(0, 0, 1))
	if err != nil {
		return timesheet.RangeSummary{}, fmt.Errorf("failed to list overtime grants: %w", err)
	}
	grantByDay := make(map[time.Time]schedule.OvertimeGrant, len(grants))
	for _, g := range grants {
		grantByDay[t.builder.Midnight(g.Date)] = g
	}

	byDay := groupByDay(filterComputable(dedupeEvents(events)), t.builder.Location())
	today := t.builder.Midnight(t.clock.Now())

	sum := timesheet.RangeSummary{StudentID: studentID, From: fromDay, To: toDay}
	for d := fromDay; !d.After(toDay); d = d.AddDate(0, 0, 1) {
		var grant *schedule.OvertimeGrant
		if g, ok := grantByDay[d]; ok {
			grant = &g
		}

		day := t.builder.BuildDay(d, cfg, grant)
		sessions := pairDay(day, byDay[d], today)

		for i := range sessions {
			s := &sessions[i]
			window := day.Window(s.Shift)
			resolveDuration(s, window, d, t.builder.Location(), t.logger)
			markValidated(s)
			annotateLateness(s, window, d, t.builder.Location())
		}

		rec := timesheet.DayRecord{Date: d, Schedule: day, Sessions: sessions}
		summarizeDay(&rec)
		sum.Days = append(sum.Days, rec)
	}

	summarizeRange(&sum)
	return sum, nil
}

// GetTimesheet implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetTimesheet(ctx context.Context, studentID string, from, to time.Time) (timesheet.TimesheetResponse, error) {
	stu, err := t.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get student: %w", err)
	}

	sum, err := t.ComputeRange(ctx, studentID, from, to)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return mapSummaryToResponse(sum, stu), nil
}

func mapSummaryToResponse(sum timesheet.RangeSummary, stu student.Student) timesheet.TimesheetResponse {
	days := make([]timesheet.DayRecordResponse, 0, len(sum.Days))
	for _, rec := range sum.Days {
		days = append(days, mapDayToResponse(rec))
	}

	progress := 0.0
	if stu.RequiredHours > 0 {
		progress = sum.Validated.Hours() / stu.RequiredHours * 100
	}

	return timesheet.TimesheetResponse{
		StudentID:     sum.StudentID,
		From:          sum.From.Format("2006-01-02"),
		To:            sum.To.Format("2006-01-02"),
		Days:          days,
		TotalMs:       sum.Total.Milliseconds(),
		Total:         FormatHours(sum.Total),
		ValidatedMs:   sum.Validated.Milliseconds(),
		Validated:     FormatHours(sum.Validated),
		PendingMs:     sum.Pending.Milliseconds(),
		Pending:       FormatHours(sum.Pending),
		RequiredHours: stu.RequiredHours,
		ProgressPct:   progress,
	}
}

func mapDayToResponse(rec timesheet.DayRecord) timesheet.DayRecordResponse {
	sessions := make([]timesheet.SessionResponse, 0, len(rec.Sessions))
	for _, s := range rec.Sessions {
		resp := timesheet.SessionResponse{
			Shift:       string(s.Shift),
			TimeIn:      s.In.Timestamp.UnixMilli(),
			PhotoInRef:  s.In.PhotoRef,
			DurationMs:  s.Duration.Milliseconds(),
			Duration:    FormatHours(s.Duration),
			Validated:   s.Validated,
			AutoClosed:  s.AutoClosed,
			IsLate:      s.IsLate,
			LateMinutes: s.LateMinutes,
		}
		if s.Out != nil {
			ms := s.Out.Timestamp.UnixMilli()
			resp.TimeOut = &ms
			resp.PhotoOutRef = s.Out.PhotoRef
		}
		sessions = append(sessions, resp)
	}

	return timesheet.DayRecordResponse{
		Date:        rec.Date.Format("2006-01-02"),
		Sessions:    sessions,
		TotalMs:     rec.Total.Milliseconds(),
		Total:       FormatHours(rec.Total),
		ValidatedMs: rec.Validated.Milliseconds(),
		Validated:   FormatHours(rec.Validated),
		PendingMs:   rec.Pending.Milliseconds(),
		Pending:     FormatHours(rec.Pending),
	}
}
