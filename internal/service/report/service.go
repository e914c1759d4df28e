package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	svcTimesheet "github.com/ojtportal/ojt-backend-go/internal/service/timesheet"
	"github.com/xuri/excelize/v2"
)

// ReportService renders computed timesheets into downloadable documents.
// It owns no computation: everything comes from the timesheet service.
type ReportService interface {
	// ExportDTR builds the daily time record workbook for one student and
	// month, returning the file bytes and a suggested filename.
	ExportDTR(ctx context.Context, studentID string, month time.Time) ([]byte, string, error)
}

type ReportServiceImpl struct {
	studentRepo      student.StudentRepository
	timesheetService timesheet.TimesheetService
}

func NewReportService(studentRepo student.StudentRepository, timesheetService timesheet.TimesheetService) ReportService {
	return &ReportServiceImpl{
		studentRepo:      studentRepo,
		timesheetService: timesheetService,
	}
}

const dtrSheet = "DTR"

// ExportDTR implements ReportService.
func (r *ReportServiceImpl) ExportDTR(ctx context.Context, studentID string, month time.Time) ([]byte, string, error) {
	stu, err := r.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get student: %w", err)
	}

	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	to := from.AddDate(0, 1, -1)

	sum, err := r.timesheetService.ComputeRange(ctx, studentID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("failed to compute timesheet: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", dtrSheet)

	f.SetCellValue(dtrSheet, "A1", "DAILY TIME RECORD")
	f.SetCellValue(dtrSheet, "A2", stu.FullName)
	f.SetCellValue(dtrSheet, "A3", from.Format("January 2006"))

	headers := []string{"Date", "AM In", "AM Out", "PM In", "PM Out", "OT In", "OT Out", "Late (min)", "Total", "Validated", "Pending"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(dtrSheet, cell, h)
	}

	row := 6
	for _, day := range sum.Days {
		f.SetCellValue(dtrSheet, fmt.Sprintf("A%d", row), day.Date.Format("2006-01-02"))

		late := 0
		for _, s := range day.Sessions {
			col := sessionColumns(s)
			if col == 0 {
				continue
			}
			loc := day.Date.Location()
			f.SetCellValue(dtrSheet, cellName(col, row), formatClock(s.In.Timestamp.In(loc)))
			if s.Out != nil {
				outLabel := formatClock(s.Out.Timestamp.In(loc))
				if s.AutoClosed {
					outLabel += "*"
				}
				f.SetCellValue(dtrSheet, cellName(col+1, row), outLabel)
			}
			late += s.LateMinutes
		}

		if late > 0 {
			f.SetCellValue(dtrSheet, cellName(8, row), late)
		}
		f.SetCellValue(dtrSheet, cellName(9, row), svcTimesheet.FormatHours(day.Total))
		f.SetCellValue(dtrSheet, cellName(10, row), svcTimesheet.FormatHours(day.Validated))
		f.SetCellValue(dtrSheet, cellName(11, row), svcTimesheet.FormatHours(day.Pending))
		row++
	}

	f.SetCellValue(dtrSheet, fmt.Sprintf("A%d", row+1), "TOTAL")
	f.SetCellValue(dtrSheet, cellName(9, row+1), svcTimesheet.FormatHours(sum.Total))
	f.SetCellValue(dtrSheet, cellName(10, row+1), svcTimesheet.FormatHours(sum.Validated))
	f.SetCellValue(dtrSheet, cellName(11, row+1), svcTimesheet.FormatHours(sum.Pending))
	f.SetCellValue(dtrSheet, fmt.Sprintf("A%d", row+2), "* session auto-closed at official shift end")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("dtr-%s-%s.xlsx", stu.ID, from.Format("2006-01"))
	return buf.Bytes(), filename, nil
}

func sessionColumns(s timesheet.Session) int {
	switch s.Shift {
	case "AM":
		return 2
	case "PM":
		return 4
	case "OT":
		return 6
	}
	return 0
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func formatClock(t time.Time) string {
	return t.Format("15:04")
}
