package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ojtportal/ojt-backend-go/internal/domain/auth"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/ojtportal/ojt-backend-go/internal/handler/http/response"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/clock"
)

type TimesheetHandler interface {
	GetMyTimesheet(w http.ResponseWriter, r *http.Request)
	GetStudentTimesheet(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	clock            clock.Clock
	loc              *time.Location
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, clk clock.Clock, loc *time.Location) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
		clock:            clk,
		loc:              loc,
	}
}

// GetMyTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMyTimesheet(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	studentID, ok := claims["student_id"].(string)
	if !ok || studentID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	h.serve(w, r, studentID)
}

// GetStudentTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetStudentTimesheet(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")
	if studentID == "" {
		response.BadRequest(w, "Path parameter 'studentID' is required", nil)
		return
	}

	h.serve(w, r, studentID)
}

func (h *timesheetHandlerImpl) serve(w http.ResponseWriter, r *http.Request, studentID string) {
	from, to, err := h.parseRange(r)
	if err != nil {
		response.BadRequest(w, "Dates must use the YYYY-MM-DD format", nil)
		return
	}

	result, err := h.timesheetService.GetTimesheet(r.Context(), studentID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseRange reads the from/to query parameters. When both are absent the
// range defaults to the current calendar month in the portal timezone.
func (h *timesheetHandlerImpl) parseRange(r *http.Request) (from, to time.Time, err error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" && toStr == "" {
		now := h.clock.Now().In(h.loc)
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.loc)
		to = from.AddDate(0, 1, -1)
		return from, to, nil
	}

	from, err = time.ParseInLocation("2006-01-02", fromStr, h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = time.ParseInLocation("2006-01-02", toStr, h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
