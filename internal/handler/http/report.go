package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ojtportal/ojt-backend-go/internal/domain/auth"
	"github.com/ojtportal/ojt-backend-go/internal/handler/http/response"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/clock"
	"github.com/ojtportal/ojt-backend-go/internal/service/report"
)

type ReportHandler interface {
	ExportMyDTR(w http.ResponseWriter, r *http.Request)
	ExportStudentDTR(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	clock         clock.Clock
	loc           *time.Location
}

func NewReportHandler(reportService report.ReportService, clk clock.Clock, loc *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		clock:         clk,
		loc:           loc,
	}
}

// ExportMyDTR implements ReportHandler.
func (h *reportHandlerImpl) ExportMyDTR(w http.ResponseWriter, r *http.Request) {
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

// ExportStudentDTR implements ReportHandler.
func (h *reportHandlerImpl) ExportStudentDTR(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")
	if studentID == "" {
		response.BadRequest(w, "Path parameter 'studentID' is required", nil)
		return
	}

	h.serve(w, r, studentID)
}

func (h *reportHandlerImpl) serve(w http.ResponseWriter, r *http.Request, studentID string) {
	month, err := h.parseMonth(r)
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must use the YYYY-MM format", nil)
		return
	}

	file, filename, err := h.reportService.ExportDTR(r.Context(), studentID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(file)
}

// parseMonth reads the month query parameter, defaulting to the current
// month in the portal timezone.
func (h *reportHandlerImpl) parseMonth(r *http.Request) (time.Time, error) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		now := h.clock.Now().In(h.loc)
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.loc), nil
	}
	return time.ParseInLocation("2006-01", monthStr, h.loc)
}
