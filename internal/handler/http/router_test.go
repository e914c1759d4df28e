package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ojtportal/ojt-backend-go/internal/pkg/clock"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/jwt"
)

func newTestRouter() http.Handler {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")

	// Services stay nil: these routes never reach them.
	authHandler := NewAuthHandler(jwtService, nil, "http://localhost:3000")
	timesheetHandler := NewTimesheetHandler(nil, clock.System(), time.UTC)
	reportHandler := NewReportHandler(nil, clock.System(), time.UTC)

	return NewRouter("test", "http://localhost:3000", jwtService, authHandler, timesheetHandler, reportHandler)
}

func TestRouter_Heartbeat(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/api/v1/timesheet/me",
		"/api/v1/timesheet/s1",
		"/api/v1/reports/dtr/me",
		"/api/v1/reports/dtr/s1",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouter_CoordinatorRouteRejectsStudentRole(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	authHandler := NewAuthHandler(jwtService, nil, "http://localhost:3000")
	timesheetHandler := NewTimesheetHandler(nil, clock.System(), time.UTC)
	reportHandler := NewReportHandler(nil, clock.System(), time.UTC)
	router := NewRouter("test", "http://localhost:3000", jwtService, authHandler, timesheetHandler, reportHandler)

	token, _, err := jwtService.GenerateAccessToken("s1", "s1@example.edu", "student")
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/timesheet/s2", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
