package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ojtportal/ojt-backend-go/internal/config"
	appHTTP "github.com/ojtportal/ojt-backend-go/internal/handler/http"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/clock"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/cron"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/database"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/jwt"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/oauth"
	"github.com/ojtportal/ojt-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/ojtportal/ojt-backend-go/internal/service/auth"
	reportService "github.com/ojtportal/ojt-backend-go/internal/service/report"
	scheduleService "github.com/ojtportal/ojt-backend-go/internal/service/schedule"
	timesheetService "github.com/ojtportal/ojt-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc := cfg.Location()
	clk := clock.System()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	studentRepo := postgresql.NewStudentRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	configRepo := postgresql.NewScheduleConfigRepository(db)
	grantRepo := postgresql.NewGrantRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	builder := scheduleService.NewBuilder(loc, logger)
	authSvc := serviceAuth.NewAuthService(studentRepo, JWTService, GoogleService)
	timesheetSvc := timesheetService.NewTimesheetService(studentRepo, punchRepo, configRepo, grantRepo, builder, clk, logger)
	reportSvc := reportService.NewReportService(studentRepo, timesheetSvc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, clk, loc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, clk, loc)

	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(studentRepo, timesheetSvc, clk, loc)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		JWTService,
		authHandler,
		timesheetHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
