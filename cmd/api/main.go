package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/synapse-hq/synapse-backend-go/internal/config"
	appHTTP "github.com/synapse-hq/synapse-backend-go/internal/handler/http"
	"github.com/synapse-hq/synapse-backend-go/internal/repository/memory"
	assistService "github.com/synapse-hq/synapse-backend-go/internal/service/assist"
	dashboardService "github.com/synapse-hq/synapse-backend-go/internal/service/dashboard"
	reportService "github.com/synapse-hq/synapse-backend-go/internal/service/report"
	workforceService "github.com/synapse-hq/synapse-backend-go/internal/service/workforce"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	now := func() time.Time { return time.Now().UTC() }

	generator := workforceService.NewGenerator(workforceService.Config{
		Size:       cfg.Generator.WorkforceSize,
		WindowDays: cfg.Generator.AttendanceWindowDays,
	})
	repo := memory.NewWorkforceRepository(generator.Build())

	dashboardSvc := dashboardService.NewService(repo, now)
	reportSvc := reportService.NewService(repo, now)

	var assistSvc *assistService.Service
	if cfg.Gemini.APIKey != "" {
		gemini, err := assistService.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatal("Failed to initialize Gemini client:", err)
		}
		defer gemini.Close()
		assistSvc = assistService.NewService(gemini, repo)
	}

	workforceHandler := appHTTP.NewWorkforceHandler(repo, now)
	leaveHandler := appHTTP.NewLeaveHandler(repo)
	kudosHandler := appHTTP.NewKudosHandler(repo, now)
	holidayHandler := appHTTP.NewHolidayHandler()
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	assistHandler := appHTTP.NewAssistHandler(assistSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:      cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			LogLevel:    cfg.SlogLevel(),
		},
		appHTTP.Handlers{
			Workforce: workforceHandler,
			Leave:     leaveHandler,
			Kudos:     kudosHandler,
			Holiday:   holidayHandler,
			Dashboard: dashboardHandler,
			Report:    reportHandler,
			Assist:    assistHandler,
		},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
