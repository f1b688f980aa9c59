package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AppEnv      string
	FrontendURL string
	LogLevel    slog.Level
}

type Handlers struct {
	Workforce WorkforceHandler
	Leave     LeaveHandler
	Kudos     KudosHandler
	Holiday   HolidayHandler
	Dashboard DashboardHandler
	Report    ReportHandler
	Assist    AssistHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "synapse-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Workforce.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Workforce.GetByID)
				r.Get("/attendance", h.Workforce.GetAttendance)
				r.Post("/punch-in", h.Workforce.PunchIn)
				r.Post("/punch-out", h.Workforce.PunchOut)
				r.Get("/requests", h.Leave.ListForEmployee)
				r.Post("/requests", h.Leave.Submit)
			})
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.Leave.List)
			r.Patch("/{id}", h.Leave.UpdateStatus)
		})

		r.Route("/kudos", func(r chi.Router) {
			r.Get("/", h.Kudos.Feed)
			r.Post("/", h.Kudos.Give)
		})

		r.Get("/holidays", h.Holiday.List)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/hr", h.Dashboard.GetHRDashboard)
			r.Get("/attendance-today", h.Dashboard.GetTodayAttendance)
		})

		r.Get("/reports/attendance.xlsx", h.Report.DownloadAttendance)

		r.Route("/assist", func(r chi.Router) {
			r.Post("/chat", h.Assist.Chat)
			r.Post("/missed-punch", h.Assist.MissedPunch)
		})
	})

	return r
}
