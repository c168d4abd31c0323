package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	payoutHandler PayoutHandler,
	taxHandler TaxHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	reimbursementHandler ReimbursementHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Actor-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/payouts", func(r chi.Router) {
			r.Get("/", payoutHandler.List)
			r.Post("/compute", payoutHandler.Compute)

			r.Route("/bulk", func(r chi.Router) {
				r.Post("/compute", payoutHandler.BulkCompute)
				r.Post("/approve", payoutHandler.BulkApprove)
				r.Post("/process", payoutHandler.BulkProcess)
			})

			r.Route("/{employeeID}/{month}/{year}", func(r chi.Router) {
				r.Get("/", payoutHandler.Get)
				r.Post("/approve", payoutHandler.Approve)
				r.Post("/reject", payoutHandler.Reject)
				r.Post("/pay-salary", payoutHandler.PaySalary)
				r.Post("/pay-tds", payoutHandler.PayTDS)
			})
		})

		r.Route("/tax", func(r chi.Router) {
			r.Post("/calculate", taxHandler.Calculate)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/summary/{employeeID}", attendanceHandler.PeriodSummary)
			r.Post("/validate-location", attendanceHandler.ValidateLocation)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/balance/{employeeID}", leaveHandler.Balance)
			r.Post("/check-overlap", leaveHandler.CheckOverlap)
		})

		r.Route("/reimbursements", func(r chi.Router) {
			r.Get("/totals/{employeeID}", reimbursementHandler.Totals)
		})
	})

	return r
}
