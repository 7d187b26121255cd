package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/finpay-hq/payroll-backend-go/internal/config"
	"github.com/finpay-hq/payroll-backend-go/internal/handler/http/middleware"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	deductionHandler DeductionHandler,
	payrollHandler PayrollHandler,
	reimbursementHandler ReimbursementHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{code}", employeeHandler.Get)
				r.Get("/{code}/payroll", payrollHandler.ListByEmployee)
				r.Get("/{code}/reimbursements", reimbursementHandler.ListByEmployee)

				// Payroll officer or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOfficer)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{code}", employeeHandler.Update)
					r.Delete("/{code}", employeeHandler.Deactivate)
				})
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Use(middleware.RequireOfficer)
				r.Get("/", deductionHandler.List)
				r.Post("/", deductionHandler.Create)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)

				// Payroll officer or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOfficer)
					r.Post("/process", payrollHandler.Process)
				})
			})

			r.Route("/reimbursements", func(r chi.Router) {
				r.Get("/", reimbursementHandler.List)
				r.Post("/", reimbursementHandler.Create)
				r.Get("/{id}", reimbursementHandler.Get)

				// Payroll officer or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOfficer)
					r.Put("/{id}/process", reimbursementHandler.Process)
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequireOfficer)
				r.Get("/dashboard", analyticsHandler.Dashboard)
			})
		})
	})
	return r
}
