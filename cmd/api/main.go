package main

import (
	"fmt"
	"net/http"

	"github.com/finpay-hq/payroll-backend-go/internal/config"
	appHTTP "github.com/finpay-hq/payroll-backend-go/internal/handler/http"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/jwt"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/oauth"
	"github.com/finpay-hq/payroll-backend-go/internal/repository/postgresql"
	analyticsService "github.com/finpay-hq/payroll-backend-go/internal/service/analytics"
	authService "github.com/finpay-hq/payroll-backend-go/internal/service/auth"
	deductionService "github.com/finpay-hq/payroll-backend-go/internal/service/deduction"
	employeeService "github.com/finpay-hq/payroll-backend-go/internal/service/employee"
	payrollService "github.com/finpay-hq/payroll-backend-go/internal/service/payroll"
	reimbursementService "github.com/finpay-hq/payroll-backend-go/internal/service/reimbursement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	calculator := payrollService.NewCalculator()

	authSvc := authService.NewAuthService(db, userRepo, tokenRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	deductionSvc := deductionService.NewRuleService(deductionRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, deductionRepo, calculator)
	reimbursementSvc := reimbursementService.NewReimbursementService(reimbursementRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(payrollRepo, employeeRepo, reimbursementRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reimbursementHandler := appHTTP.NewReimbursementHandler(reimbursementSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		deductionHandler,
		payrollHandler,
		reimbursementHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
