package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/config"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/finpay-hq/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/finpay-hq/payroll-backend-go/internal/service/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Populates a development database with a small, readable data set:
// three users (one per role), a handful of employees, the standard
// deduction rules, a few months of payroll history and a few pending
// reimbursements.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	ctx := context.Background()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	rules := seedDeductionRules(ctx, deductionRepo)
	emps := seedEmployees(ctx, employeeRepo)

	codes := make([]string, 0, len(emps))
	for _, emp := range emps {
		codes = append(codes, emp.EmployeeCode)
	}

	seedUsers(ctx, userRepo, codes)
	seedPayrollHistory(ctx, payrollRepo, emps, rules)
	seedReimbursements(ctx, reimbursementRepo, codes)

	fmt.Println("Seed complete")
}

func seedDeductionRules(ctx context.Context, repo deduction.RuleRepository) []deduction.Rule {
	rules := []deduction.Rule{
		{Name: "Income Tax", Kind: deduction.KindTax, Percentage: decimal.NewFromInt(22), IsPercentage: true, IsMandatory: true},
		{Name: "Provident Fund", Kind: deduction.KindPF, Percentage: decimal.NewFromInt(12), IsPercentage: true, IsMandatory: true},
		{Name: "Health Insurance", Kind: deduction.KindInsurance, Amount: decimal.NewFromInt(350), IsMandatory: true},
		{Name: "Sports Club", Kind: deduction.KindOther, Amount: decimal.NewFromInt(25), IsMandatory: false},
	}

	created := make([]deduction.Rule, 0, len(rules))
	for _, rule := range rules {
		result, err := repo.Create(ctx, rule)
		if err != nil {
			log.Printf("skipping rule %q: %v", rule.Name, err)
			continue
		}
		created = append(created, result)
	}
	return created
}

func seedEmployees(ctx context.Context, repo employee.EmployeeRepository) []employee.Employee {
	names := [][2]string{
		{"Alice", "Hartono"},
		{"Budi", "Santoso"},
		{"Citra", "Wijaya"},
		{"Dewi", "Lestari"},
		{"Eko", "Prasetyo"},
	}
	departments := []string{"Engineering", "Finance", "Operations"}
	positions := []string{"Engineer", "Analyst", "Coordinator"}

	emps := make([]employee.Employee, 0, len(names))
	for i, name := range names {
		code := fmt.Sprintf("EMP%03d", i+1)
		salary := decimal.NewFromInt(int64(4000 + rand.Intn(5)*400))

		created, err := repo.Create(ctx, employee.Employee{
			EmployeeCode: code,
			FirstName:    name[0],
			LastName:     name[1],
			Email:        fmt.Sprintf("%s.%s@finpay.example", name[0], name[1]),
			PhoneNumber:  fmt.Sprintf("+62812%07d", rand.Intn(10000000)),
			Department:   departments[i%len(departments)],
			Position:     positions[i%len(positions)],
			JoiningDate:  time.Now().AddDate(-1-rand.Intn(4), -rand.Intn(12), 0),
			BaseSalary:   salary,
			BankAccount:  fmt.Sprintf("%010d", rand.Intn(1000000000)),
			TaxID:        fmt.Sprintf("TX%08d", rand.Intn(100000000)),
			Address:      "Jl. Sudirman No. 1, Jakarta",
			Status:       employee.StatusActive,
		})
		if err != nil {
			log.Printf("skipping employee %s: %v", code, err)
			continue
		}
		emps = append(emps, created)
	}
	return emps
}

func seedUsers(ctx context.Context, repo user.UserRepository, codes []string) {
	hash := func(pw string) *string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("failed to hash seed password: ", err)
		}
		s := string(h)
		return &s
	}

	users := []user.User{
		{Username: "admin", Email: "admin@finpay.example", PasswordHash: hash("admin12345"), Role: user.RoleAdmin},
		{Username: "officer", Email: "officer@finpay.example", PasswordHash: hash("officer12345"), Role: user.RolePayrollOfficer},
	}
	if len(codes) > 0 {
		users = append(users, user.User{
			Username:     "employee",
			Email:        "employee@finpay.example",
			PasswordHash: hash("employee12345"),
			Role:         user.RoleEmployee,
			EmployeeCode: &codes[0],
		})
	}

	for _, u := range users {
		if _, err := repo.Create(ctx, u); err != nil {
			log.Printf("skipping user %q: %v", u.Username, err)
		}
	}
}

// seedPayrollHistory backfills processed payroll runs for the last few
// months. Mandatory rules always apply; optional ones are enrolled per run,
// so the history shows both opted-in and opted-out months.
func seedPayrollHistory(ctx context.Context, repo payroll.RecordRepository, emps []employee.Employee, rules []deduction.Rule) {
	calculator := payrollService.NewCalculator()
	now := time.Now()

	for _, emp := range emps {
		for monthsBack := 1; monthsBack <= 3; monthsBack++ {
			period := now.AddDate(0, -monthsBack, 0)
			overtimeHours := decimal.NewFromInt(int64(rand.Intn(20)))
			bonuses := decimal.NewFromInt(int64(rand.Intn(3) * 100))

			result := calculator.Compute(payrollService.CalculationInput{
				BaseSalary:    emp.BaseSalary,
				OvertimeHours: overtimeHours,
				Bonuses:       bonuses,
				Rules:         pickRules(rules),
			})

			processedAt := period
			_, err := repo.Create(ctx, payroll.Record{
				EmployeeCode:    emp.EmployeeCode,
				Month:           int(period.Month()),
				Year:            period.Year(),
				BaseSalary:      emp.BaseSalary,
				OvertimeHours:   overtimeHours,
				OvertimeRate:    result.OvertimeRate,
				Bonuses:         bonuses,
				GrossSalary:     result.GrossSalary,
				Deductions:      result.Deductions,
				TotalDeductions: result.TotalDeductions,
				NetSalary:       result.NetSalary,
				Status:          payroll.StatusProcessed,
				ProcessedAt:     &processedAt,
			})
			if err != nil {
				log.Printf("skipping payroll %s %d-%02d: %v", emp.EmployeeCode, period.Year(), int(period.Month()), err)
			}
		}
	}
}

// pickRules keeps every mandatory rule and enrolls each optional one with a
// 70% chance.
func pickRules(rules []deduction.Rule) []deduction.Rule {
	picked := make([]deduction.Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsMandatory || rand.Intn(100) < 70 {
			picked = append(picked, rule)
		}
	}
	return picked
}

func seedReimbursements(ctx context.Context, repo reimbursement.RequestRepository, codes []string) {
	categories := []reimbursement.Category{
		reimbursement.CategoryTravel,
		reimbursement.CategoryMedical,
		reimbursement.CategoryFood,
	}

	for i, code := range codes {
		if i%2 == 1 {
			continue
		}
		receipt := fmt.Sprintf("https://receipts.finpay.example/%s.pdf", uuid.NewString())
		_, err := repo.Create(ctx, reimbursement.Request{
			EmployeeCode: code,
			Category:     categories[i%len(categories)],
			Amount:       decimal.NewFromInt(int64(50 + rand.Intn(200))),
			Description:  "Client visit expenses",
			ReceiptURL:   &receipt,
			Status:       reimbursement.StatusPending,
		})
		if err != nil {
			log.Printf("skipping reimbursement for %s: %v", code, err)
		}
	}
}
