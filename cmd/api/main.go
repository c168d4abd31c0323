package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	appHTTP "github.com/cmlabs-hris/payroll-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/cron"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-engine-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/payroll-engine-go/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/payroll-engine-go/internal/service/leave"
	payoutService "github.com/cmlabs-hris/payroll-engine-go/internal/service/payout"
	reimbursementService "github.com/cmlabs-hris/payroll-engine-go/internal/service/reimbursement"
	taxService "github.com/cmlabs-hris/payroll-engine-go/internal/service/tax"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)

	payoutSvc := payoutService.NewService(payoutRepo, employeeRepo)
	taxCalc := taxService.NewCalculator()
	attendanceSvc := attendanceService.NewService(attendanceRepo, attendanceService.NewCalculator())
	leaveSvc := leaveService.NewService(leaveRepo, leaveService.NewCalculator())
	reimbursementSvc := reimbursementService.NewService(reimbursementRepo, reimbursementService.NewCalculator())

	payoutHandler := appHTTP.NewPayoutHandler(payoutSvc)
	taxHandler := appHTTP.NewTaxHandler(taxCalc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reimbursementHandler := appHTTP.NewReimbursementHandler(reimbursementSvc)

	router := appHTTP.NewRouter(
		cfg,
		payoutHandler,
		taxHandler,
		attendanceHandler,
		leaveHandler,
		reimbursementHandler,
	)

	scheduler := cron.NewScheduler()
	if cfg.Payout.AutoComputeEnabled {
		payoutJobs := cron.NewPayoutJobs(payoutSvc, cfg.Payout.AutoComputeActor)
		payoutJobs.RegisterJobs(scheduler)
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
