package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nimbushr/nimbus-backend-go/internal/config"
	appHTTP "github.com/nimbushr/nimbus-backend-go/internal/handler/http"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/cron"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/email"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/jwt"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/storage"
	"github.com/nimbushr/nimbus-backend-go/internal/repository/postgresql"
	analyticsService "github.com/nimbushr/nimbus-backend-go/internal/service/analytics"
	attendanceService "github.com/nimbushr/nimbus-backend-go/internal/service/attendance"
	authService "github.com/nimbushr/nimbus-backend-go/internal/service/auth"
	joinRequestService "github.com/nimbushr/nimbus-backend-go/internal/service/joinrequest"
	leaveService "github.com/nimbushr/nimbus-backend-go/internal/service/leave"
	notificationService "github.com/nimbushr/nimbus-backend-go/internal/service/notification"
	payrollService "github.com/nimbushr/nimbus-backend-go/internal/service/payroll"
	userService "github.com/nimbushr/nimbus-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	joinRequestRepo := postgresql.NewJoinRequestRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, notificationRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, notificationRepo, userRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	joinRequestSvc := joinRequestService.NewJoinRequestService(db, joinRequestRepo, userRepo, notificationRepo, emailService)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterAttendanceJobs(scheduler, attendanceRepo)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		JoinRequest:  appHTTP.NewJoinRequestHandler(joinRequestSvc),
		Analytics:    appHTTP.NewAnalyticsHandler(analyticsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
