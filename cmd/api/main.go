package main

import (
	"fmt"
	"net/http"

	"github.com/orbitdesk/backoffice-go/internal/config"
	appHTTP "github.com/orbitdesk/backoffice-go/internal/handler/http"
	"github.com/orbitdesk/backoffice-go/internal/pkg/clock"
	"github.com/orbitdesk/backoffice-go/internal/pkg/database"
	"github.com/orbitdesk/backoffice-go/internal/pkg/jwt"
	"github.com/orbitdesk/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/orbitdesk/backoffice-go/internal/service/attendance"
	authService "github.com/orbitdesk/backoffice-go/internal/service/auth"
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
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	officeClock := clock.NewFixedOffset(cfg.Office.UTCOffsetMinutes)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		officeClock,
		cfg.Office,
	)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
