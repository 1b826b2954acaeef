package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-id/attendance-backend-go/internal/config"
	appHTTP "github.com/staffhub-id/attendance-backend-go/internal/handler/http"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/clock"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/database"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffhub-id/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-id/attendance-backend-go/internal/service/attendance"
	statsService "github.com/staffhub-id/attendance-backend-go/internal/service/stats"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	loc := cfg.Location()
	clk := clock.NewSystem(loc)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk, loc)
	statsSvc := statsService.NewStatsService(attendanceRepo, employeeRepo, clk)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		statsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
