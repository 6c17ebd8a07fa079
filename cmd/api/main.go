package main

import (
	"fmt"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	appHTTP "github.com/checkmate-hq/checkmate-backend-go/internal/handler/http"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/jwt"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/oauth"
	"github.com/checkmate-hq/checkmate-backend-go/internal/repository/postgresql"
	attendanceService "github.com/checkmate-hq/checkmate-backend-go/internal/service/attendance"
	authService "github.com/checkmate-hq/checkmate-backend-go/internal/service/auth"
	dashboardService "github.com/checkmate-hq/checkmate-backend-go/internal/service/dashboard"
	userService "github.com/checkmate-hq/checkmate-backend-go/internal/service/user"
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
	dayRecordRepo := postgresql.NewDayRecordRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, cfg.Auth, userRepo, jwtSvc, jwtRepo)
	userSvc := userService.NewUserService(db, userRepo, dayRecordRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, dayRecordRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, dayRecordRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, jwtSvc, authHandler, userHandler, attendanceHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server starting on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
