package http

import (
	"log/slog"
	"os"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	"github.com/checkmate-hq/checkmate-backend-go/internal/handler/http/middleware"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/jwt"
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
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "checkmate"),
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

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {

				r.Route("/me", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetMyDocument)
					r.Get("/today", attendanceHandler.GetMyToday)
					r.Get("/calendar", attendanceHandler.GetMyCalendar)
					r.Post("/punch-in", attendanceHandler.PunchIn)
					r.Post("/punch-out", attendanceHandler.PunchOut)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/sweep-leave", attendanceHandler.SweepLeave)
					r.Route("/users/{id}", func(r chi.Router) {
						r.Get("/", attendanceHandler.GetUserDocument)
						r.Put("/", attendanceHandler.UpsertRecord)
						r.Get("/calendar", attendanceHandler.GetUserCalendar)
						r.Get("/stats", attendanceHandler.GetUserStats)
					})
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.ListUsers)
					r.Post("/", userHandler.CreateUser)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", userHandler.GetUser)
						r.Put("/", userHandler.UpdateUser)
						r.Delete("/", userHandler.DeleteUser)
					})
				})

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/overview", dashboardHandler.GetTeamOverview)
				})
			})
		})
	})
	return r
}
