package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/middleware"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Notification NotificationHandler
	JoinRequest  JoinRequestHandler
	Analytics    AnalyticsHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nimbus-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Unauthenticated employee application
		r.Post("/join-requests", h.JoinRequest.Submit)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			// Temp-password sessions stop here until the password is
			// changed.
			r.Group(func(r chi.Router) {
				r.Use(middleware.PermanentPasswordOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/me", h.User.GetMe)
					r.Patch("/me", h.User.UpdateMe)
					r.Get("/{id}", h.User.GetByID)
					r.Post("/{id}/documents", h.User.UploadDocument)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", h.User.List)
						r.Patch("/{id}", h.User.UpdateByID)
					})
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
					r.Get("/me", h.Attendance.ListMine)

					r.With(middleware.AdminOnly).Get("/", h.Attendance.List)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", h.Leave.Apply)
					r.Get("/me", h.Leave.ListMine)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", h.Leave.List)
						r.Patch("/{id}", h.Leave.Decide)
					})
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/me", h.Payroll.ListMine)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", h.Payroll.List)
						r.Post("/", h.Payroll.Create)
						r.Patch("/{id}/pay", h.Payroll.MarkPaid)
					})
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", h.Notification.ListMine)
					r.Patch("/{id}/read", h.Notification.MarkRead)

					r.With(middleware.AdminOnly).Post("/broadcast", h.Notification.Broadcast)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/join-requests", h.JoinRequest.List)
					r.Post("/join-requests/{id}/approve", h.JoinRequest.Approve)
					r.Post("/join-requests/{id}/reject", h.JoinRequest.Reject)
					r.Get("/analytics", h.Analytics.Get)
				})
			})
		})
	})
	return r
}
