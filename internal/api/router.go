package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gctu/attendance-api/docs"
	"github.com/gctu/attendance-api/internal/api/handler"
	"github.com/gctu/attendance-api/internal/api/middleware"
	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// Deps carries the services the router exposes.
type Deps struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Dashboards ports.DashboardService
	Attendance ports.AttendanceService
	Importer   handler.BatchImporter
	Checks     map[string]handler.Check
	Log        zerolog.Logger

	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "attendance",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users, d.Importer)
	studentHandler := handler.NewStudentHandler(d.Dashboards)
	lecturerHandler := handler.NewLecturerHandler(d.Dashboards, d.Attendance)
	healthHandler := handler.NewHealthHandler(d.Checks, d.Log)

	authn := middleware.Auth(d.Auth, d.Log)
	admin := []echo.MiddlewareFunc{authn, middleware.RequireRole(domain.RoleAdmin)}
	student := []echo.MiddlewareFunc{authn, middleware.RequireRole(domain.RoleStudent)}
	lecturer := []echo.MiddlewareFunc{authn, middleware.RequireRole(domain.RoleLecturer)}

	// --- Auth ---
	e.POST("/login", authHandler.Login)
	e.POST("/change_password", authHandler.ChangePassword, authn)
	e.GET("/me", authHandler.Me, authn)

	// --- Admin ---
	e.POST("/register", userHandler.Register, admin...)
	e.GET("/users", userHandler.List, admin...)
	e.GET("/users/by-role", userHandler.ListByRole, admin...)
	e.POST("/users/import", userHandler.Import, admin...)
	e.DELETE("/users/:user_id", userHandler.Delete, admin...)

	// --- Student ---
	e.GET("/student/dashboard", studentHandler.Dashboard, student...)
	e.GET("/student/attendance", studentHandler.Attendance, student...)

	// --- Lecturer ---
	e.GET("/lecturer/dashboard", lecturerHandler.Dashboard, lecturer...)
	e.GET("/lecturer/attendance", lecturerHandler.Attendance, lecturer...)
	e.POST("/lecturer/attendance", lecturerHandler.RecordAttendance, lecturer...)

	// --- Operations (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger feeds echo's request logger into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
