package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"sportszone/internal/auth"
	"sportszone/internal/config"
	"sportszone/internal/handler"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Class     *handler.ClassHandler
	Selection *handler.SelectionHandler
	Payment   *handler.PaymentHandler
	Review    *handler.ReviewHandler
	Health    *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	jwtService *auth.JWTService,
	roles auth.RoleLookup,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(RequestTimeout(cfg.RequestTimeout))

	e.Validator = NewValidator()

	e.GET("/", h.Health.Root)
	e.GET("/healthz", h.Health.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireToken := auth.JWTMiddleware(jwtService)
	requireAdmin := auth.RequireAdmin(roles)
	requireInstructor := auth.RequireInstructor(roles)

	// Public routes
	e.POST("/jwt", h.Auth.IssueToken)
	e.POST("/users", h.User.CreateUser)
	e.GET("/users/instructors", h.User.ListInstructors)
	e.GET("/instructors/popular", h.User.PopularInstructors)
	e.GET("/classes/popular", h.Class.PopularClasses)
	e.GET("/classes/approved", h.Class.ApprovedClasses)
	e.DELETE("/classes/selected", h.Selection.RemoveSelected)
	e.POST("/create-payment-intent", h.Payment.CreatePaymentIntent)
	e.GET("/reviews", h.Review.ListReviews)

	// Token routes
	e.GET("/users/admin/:email", h.User.IsAdmin, requireToken)
	e.GET("/users/instructor/:email", h.User.IsInstructor, requireToken)
	e.GET("/classes/selected", h.Selection.ListSelected, requireToken)
	e.POST("/classes/selected", h.Selection.SelectClass, requireToken)
	e.POST("/payments", h.Payment.Enroll, requireToken)
	e.GET("/payments/enrolled/student", h.Payment.EnrolledStudent, requireToken)

	// Admin routes
	e.GET("/users", h.User.ListUsers, requireToken, requireAdmin)
	e.PATCH("/users/role", h.User.UpdateRole, requireToken, requireAdmin)
	e.DELETE("/users", h.User.DeleteUser, requireToken, requireAdmin)
	e.GET("/classes", h.Class.ListClasses, requireToken, requireAdmin)
	e.GET("/classes/denied", h.Class.DeniedClasses, requireToken, requireAdmin)
	e.PATCH("/classes/status", h.Class.UpdateStatus, requireToken, requireAdmin)
	e.PATCH("/classes/feedback", h.Class.UpdateFeedback, requireToken, requireAdmin)
	e.GET("/payments/history", h.Payment.History, requireToken, requireAdmin)

	// Instructor routes
	e.POST("/classes", h.Class.CreateClass, requireToken, requireInstructor)
	e.PATCH("/classes/update", h.Class.UpdateClass, requireToken, requireInstructor)
	e.GET("/payments/enrolled/instructor", h.Class.InstructorClasses, requireToken, requireInstructor)
}

// RequestLogger logs one structured line per request.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				log.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Status >= http.StatusBadRequest:
				log.Warn("request", fields...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}

// RequestTimeout bounds the request context so store and gateway calls give
// up after d. A zero d leaves the context untouched.
func RequestTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if d <= 0 {
				return next(c)
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator installed on the server.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
