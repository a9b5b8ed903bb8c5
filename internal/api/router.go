package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hotel-louvain/booking-system/internal/api/handler"
	"github.com/hotel-louvain/booking-system/internal/api/middleware"
	"github.com/hotel-louvain/booking-system/internal/api/view"
	"github.com/hotel-louvain/booking-system/internal/core/service"
	"github.com/hotel-louvain/booking-system/internal/infrastructure/config"
	mongodb "github.com/hotel-louvain/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/hotel-louvain/booking-system/internal/infrastructure/db/redis"
	"github.com/hotel-louvain/booking-system/internal/session"
)

// Dependencies carries the external collaborators NewRouter wires together.
// Redis may be nil; the app then runs without rate limiting.
type Dependencies struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Config *config.Config
	Logger zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered and the
// collection indexes in place.
func NewRouter(ctx context.Context, deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(deps.DB)
	rooms := mongodb.NewRoomRepository(deps.DB)
	reservations := mongodb.NewReservationRepository(deps.DB)
	sessions := mongodb.NewSessionRepository(deps.DB)

	if err := users.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("user indexes: %w", err)
	}
	if err := reservations.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("reservation indexes: %w", err)
	}
	if err := sessions.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("session indexes: %w", err)
	}

	// --- Services ---
	authService := service.NewAuthService(users)
	roomService := service.NewRoomService(rooms, deps.Logger)
	reservationService := service.NewReservationService(reservations, rooms, users, deps.Logger)
	sessionManager := session.NewManager(sessions, deps.Config.SessionSecret)

	e.Use(middleware.LoadSession(sessionManager))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessionManager, deps.Logger)
	roomHandler := handler.NewRoomHandler(roomService)
	reservationHandler := handler.NewReservationHandler(reservationService, roomService)
	adminHandler := handler.NewAdminHandler(roomService, reservationService)

	authLimit := passthrough
	if deps.Config.RateLimit.Enabled && deps.Redis != nil {
		limiter := redisdb.NewRateLimiter(deps.Redis, deps.Config.RateLimit.Limit, deps.Config.RateLimit.Window)
		authLimit = middleware.RateLimit(limiter, deps.Logger)
	}

	// --- Authentication ---
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register, authLimit)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login, authLimit)
	e.GET("/logout", authHandler.Logout)

	// --- Public browsing ---
	e.GET("/", roomHandler.Home)
	e.GET("/rooms", roomHandler.Search)
	e.GET("/rooms/:id", roomHandler.Detail)

	// --- Guest reservations ---
	e.POST("/rooms/:id/reserve", reservationHandler.Reserve, middleware.RequireAuth)
	e.GET("/my-reservations", reservationHandler.History, middleware.RequireAuth)

	// --- Admin ---
	admin := e.Group("/admin", middleware.RequireAdmin)
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/rooms", adminHandler.ListRooms)
	admin.POST("/rooms", adminHandler.CreateRoom)
	admin.POST("/rooms/:id/toggle", adminHandler.ToggleRoom)
	admin.POST("/rooms/:id/delete", adminHandler.DeleteRoom)
	admin.GET("/reservations", adminHandler.ListReservations)

	// --- Probes & metrics ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.DB, deps.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}
