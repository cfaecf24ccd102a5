package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/na2na-p/poolbook/internal/config"
	"github.com/na2na-p/poolbook/internal/handler"
	authMiddleware "github.com/na2na-p/poolbook/internal/handler/middleware"
	"github.com/na2na-p/poolbook/internal/infrastructure/logging"
	"github.com/na2na-p/poolbook/internal/infrastructure/postgres"
	"github.com/na2na-p/poolbook/internal/infrastructure/redis"
	"github.com/na2na-p/poolbook/internal/infrastructure/s3"
	"github.com/na2na-p/poolbook/internal/infrastructure/token"
	"github.com/na2na-p/poolbook/internal/usecase"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPostgresConnection(postgres.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	slog.Info("PostgreSQL connection established")

	redisConn, err := redis.NewRedisConnection(redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisConn.Close() }()
	redisClient := redis.NewRedisClient(redisConn)
	slog.Info("Redis connection established")

	s3Conn, err := s3.NewS3Connection(s3.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
	})
	if err != nil {
		return err
	}
	s3Client := s3.NewS3Client(s3Conn, cfg.S3.BucketName)
	slog.Info("S3 connection established")

	userRepo := postgres.NewUserRepository(pool)
	poolRepo := postgres.NewPoolRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	uploadRepo := postgres.NewFileUploadRepository(pool)

	jwtManager, err := token.NewJWTManager(token.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	})
	if err != nil {
		return err
	}
	refreshStore := redis.NewRefreshTokenStore(redisClient)

	authUC := usecase.NewAuthUseCase(userRepo, jwtManager, jwtManager, refreshStore)
	poolUC := usecase.NewPoolUseCase(poolRepo)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, poolRepo)
	ratingUC := usecase.NewRatingUseCase(ratingRepo, poolRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	uploadUC := usecase.NewFileUploadUseCase(uploadRepo, s3Client)

	readinessUC := usecase.NewReadinessUseCase(
		postgres.NewPostgresHealthChecker(pool),
		redis.NewRedisHealthChecker(redisClient),
		s3.NewS3HealthChecker(s3Client),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = authMiddleware.CustomHTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))
	e.Use(authMiddleware.IdentityResolver(jwtManager))

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	authHandler := handler.NewAuthHandler(authUC)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/token/refresh", authHandler.Refresh)

	pageSize := cfg.Server.PageSize

	poolHandler := handler.NewPoolHandler(poolUC, pageSize)
	pools := e.Group("/pools")
	pools.GET("", poolHandler.List)
	pools.POST("", poolHandler.Create)
	pools.GET("/:slug", poolHandler.Get)
	pools.PUT("/:slug", poolHandler.Update)
	pools.PATCH("/:slug", poolHandler.Update)
	pools.DELETE("/:slug", poolHandler.Delete)

	bookingHandler := handler.NewBookingHandler(bookingUC, pageSize)
	bookings := e.Group("/bookings")
	bookings.GET("", bookingHandler.List)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/recent_bookings", bookingHandler.RecentBookings)
	bookings.GET("/:slug", bookingHandler.Get)
	bookings.PUT("/:slug", bookingHandler.Update)
	bookings.PATCH("/:slug", bookingHandler.Update)
	bookings.DELETE("/:slug", bookingHandler.Delete)

	ratingHandler := handler.NewRatingHandler(ratingUC, pageSize)
	ratings := e.Group("/ratings")
	ratings.GET("", ratingHandler.List)
	ratings.POST("", ratingHandler.Create)
	ratings.GET("/user_ratings", ratingHandler.UserRatings)
	ratings.GET("/:slug", ratingHandler.Get)
	ratings.PUT("/:slug", ratingHandler.Update)
	ratings.PATCH("/:slug", ratingHandler.Update)
	ratings.DELETE("/:slug", ratingHandler.Delete)

	userHandler := handler.NewUserHandler(userUC, pageSize)
	users := e.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)

	uploadHandler := handler.NewFileUploadHandler(uploadUC, pageSize)
	uploads := e.Group("/fileuploads")
	uploads.GET("", uploadHandler.List)
	uploads.POST("", uploadHandler.Create)
	uploads.GET("/:id", uploadHandler.Get)
	uploads.PUT("/:id", uploadHandler.Update)
	uploads.DELETE("/:id", uploadHandler.Delete)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
