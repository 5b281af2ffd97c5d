package main

import (
	"context"
	_ "embed"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/pitchside/turf-booking-backend/api"
	bk "github.com/pitchside/turf-booking-backend/booking"
	"github.com/pitchside/turf-booking-backend/config"
	"github.com/pitchside/turf-booking-backend/logger"
	"github.com/pitchside/turf-booking-backend/review"
	"github.com/pitchside/turf-booking-backend/turf"
	"github.com/pitchside/turf-booking-backend/user"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.WithError(err).Warn("no .env file loaded")
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Log.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}

	logger.Init(cfg.LogFile)

	log := logger.Log.WithField("component", "main")

	log.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)

	if err != nil {
		log.WithError(err).Error("unable to connect to database")
		os.Exit(1)
	}

	defer pool.Close()

	if _, err := pool.Exec(context.Background(), setupSQL); err != nil {
		log.WithError(err).Error("failed to initialize tables")
		os.Exit(1)
	}

	log.Info("initialized database tables")

	turfRepo := turf.NewCachedRepository(turf.NewRepository(pool))
	turfService := turf.NewService(turfRepo)

	bookingRepo := bk.NewRepository(pool)
	bookingService := bk.NewService(bookingRepo, turfRepo, time.Now)

	userRepo := user.NewRepository(pool)
	userService := user.NewService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	reviewRepo := review.NewRepository(pool)
	reviewService := review.NewService(reviewRepo, turfRepo)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	auth := api.Auth(cfg.JWTSecret)

	// AUTH API

	authRouter := r.Group("/api/v1/auth")
	authRouter.Use(api.RateLimit(cfg.AuthRateLimit))
	api.NewUserHandler(userService).Register(authRouter)

	// TURF API

	turfHandler := api.NewTurfHandler(turfService)
	bookingHandler := api.NewBookingHandler(bookingService, turfService)
	reviewHandler := api.NewReviewHandler(reviewService)

	turfRouter := r.Group("/api/v1/turfs")
	turfRouter.Use(api.OptionalAuth(cfg.JWTSecret))
	turfHandler.Register(turfRouter, auth)
	bookingHandler.RegisterTurfRoutes(turfRouter)
	reviewHandler.RegisterTurfRoutes(turfRouter)

	usersRouter := r.Group("/api/v1/users")
	turfHandler.RegisterUserRoutes(usersRouter)

	// BOOKING API

	bookingRouter := r.Group("/api/v1/bookings")
	bookingRouter.Use(auth)
	bookingHandler.Register(bookingRouter)

	// REVIEW API

	reviewRouter := r.Group("/api/v1/reviews")
	reviewRouter.Use(auth)
	reviewHandler.Register(reviewRouter)

	r.Run(cfg.Addr)
}
