package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-office-backend/config"
	deliveryHttp "dental-office-backend/internal/delivery/http"
	"dental-office-backend/internal/delivery/http/handler"
	"dental-office-backend/internal/delivery/http/middleware"
	"dental-office-backend/internal/infrastructure/cache"
	"dental-office-backend/internal/infrastructure/database"
	"dental-office-backend/internal/repository"
	"dental-office-backend/internal/usecase"
	"dental-office-backend/pkg/jwt"
	"dental-office-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, handlers and the router
// into an HTTP server.
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	ruleRepo := repository.NewAvailabilityRuleRepository()
	timeOffRepo := repository.NewTimeOffRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	billingRepo := repository.NewBillingRecordRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorRepo, patientRepo, jwtService, redisClient)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, ruleRepo, timeOffRepo, appointmentRepo, doctorRepo)
	bookingUsecase := usecase.NewBookingUsecase(db, log, availabilityUsecase, appointmentRepo, billingRepo, doctorRepo, patientRepo)
	statusUsecase := usecase.NewAppointmentStatusUsecase(db, log, availabilityUsecase, appointmentRepo, billingRepo)
	scheduleViewUsecase := usecase.NewScheduleViewUsecase(db, log, ruleRepo, timeOffRepo, appointmentRepo, doctorRepo, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, ruleRepo, timeOffRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo, patientRepo, doctorRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, scheduleViewUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(availabilityUsecase, bookingUsecase, statusUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(scheduleViewUsecase, medicalRecordUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, authUsecase)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(authHandler, doctorHandler, appointmentHandler, patientHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
