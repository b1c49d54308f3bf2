package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-api/config"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/infrastructure/cache"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
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

	if err := database.RunMigrations(db, cfg.DB.MigrationsDir); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	userRepo := repository.NewUserRepository()
	if err := seedDefaultAdmin(db, userRepo, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient, userRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedDefaultAdmin creates the bootstrap admin account when no admin exists
// yet. The default credential is for first login only and must be rotated
// before any real deployment.
func seedDefaultAdmin(db *gorm.DB, userRepo domainRepo.UserRepository, cfg config.AdminConfig) error {
	count, err := userRepo.CountByRole(db, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Username: cfg.Username,
		Password: string(hashedPassword),
		Role:     entity.RoleAdmin,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logrus.Warnf("Default admin account %q created; rotate this credential before serving real traffic", cfg.Username)
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, userRepo domainRepo.UserRepository) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	log := logrus.StandardLogger()

	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, jwtService, redisClient)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, doctorProfileRepo, patientProfileRepo, appointmentRepo)
	bookingUsecase := usecase.NewPatientBookingUsecase(db, log, patientProfileRepo, doctorProfileRepo, appointmentRepo)
	treatmentUsecase := usecase.NewDoctorTreatmentUsecase(db, log, doctorProfileRepo, appointmentRepo)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(bookingUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(treatmentUsecase, customValidator)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimiter := middleware.NewRateLimiter(5, 10)

	router := deliveryHttp.NewRouter(authHandler, adminHandler, patientHandler, doctorHandler, authMiddleware, corsMiddleware, rateLimiter)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
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
