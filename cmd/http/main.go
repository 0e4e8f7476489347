package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"proacolhe-service/internal/app/bootstrap"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/delivery/http/controllers"
	"proacolhe-service/internal/app/delivery/http/middlewares"
	"proacolhe-service/internal/app/delivery/http/routers"
	"proacolhe-service/internal/app/drivers/database"
	"proacolhe-service/internal/app/drivers/logger"
	"proacolhe-service/internal/app/drivers/messaging"
	"proacolhe-service/internal/app/drivers/storage"
	"proacolhe-service/internal/app/services/core/auth"
	"proacolhe-service/internal/app/services/core/backup"
	"proacolhe-service/internal/app/services/core/consultations"
	"proacolhe-service/internal/app/services/core/dashboard"
	"proacolhe-service/internal/app/services/core/patients"
	"proacolhe-service/internal/app/services/core/protocols"
	"proacolhe-service/internal/app/services/core/session"
	"proacolhe-service/internal/app/services/core/settings"
	"proacolhe-service/internal/app/services/core/users"
	"proacolhe-service/internal/app/services/shared/locker"
	"proacolhe-service/internal/app/services/shared/notification"
	"proacolhe-service/internal/app/services/shared/ratelimiter"
	"proacolhe-service/internal/app/services/shared/redis"
	minioStorage "proacolhe-service/internal/app/services/shared/storage"
	"proacolhe-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	app := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch internalConfig.Storage.Driver {
	case constvars.StorageDriverMongo:
		app.MongoDB = database.NewMongoDB(driverConfig)
	default:
		app.SQLite = database.NewSQLite(driverConfig)
	}
	if internalConfig.Notification.Enabled {
		app.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.Backup.Enabled {
		app.Minio = storage.NewMinio(driverConfig)
	}

	backupWorker, err := bootstrapingTheApp(app)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}
	if backupWorker != nil {
		backupWorker.Start(context.Background())
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening",
			zap.String("address", server.Addr),
			zap.String(constvars.LoggingStorageDriverKey, internalConfig.Storage.Driver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if backupWorker != nil {
		backupWorker.Stop()
	}

	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

// bootstrapingTheApp wires every route. The returned backup worker is nil
// unless scheduled backups are configured.
func bootstrapingTheApp(app *config.Bootstrap) (*backup.Worker, error) {
	repositories, err := bootstrap.NewRepositories(app)
	if err != nil {
		return nil, err
	}

	// Redis
	redisRepository := redis.NewRedisRepository(app.Redis)
	lockService := locker.NewLockService(redisRepository, app.Logger)
	loginLimiter := ratelimiter.NewLoginLimiter(
		ratelimiter.NewResourceLimiter(redisRepository, app.Logger),
		app.InternalConfig,
	)
	sessionService := session.NewSessionService(redisRepository, app.InternalConfig, app.Logger)

	// Optional integrations
	var notificationPublisher contracts.NotificationPublisher
	if app.RabbitMQ != nil {
		notificationPublisher, err = notification.NewNotificationPublisher(
			app.RabbitMQ,
			app.Logger,
			app.InternalConfig.Notification.Queue,
		)
		if err != nil {
			return nil, err
		}
	}
	var backupStorage contracts.Storage
	if app.Minio != nil {
		backupStorage = minioStorage.NewMinioStorage(app.Minio)
	}

	// Staff
	userUsecase := users.NewUserUsecase(repositories.User, app.InternalConfig, app.Logger)
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := userUsecase.EnsureInitialManager(seedCtx); err != nil {
		return nil, err
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(repositories.User, sessionService, loginLimiter, app.InternalConfig, app.Logger)

	// Clinical records
	patientUsecase := patients.NewPatientUsecase(repositories.Patient, app.Logger)
	protocolUsecase := protocols.NewProtocolUsecase(repositories.Patient, app.Logger)
	consultationUsecase := consultations.NewConsultationUsecase(
		repositories.Consultation,
		repositories.Patient,
		repositories.User,
		notificationPublisher,
		app.InternalConfig,
		app.Logger,
	)
	dashboardUsecase := dashboard.NewDashboardUsecase(repositories.Patient, repositories.Consultation, app.Logger)

	// Settings
	settingsUsecase := settings.NewSettingsUsecase(
		repositories.User,
		repositories.Patient,
		repositories.Consultation,
		userUsecase,
		lockService,
		backupStorage,
		app.InternalConfig,
		app.Logger,
	)

	routers.SetupRoutes(
		app.Router,
		app.InternalConfig,
		middlewares.NewMiddlewares(app.Logger, authUsecase, app.InternalConfig),
		&routers.Controllers{
			Auth:         controllers.NewAuthController(app.Logger, authUsecase),
			Patient:      controllers.NewPatientController(app.Logger, patientUsecase),
			Staff:        controllers.NewStaffController(app.Logger, userUsecase),
			Protocol:     controllers.NewProtocolController(app.Logger, protocolUsecase),
			Consultation: controllers.NewConsultationController(app.Logger, consultationUsecase),
			Dashboard:    controllers.NewDashboardController(app.Logger, dashboardUsecase),
			Settings:     controllers.NewSettingsController(app.Logger, settingsUsecase),
		},
	)

	if backupStorage == nil || app.InternalConfig.Backup.Schedule == "" {
		return nil, nil
	}
	return backup.NewWorker(app.Logger, app.InternalConfig, lockService, settingsUsecase), nil
}
