package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"panel-service/internal/app/config"
	"panel-service/internal/app/delivery/http/controllers"
	"panel-service/internal/app/delivery/http/middlewares"
	"panel-service/internal/app/delivery/http/routers"
	"panel-service/internal/app/drivers/database"
	"panel-service/internal/app/drivers/logger"
	"panel-service/internal/app/drivers/messaging"
	"panel-service/internal/app/drivers/storage"
	"panel-service/internal/app/services/core/avatars"
	"panel-service/internal/app/services/core/geography"
	"panel-service/internal/app/services/core/profiles"
	"panel-service/internal/app/services/core/questionnaires"
	"panel-service/internal/app/services/shared/events"
	"panel-service/internal/app/services/shared/locker"
	redisRepository "panel-service/internal/app/services/shared/redis"
	minioStorage "panel-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are overridden at build time through -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting panel service",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig, internalConfig.MongoDB.PanelDBName),
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig.Minio.BucketName),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, internalConfig.RabbitMQ.QuestionnaireCompletedQueue),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release app resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared services
	redisRepo := redisRepository.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepo, log)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, log)
	if err != nil {
		return err
	}

	// Repositories
	questionnaireResponseRepository := questionnaires.NewQuestionnaireResponseMongoRepository(bootstrap.MongoDB, log)
	err = questionnaireResponseRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	userProfileRepository := profiles.NewUserProfileMongoRepository(bootstrap.MongoDB, log)
	err = userProfileRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	// Usecases
	lookup := geography.Default()
	geographyUsecase := geography.NewGeographyUsecase(
		lookup,
		redisRepo,
		time.Duration(internalConfig.Geography.CacheTTLInMinutes)*time.Minute,
		log,
	)
	profileUsecase := profiles.NewProfileUsecase(userProfileRepository, log)
	avatarUsecase := avatars.NewAvatarUsecase(storageService, internalConfig, log)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(
		questionnaires.DefaultDefinition(),
		lookup,
		questionnaireResponseRepository,
		redisRepo,
		lockerService,
		eventPublisher,
		profileUsecase,
		internalConfig,
		log,
	)

	// Controllers
	geographyController := controllers.NewGeographyController(log, geographyUsecase, internalConfig)
	questionnaireController := controllers.NewQuestionnaireController(log, questionnaireUsecase, internalConfig)
	profileController := controllers.NewProfileController(log, profileUsecase, internalConfig)
	avatarController := controllers.NewAvatarController(log, avatarUsecase, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(log, internalConfig),
		geographyController,
		questionnaireController,
		profileController,
		avatarController,
	)
	return nil
}
