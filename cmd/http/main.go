package main

import (
	"context"
	"log"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/delivery/http/controllers"
	"orca-service/internal/app/delivery/http/middlewares"
	"orca-service/internal/app/delivery/http/routers"
	"orca-service/internal/app/drivers/database"
	"orca-service/internal/app/drivers/logger"
	"orca-service/internal/app/drivers/messaging"
	"orca-service/internal/app/drivers/storage"
	"orca-service/internal/app/services/core/clinicians"
	"orca-service/internal/app/services/core/clinics"
	"orca-service/internal/app/services/core/patients"
	"orca-service/internal/app/services/core/prescriptions"
	"orca-service/internal/app/services/core/reports"
	"orca-service/internal/app/services/core/roles"
	"orca-service/internal/app/services/core/users"
	"orca-service/internal/app/services/shared/audit"
	"orca-service/internal/app/services/shared/cookiesession"
	"orca-service/internal/app/services/shared/locker"
	"orca-service/internal/app/services/shared/ratelimiter"
	"orca-service/internal/app/services/shared/redis"
	minioStorage "orca-service/internal/app/services/shared/storage"
	tidepoolAuth "orca-service/internal/app/services/tidepool/auth"
	"orca-service/internal/app/services/tidepool/client"
	tidepoolClinicians "orca-service/internal/app/services/tidepool/clinicians"
	tidepoolClinics "orca-service/internal/app/services/tidepool/clinics"
	tidepoolExports "orca-service/internal/app/services/tidepool/exports"
	tidepoolPatients "orca-service/internal/app/services/tidepool/patients"
	tidepoolPrescriptions "orca-service/internal/app/services/tidepool/prescriptions"
	tidepoolUsers "orca-service/internal/app/services/tidepool/users"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	reportLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	// Tidepool API
	tokenProvider := tidepoolAuth.NewServerTokenProvider(tidepoolAuth.ServerTokenConfig{
		BaseUrl:      internalConfig.Tidepool.BaseUrl,
		ServerName:   internalConfig.Tidepool.ServerName,
		ServerSecret: internalConfig.Tidepool.ServerSecret,
		TokenTTL:     time.Duration(internalConfig.Tidepool.TokenTTLInMinutes) * time.Minute,
		HTTPTimeout:  time.Duration(internalConfig.Tidepool.HTTPTimeoutInSeconds) * time.Second,
	}, redisRepository, log)
	tidepoolClient := client.NewClient(client.Config{
		BaseUrl:              internalConfig.Tidepool.BaseUrl,
		Timeout:              time.Duration(internalConfig.Tidepool.HTTPTimeoutInSeconds) * time.Second,
		MaxRequestsPerSecond: internalConfig.Tidepool.MaxRequestsPerSecond,
	}, tokenProvider, log)
	userClient := tidepoolUsers.NewUserTidepoolClient(tidepoolClient, log)
	clinicClient := tidepoolClinics.NewClinicTidepoolClient(tidepoolClient, log)
	clinicianClient := tidepoolClinicians.NewClinicianTidepoolClient(tidepoolClient, log)
	patientClient := tidepoolPatients.NewPatientTidepoolClient(tidepoolClient, log)
	prescriptionClient := tidepoolPrescriptions.NewPrescriptionTidepoolClient(tidepoolClient, log)
	exportClient := tidepoolExports.NewExportTidepoolClient(tidepoolClient, log)

	// Audit
	auditPublisher, err := audit.NewAuditPublisher(bootstrap.RabbitMQ, internalConfig.Audit.Queue, log)
	if err != nil {
		return err
	}

	// Report archive
	var reportStorage contracts.Storage
	if bootstrap.Minio != nil {
		reportStorage = minioStorage.NewMinioStorage(bootstrap.Minio, log)
	}
	reportArchive := reports.NewReportArchive(reportStorage, internalConfig, log)
	sweeper := reports.NewSweeper(log, internalConfig, lockerService, reportArchive)
	sweeper.Start(context.Background())
	bootstrap.SweeperStop = sweeper.Stop

	// Sessions
	sessionStores, err := cookiesession.NewSessionStores(
		internalConfig.Session.Secret,
		time.Duration(internalConfig.Session.MaxAgeInDays)*24*time.Hour,
		internalConfig.Session.SecureCookie,
		log,
	)
	if err != nil {
		return err
	}
	sessionService := cookiesession.NewSessionService(sessionStores, internalConfig.Session.RecentItemsLimit, log)

	// Authorization
	authorizationService, err := roles.NewCasbinRoleUsecase(internalConfig.Auth.EditorGroups, log)
	if err != nil {
		return err
	}

	// Usecases
	userUsecase := users.NewUserUsecase(userClient, clinicClient, prescriptionClient, exportClient, auditPublisher, log)
	clinicUsecase := clinics.NewClinicUsecase(clinicClient, log)
	clinicianUsecase := clinicians.NewClinicianUsecase(userClient, clinicClient, clinicianClient, auditPublisher, log)
	patientUsecase := patients.NewPatientUsecase(userClient, clinicClient, patientClient, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(clinicClient, prescriptionClient, log)
	reportUsecase := reports.NewReportUsecase(clinicClient, clinicianClient, patientClient, reportArchive, auditPublisher, internalConfig, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authorizationService, reportLimiter, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		log,
		middlewares,
		controllers.NewHealthController(log, redisRepository),
		controllers.NewHomeController(log, sessionService),
		controllers.NewUserController(log, userUsecase, sessionService, internalConfig),
		controllers.NewClinicController(log, clinicUsecase, sessionService, internalConfig),
		controllers.NewClinicianController(log, clinicianUsecase, sessionService, internalConfig),
		controllers.NewPatientController(log, patientUsecase, sessionService, internalConfig),
		controllers.NewPrescriptionController(log, prescriptionUsecase, internalConfig),
		controllers.NewReportController(log, reportUsecase, internalConfig),
	)
	return nil
}
