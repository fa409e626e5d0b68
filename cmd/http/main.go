package main

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/app/delivery/http/routers"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/drivers/logger"
	"dentaflow-service/internal/app/drivers/mailer"
	"dentaflow-service/internal/app/drivers/messaging"
	"dentaflow-service/internal/app/drivers/storage"
	"dentaflow-service/internal/app/services/core/clinics"
	"dentaflow-service/internal/app/services/core/invoices"
	"dentaflow-service/internal/app/services/core/manual_payments"
	"dentaflow-service/internal/app/services/core/medical_images"
	"dentaflow-service/internal/app/services/core/patients"
	"dentaflow-service/internal/app/services/core/prescriptions"
	"dentaflow-service/internal/app/services/core/subscriptions"
	"dentaflow-service/internal/app/services/shared/ai_analysis"
	"dentaflow-service/internal/app/services/shared/locker"
	mailerService "dentaflow-service/internal/app/services/shared/mailer"
	"dentaflow-service/internal/app/services/shared/payment_gateway"
	"dentaflow-service/internal/app/services/shared/pdf"
	"dentaflow-service/internal/app/services/shared/ratelimiter"
	redisRepository "dentaflow-service/internal/app/services/shared/redis"
	"dentaflow-service/internal/app/services/shared/smtp"
	minioStorage "dentaflow-service/internal/app/services/shared/storage"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
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

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		PostgresDB:     database.NewPostgresDB(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		bootstrap.Logger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Shared services
	redisRepo := redisRepository.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepo, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepo, bootstrap.Logger)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.PublicBaseUrl)
	paymentGatewayService := payment_gateway.NewPaymentGatewayService(internalConfig, bootstrap.Logger)
	aiAnalysisService := ai_analysis.NewAIAnalysisService(internalConfig, bootstrap.Logger)
	unicodeFont, err := pdf.LoadUnicodeFont(internalConfig.PDF.UnicodeFontPath)
	if err != nil {
		return err
	}
	documentRenderer := pdf.NewPDFRenderer(unicodeFont)
	transactor := database.NewPostgresTransactor(bootstrap.PostgresDB)

	// Email: publish on the mailer queue, worker delivers over SMTP
	messaging.DeclareQueue(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue)
	mailService, err := mailerService.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	smtpService := smtp.NewSmtpService(mailer.NewSMTPClient(bootstrap.DriverConfig))
	emailWorker := mailerService.NewEmailWorker(smtpService, bootstrap.Logger)
	stopWorker, err := emailWorker.Start(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		return err
	}
	bootstrap.WorkerStop = stopWorker

	// Repositories
	clinicRepository := clinics.NewClinicPostgresRepository(bootstrap.PostgresDB)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB)
	subscriptionRepository := subscriptions.NewSubscriptionPostgresRepository(bootstrap.PostgresDB)
	paymentWebhookEventRepository := subscriptions.NewPaymentWebhookEventMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	manualPaymentRepository := manual_payments.NewManualPaymentPostgresRepository(bootstrap.PostgresDB)
	invoiceRepository := invoices.NewInvoicePostgresRepository(bootstrap.PostgresDB)
	prescriptionRepository := prescriptions.NewPrescriptionPostgresRepository(bootstrap.PostgresDB)
	medicalImageRepository := medical_images.NewMedicalImagePostgresRepository(bootstrap.PostgresDB)

	// Usecases
	clinicUsecase := clinics.NewClinicUsecase(clinicRepository, storageService, internalConfig, bootstrap.Logger)
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(
		subscriptionRepository,
		paymentWebhookEventRepository,
		clinicUsecase,
		paymentGatewayService,
		lockerService,
		transactor,
		internalConfig,
		bootstrap.Logger,
	)
	manualPaymentUsecase := manual_payments.NewManualPaymentUsecase(
		manualPaymentRepository,
		subscriptionUsecase,
		clinicUsecase,
		lockerService,
		mailService,
		transactor,
		internalConfig,
		bootstrap.Logger,
	)
	invoiceUsecase := invoices.NewInvoiceUsecase(
		invoiceRepository,
		patientRepository,
		clinicRepository,
		documentRenderer,
		transactor,
		internalConfig,
		bootstrap.Logger,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionRepository,
		patientRepository,
		clinicRepository,
		documentRenderer,
		transactor,
		bootstrap.Logger,
	)
	medicalImageUsecase := medical_images.NewMedicalImageUsecase(
		medicalImageRepository,
		patientRepository,
		storageService,
		aiAnalysisService,
		resourceLimiter,
		internalConfig,
		bootstrap.Logger,
	)

	// Controllers
	healthController := controllers.NewHealthController(bootstrap.Logger, internalConfig.App.Version, healthChecks(bootstrap.PostgresDB, redisRepo, bootstrap.MongoDB))
	clinicController := controllers.NewClinicController(bootstrap.Logger, clinicUsecase)
	subscriptionController := controllers.NewSubscriptionController(bootstrap.Logger, subscriptionUsecase)
	manualPaymentController := controllers.NewManualPaymentController(bootstrap.Logger, manualPaymentUsecase)
	invoiceController := controllers.NewInvoiceController(bootstrap.Logger, invoiceUsecase)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)
	medicalImageController := controllers.NewMedicalImageController(bootstrap.Logger, medicalImageUsecase)
	emailController := controllers.NewEmailController(bootstrap.Logger, mailService)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(bootstrap.Logger, internalConfig),
		healthController,
		clinicController,
		subscriptionController,
		manualPaymentController,
		invoiceController,
		prescriptionController,
		medicalImageController,
		emailController,
	)
	return nil
}

func healthChecks(db *sql.DB, redisRepo contracts.RedisRepository, mongoClient *mongo.Client) map[string]controllers.HealthCheck {
	return map[string]controllers.HealthCheck{
		"postgres": db.PingContext,
		"redis":    redisRepo.Ping,
		"mongodb": func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}
}
