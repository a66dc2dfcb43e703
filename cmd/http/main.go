package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/routers"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/database"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/logger"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/messaging"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/storage"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/auth"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/bookings"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/clinics"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/cursorimages"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/doctors"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/testimonials"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/users"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/shared/mailer"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/shared/redis"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/shared/session"
	sharedStorage "github.com/mmhmddd/khobaraalafia-server/internal/app/services/shared/storage"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/shared/translation"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)

	var minioClient *minio.Client
	if internalConfig.Media.Driver == constvars.MediaDriverMinio {
		minioClient = storage.NewMinio(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrapTheApp(
		chiRouter,
		zapLogger,
		driverConfig,
		internalConfig,
		mongoDB,
		redisClient,
		rabbitMQConnection,
		minioClient,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("waiting for pending requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("server exiting")
}

func bootstrapTheApp(
	chiRouter *chi.Mux,
	zapLogger *zap.Logger,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	mongoDB *mongo.Client,
	redisClient *goredis.Client,
	rabbitMQConnection *amqp091.Connection,
	minioClient *minio.Client,
) {
	dbName := driverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository)

	mediaStorage, err := sharedStorage.NewStorage(internalConfig, driverConfig, minioClient)
	if err != nil {
		log.Fatalf("Error initializing media storage: %v", err)
	}

	mailerService, err := mailer.NewMailerService(rabbitMQConnection, internalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		log.Fatalf("Error initializing mailer service: %v", err)
	}

	translator := translation.NewLibreTranslateClient(internalConfig, zapLogger)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(mongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(mongoDB, dbName)
	clinicMongoRepository := clinics.NewClinicMongoRepository(mongoDB, dbName)
	bookingMongoRepository := bookings.NewBookingMongoRepository(mongoDB, dbName)
	testimonialMongoRepository := testimonials.NewTestimonialMongoRepository(mongoDB, dbName)
	cursorImageMongoRepository := cursorimages.NewCursorImageMongoRepository(mongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, mailerService, internalConfig)
	authController := auth.NewAuthController(zapLogger, authUsecase)

	// User
	userUsecase := users.NewUserUsecase(userMongoRepository)
	userController := users.NewUserController(zapLogger, userUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(zapLogger, doctorMongoRepository, clinicMongoRepository, mediaStorage, translator)
	doctorController := doctors.NewDoctorController(zapLogger, doctorUsecase, internalConfig)

	// Clinic
	clinicUsecase := clinics.NewClinicUsecase(zapLogger, clinicMongoRepository, doctorMongoRepository, bookingMongoRepository, mediaStorage, translator, internalConfig)
	clinicController := clinics.NewClinicController(zapLogger, clinicUsecase, internalConfig)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, clinicMongoRepository, userMongoRepository, zapLogger)
	bookingController := bookings.NewBookingController(zapLogger, bookingUsecase)

	// Testimonial
	testimonialUsecase := testimonials.NewTestimonialUsecase(testimonialMongoRepository)
	testimonialController := testimonials.NewTestimonialController(zapLogger, testimonialUsecase)

	// Cursor image
	cursorImageUsecase := cursorimages.NewCursorImageUsecase(cursorImageMongoRepository, mediaStorage, zapLogger)
	cursorImageController := cursorimages.NewCursorImageController(zapLogger, cursorImageUsecase, internalConfig)

	middlewareInstance := &middlewares.Middlewares{
		Log:            zapLogger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		middlewareInstance,
		authController,
		userController,
		doctorController,
		clinicController,
		bookingController,
		testimonialController,
		cursorImageController,
	)
}
