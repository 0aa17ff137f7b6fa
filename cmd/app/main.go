package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/bookingrepo"
	"dispatch/internal/adapters/out/postgres/locationrepo"
	"dispatch/internal/adapters/out/postgres/workerrepo"
	"dispatch/internal/generated/servers"
	"dispatch/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisHost,
		Password: configs.RedisPassword,
	})

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		logger.Error("Failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		app.CreateDispatchPendingCommandHandler(),
		app.CreateRefreshEtasCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaEventsTopic:   goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
		RedisHost:          goDotEnvVariable("REDIS_HOST"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		GoogleMapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		ServiceCenterLat:   goDotEnvFloat("SERVICE_CENTER_LAT"),
		ServiceCenterLng:   goDotEnvFloat("SERVICE_CENTER_LNG"),
		ServiceRadiusMiles: goDotEnvFloat("SERVICE_RADIUS_MILES"),
		AverageSpeedMph:    goDotEnvFloat("AVERAGE_SPEED_MPH"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Error parsing %s as a number: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&bookingrepo.BookingDTO{},
		&workerrepo.WorkerDTO{},
		&assignmentrepo.AssignmentDTO{},
		&locationrepo.SampleDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateBookingCommandHandler(),
		app.CreateCreateWorkerCommandHandler(),
		app.CreateAssignWorkerCommandHandler(),
		app.CreateChangeBookingStatusCommandHandler(),
		app.CreateChangeWorkerStatusCommandHandler(),
		app.CreateIngestLocationCommandHandler(),
		app.CreateGetActiveBookingsQueryHandler(),
		app.CreateGetAvailableWorkersQueryHandler(),
		app.BookingObserver(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
