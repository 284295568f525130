package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/juju/ratelimit"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/cmd"
	httpadapter "github.com/cnrcvk7/Asynchronous-service/internal/adapters/in/http"
	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/postgres"
	"github.com/cnrcvk7/Asynchronous-service/internal/generated/servers"
	"github.com/cnrcvk7/Asynchronous-service/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(gormDB, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:         goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:     goDotEnvVariable("REDIS_PASSWORD"),
		SessionTTL:        goDotEnvVariable("SESSION_TTL"),
		DosingServiceURL:  goDotEnvVariable("DOSING_SERVICE_URL"),
		DosingAccessToken: goDotEnvVariable("DOSING_ACCESS_TOKEN"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the repositories map onto the Conflict taxonomy.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	sessionTTL, err := time.ParseDuration(configs.SessionTTL)
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL: %v", err)
	}

	server := httpadapter.NewServer(httpadapter.ServerDeps{
		CreateSubstanceHandler:  app.CreateCreateSubstanceCommandHandler(),
		UpdateSubstanceHandler:  app.CreateUpdateSubstanceCommandHandler(),
		ArchiveSubstanceHandler: app.CreateArchiveSubstanceCommandHandler(),

		AddSubstanceToDraftHandler:      app.CreateAddSubstanceToDraftCommandHandler(),
		RemoveSubstanceFromDraftHandler: app.CreateRemoveSubstanceFromDraftCommandHandler(),
		ChangeLineWeightHandler:         app.CreateChangeLineWeightCommandHandler(),
		FormMedicineHandler:             app.CreateFormMedicineCommandHandler(),
		DecideMedicineHandler:           app.CreateDecideMedicineCommandHandler(),
		WithdrawMedicineHandler:         app.CreateWithdrawMedicineCommandHandler(),
		RecordDoseHandler:               app.CreateRecordDoseCommandHandler(),

		RegisterAccountHandler: app.CreateRegisterAccountCommandHandler(),
		UpdateAccountHandler:   app.CreateUpdateAccountCommandHandler(),

		SearchSubstancesHandler: app.CreateSearchSubstancesQueryHandler(),
		GetSubstanceHandler:     app.CreateGetSubstanceQueryHandler(),
		SearchMedicinesHandler:  app.CreateSearchMedicinesQueryHandler(),
		GetMedicineHandler:      app.CreateGetMedicineQueryHandler(),

		Accounts:   app.AccountRepository(),
		Sessions:   app.SessionStore(),
		SessionTTL: sessionTTL,
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(httpadapter.RequestLogger(logger))
	metrics := httpadapter.NewHTTPMetrics(prometheus.DefaultRegisterer)
	e.Use(metrics.Middleware())
	auth := httpadapter.NewAuthMiddleware(
		app.SessionStore(), app.AccountRepository(), configs.DosingAccessToken, logger)
	e.Use(auth.Resolve)
	bucket := ratelimit.NewBucketWithRate(5, 10)
	e.Use(httpadapter.RateLimit(bucket, "/api/auth/login", "/api/auth/register"))

	servers.RegisterHandlers(e, server)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, swagger)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
