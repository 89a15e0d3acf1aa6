package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bistro/cmd"
	_ "bistro/docs"
	httpin "bistro/internal/adapters/in/http"
	"bistro/internal/adapters/out/pdf"
	"bistro/internal/adapters/out/postgres/courierrepo"
	"bistro/internal/adapters/out/postgres/orderrepo"
	"bistro/internal/adapters/out/postgres/payoutrepo"
	"bistro/internal/adapters/out/postgres/zonerepo"
	"bistro/internal/generated/servers"
	"bistro/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoswagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := jobs.NewJobManager(app.CreateAssignCourierCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		OpenAPIPath: goDotEnvVariable("OPENAPI_PATH"),
	}
	if config.OpenAPIPath == "" {
		config.OpenAPIPath = "api/openapi.yml"
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

// mustConnectDB opens the database through the pq driver and hands the
// connection to gorm. The repositories inspect pq error codes to translate
// unique constraint violations, so the underlying driver must be pq.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error initializing gorm: %v", err)
	}

	err = gormDB.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&payoutrepo.PayoutDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	spec, err := httpin.LoadOpenAPISpec(configs.OpenAPIPath)
	if err != nil {
		log.Fatalf("Error loading openapi contract: %v", err)
	}
	httpin.RegisterOpenAPIRoute(e, spec)

	server := httpin.NewServer(
		app.CreateCreateZoneCommandHandler(),
		app.CreateSetZoneActivationCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateUpdateCourierLocationCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRecordPayoutCommandHandler(),
		app.CreateGetActiveZonesQueryHandler(),
		app.CreateResolveZoneQueryHandler(),
		app.CreateGetAllCouriersQueryHandler(),
		app.CreateGetCourierBalanceQueryHandler(),
		app.CreateGetCourierPayoutsQueryHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetOrderInvoiceQueryHandler(),
		pdf.NewInvoiceRenderer(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
