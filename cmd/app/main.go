package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"carrybee/cmd"
	_ "carrybee/docs"
	httpin "carrybee/internal/adapters/in/http"
	"carrybee/internal/adapters/out/notify"
	"carrybee/internal/adapters/out/postgres/merchantrepo"
	"carrybee/internal/adapters/out/postgres/offerrepo"
	"carrybee/internal/adapters/out/postgres/orderrepo"
	"carrybee/internal/adapters/out/postgres/rolerepo"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/services"
	"carrybee/internal/dispatch"
	"carrybee/internal/generated/servers"
	"carrybee/internal/jobs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	tariff := buildTariff(configs)
	linkBuilder := buildPaymentLinkBuilder(configs)

	watermillLogger := watermill.NewSlogLogger(logger)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisher := dispatch.NewPublisher(pubSub)

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		log.Fatalf("Failed to create message router: %v", err)
	}

	notifier := notify.NewHTTPNotifier(configs.NotifyURL)
	worker := dispatch.NewNotificationWorker(notifier, logger)
	worker.Register(router, pubSub)

	routerCtx, stopRouter := context.WithCancel(context.Background())
	go func() {
		if runErr := router.Run(routerCtx); runErr != nil {
			logger.Error("message router stopped", "error", runErr)
		}
	}()
	<-router.Running()

	app := cmd.NewCompositionRoot(configs, gormDB, tariff, linkBuilder, publisher, logger)

	jobManager := jobs.NewJobManager(app.CreateExpireOffersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := buildWebServer(&app)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("web server stopped", "error", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}

	jobManager.StopAll()
	stopRouter()
	if err := router.Close(); err != nil {
		logger.Error("message router close failed", "error", err)
	}
}

func buildWebServer(app *cmd.CompositionRoot) *echo.Echo {
	server := httpin.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetCheckoutQuoteQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGate(),
		app.PaymentLinkBuilder(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	return e
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&merchantrepo.MerchantDTO{},
		&rolerepo.RoleAssignmentDTO{},
		&offerrepo.OfferDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func buildTariff(configs cmd.Config) services.Tariff {
	ratePerKm := moneyOrDefault(configs.TariffRatePerKm, services.DefaultRatePerKm)
	minimumFee := moneyOrDefault(configs.TariffMinimumFee, services.DefaultMinimumFee)
	flatFee := moneyOrDefault(configs.TariffFlatFee, services.DefaultFlatFee)

	tariff, err := services.NewTariff(ratePerKm, minimumFee, flatFee)
	if err != nil {
		log.Fatalf("Invalid tariff configuration: %v", err)
	}
	return tariff
}

func buildPaymentLinkBuilder(configs cmd.Config) services.PaymentLinkBuilder {
	currency := configs.UpiCurrency
	if currency == "" {
		currency = "INR"
	}

	linkBuilder, err := services.NewPaymentLinkBuilder(configs.UpiPayeeID, configs.UpiPayeeName, currency)
	if err != nil {
		log.Fatalf("Invalid UPI configuration: %v", err)
	}
	return linkBuilder
}

func moneyOrDefault(value string, fallback kernel.Money) kernel.Money {
	if value == "" {
		return fallback
	}

	minorUnits, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Invalid money amount %q: %v", value, err)
	}

	amount, err := kernel.NewMoney(minorUnits)
	if err != nil {
		log.Fatalf("Invalid money amount %q: %v", value, err)
	}
	return amount
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		NotifyURL:        goDotEnvVariable("NOTIFY_URL"),
		UpiPayeeID:       goDotEnvVariable("UPI_PAYEE_ID"),
		UpiPayeeName:     goDotEnvVariable("UPI_PAYEE_NAME"),
		UpiCurrency:      goDotEnvVariable("UPI_CURRENCY"),
		TariffRatePerKm:  goDotEnvVariable("TARIFF_RATE_PER_KM"),
		TariffMinimumFee: goDotEnvVariable("TARIFF_MINIMUM_FEE"),
		TariffFlatFee:    goDotEnvVariable("TARIFF_FLAT_FEE"),
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
