package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"storefront/cmd"
	httpserver "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	staleOrderJob := app.CreateStaleOrderJob()
	if err := staleOrderJob.Start(); err != nil {
		log.Fatalf("Error starting stale order job: %v", err)
	}
	defer staleOrderJob.Stop()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             envOrDefault("DB_USER", "postgres"),
		DBPassword:         envOrDefault("DB_PASSWORD", "postgres"),
		DBName:             envOrDefault("DB_NAME", "storefront"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:          envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		PaymentTimeout:     durationEnv("PAYMENT_TIMEOUT", 30*time.Second),
		PaymentApproveRate: floatEnv("PAYMENT_APPROVE_RATE", 0.9),
		StaleOrderMaxAge:   durationEnv("STALE_ORDER_MAX_AGE", 30*time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		app.CreateAddCartItemCommandHandler(),
		app.CreateUpdateCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetCartSummaryQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
