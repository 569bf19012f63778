package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/sequencerrepo"
	"ordering/internal/adapters/out/postgres/settingsrepo"
	"ordering/internal/jobs"

	goredis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	location, err := time.LoadLocation(configs.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", configs.Timezone, err)
	}

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	kafkaWriter := kafka.NewWriter(strings.Split(configs.KafkaHost, ","), configs.KafkaOrdersTopic)
	defer kafkaWriter.Close()

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	defer redisClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, kafkaWriter, redisClient, location)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateExpireStaleOrdersCommandHandler(),
		configs.PreOrderTTL,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           envOrDefault("DB_USER", "postgres"),
		DBPassword:       envOrDefault("DB_PASSWORD", "postgres"),
		DBName:           envOrDefault("DB_NAME", "ordering"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:        envOrDefault("KAFKA_HOST", "localhost:9092"),
		KafkaOrdersTopic: envOrDefault("KAFKA_ORDERS_TOPIC", "order-events"),
		RedisAddr:        envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		Timezone:         envOrDefault("RESTAURANT_TIMEZONE", "Europe/Berlin"),
		PreOrderTTL:      envDurationOrDefault("PRE_ORDER_TTL", 30*time.Minute),
		IdempotencyTTL:   envDurationOrDefault("IDEMPOTENCY_TTL", 24*time.Hour),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return d
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&sequencerrepo.CounterDTO{},
		&settingsrepo.SettingsDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.VariantDTO{},
		&catalogrepo.ModifierGroupDTO{},
		&catalogrepo.ModifierDTO{},
		&catalogrepo.PizzaIngredientDTO{},
	)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
