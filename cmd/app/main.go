package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pizzeria/cmd"
	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres/customerrepo"
	"pizzeria/internal/adapters/out/postgres/discountrepo"
	"pizzeria/internal/adapters/out/postgres/driverrepo"
	"pizzeria/internal/adapters/out/postgres/menurepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/personrepo"
	"pizzeria/internal/core/domain/model/staff"
	"pizzeria/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := loadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := openDatabase(config)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db)

	jobManager := jobs.NewJobManager(root.CreateAdvanceDeliveriesCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCheckoutCommandHandler(),
		root.CreateRegisterDriverCommandHandler(),
		root.CreateGetMenuQueryHandler(),
		root.CreateGetActiveOrdersQueryHandler(),
		root.CreateGetDeliveryBoardQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	server.RegisterRoutes(e)

	logger.Info("Starting HTTP server", "port", config.HTTPPort)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

func loadConfig() (cmd.Config, error) {
	// A missing .env file is fine in containers; the environment wins.
	_ = godotenv.Load(".env")

	cooldown, err := envDuration("DRIVER_COOLDOWN", staff.DefaultCooldown)
	if err != nil {
		return cmd.Config{}, err
	}

	outForDeliveryAfter, err := envDuration("STATUS_OUT_FOR_DELIVERY_AFTER", cmd.DefaultStatusOutForDeliveryAfter)
	if err != nil {
		return cmd.Config{}, err
	}

	deliveredAfter, err := envDuration("STATUS_DELIVERED_AFTER", cmd.DefaultStatusDeliveredAfter)
	if err != nil {
		return cmd.Config{}, err
	}

	return cmd.Config{
		HTTPPort:                  envOr("HTTP_PORT", "8080"),
		DBHost:                    envOr("DB_HOST", "localhost"),
		DBPort:                    envOr("DB_PORT", "5432"),
		DBUser:                    envOr("DB_USER", "postgres"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    envOr("DB_NAME", "pizzeria"),
		DBSslMode:                 envOr("DB_SSLMODE", "disable"),
		DriverCooldown:            cooldown,
		StatusOutForDeliveryAfter: outForDeliveryAfter,
		StatusDeliveredAfter:      deliveredAfter,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %w", key, err)
	}
	return d, nil
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
	)
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&personrepo.PersonDTO{},
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&menurepo.IngredientDTO{},
		&menurepo.PizzaDTO{},
		&menurepo.DrinkDTO{},
		&menurepo.DessertDTO{},
		&discountrepo.CodeDTO{},
	)
}
