package main

import (
	"fmt"
	"log/slog"
	"os"

	"shipping/cmd"
	"shipping/internal/adapters/out/postgres/assignmentrepo"
	"shipping/internal/adapters/out/postgres/carrierrepo"
	"shipping/internal/adapters/out/postgres/routerepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load(".env")

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	root := cmd.NewCompositionRoot(config, db, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

// openDatabase connects to PostgreSQL and migrates the schema.
// TranslateError maps unique-index violations to gorm.ErrDuplicatedKey,
// which the repositories rely on for conflict detection.
func openDatabase(config cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TransitionDTO{},
		&assignmentrepo.AssignmentDTO{},
		&carrierrepo.CarrierDTO{},
		&carrierrepo.VehicleDTO{},
		&routerepo.RouteDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
