package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workforce/cmd"
	httpadapter "workforce/internal/adapters/in/http"
	"workforce/internal/adapters/out/postgres/applicationrepo"
	"workforce/internal/adapters/out/postgres/auditrepo"
	"workforce/internal/adapters/out/postgres/jobrepo"
	"workforce/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := root.Close(); err != nil {
			logger.Error("failed to close composition root", "error", err)
		}
	}()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, relying on environment", "error", err)
	}

	return cmd.Config{
		HTTPPort:                 envOrDefault("HTTP_PORT", "8080"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   envOrDefault("DB_PORT", "5432"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                envOrDefault("DB_SSLMODE", "disable"),
		AllowDelegatedPosting:    envOrDefault("ALLOW_DELEGATED_POSTING", "true") != "false",
		SummaryReconcileSchedule: envOrDefault("SUMMARY_RECONCILE_SCHEDULE", "0 */5 * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// openDatabase connects through lib/pq so driver errors carry SQLSTATE codes
// the error taxonomy translation relies on.
func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&jobrepo.JobDTO{},
		&applicationrepo.ApplicationDTO{},
		&applicationrepo.SummaryDTO{},
		&auditrepo.AuditLogDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return gormDB, nil
}

func startWebServer(root cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpadapter.NewServer(
		root.CreateCreateUserCommandHandler(),
		root.CreateCreateJobCommandHandler(),
		root.CreateApplyToJobCommandHandler(),
		root.CreateDeleteUserCommandHandler(),
		root.CreateDeleteJobCommandHandler(),
		root.CreateListJobsQueryHandler(),
		root.CreateJobsByCellQueryHandler(),
		root.CreateAuditLogQueryHandler(),
		root.CreateJobSummaryQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down web server", "error", err)
	}
}
