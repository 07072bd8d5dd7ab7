package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lmartinez/boletin-digital/internal/app/controllers"
	appMigrations "github.com/lmartinez/boletin-digital/internal/app/migrations"
	appRepos "github.com/lmartinez/boletin-digital/internal/app/repositories"
	appRoutes "github.com/lmartinez/boletin-digital/internal/app/routes"
	appServices "github.com/lmartinez/boletin-digital/internal/app/services"
	"github.com/lmartinez/boletin-digital/internal/config"
	"github.com/lmartinez/boletin-digital/internal/db"
	appMiddleware "github.com/lmartinez/boletin-digital/internal/middleware"
	"github.com/lmartinez/boletin-digital/internal/pkg/logger"
	"github.com/lmartinez/boletin-digital/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	CatalogService       appServices.CatalogService
	ReportCardService    appServices.ReportCardService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CatalogController    *appControllers.CatalogController
	ReportCardController *appControllers.ReportCardController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds the initial admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.EnsureInitialAdmin(context.Background(), database.Pool, cfg); err != nil {
		// Seeding failures are logged but do not abort startup
		lgr.Error().Err(err).Msg("Failed to seed initial admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.CourseRepository, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.CourseRepository, lgr)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CourseRepository, deps.Repos.SubjectRepository)
	deps.ReportCardService = appServices.NewReportCardService(deps.Repos.ReportCardRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ReportCardController = appControllers.NewReportCardController(deps.ReportCardService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.CORS.AllowOrigins))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CatalogController,
		deps.ReportCardController,
	)

	return router
}
