// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/chefbyte/v1/internal/application/pantry"
	"github.com/chefbyte/v1/internal/application/planner"
	"github.com/chefbyte/v1/internal/infrastructure/config"
	"github.com/chefbyte/v1/internal/infrastructure/dataset"
	"github.com/chefbyte/v1/internal/infrastructure/http/apiserver"
	gormRepo "github.com/chefbyte/v1/internal/infrastructure/persistence/gorm"
	"github.com/chefbyte/v1/internal/infrastructure/persistence/memory"
	"github.com/chefbyte/v1/internal/infrastructure/persistence/sqlite"
	"github.com/chefbyte/v1/internal/ports/outbound"
	"github.com/chefbyte/v1/pkg/healthcheck"
	"github.com/chefbyte/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	DatasetModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// Health and HTTP modules
	HealthModule,
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	// Provide sugared logger
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the SQLite pantry store
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		dbPath := cfg.Database.Path
		if dbPath == "" {
			dbPath = ":memory:"
		}

		// Set log level based on config
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(dbPath, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		log.Info("Connected to SQLite database",
			zap.String("path", dbPath),
			zap.Bool("in_memory", dbPath == ":memory:"),
		)

		return db, nil
	},
)

// CacheModule provides in-memory response caching
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		log.Info("Using in-memory cache",
			zap.Duration("cleanup_interval", cfg.Cache.CleanupInterval),
		)
		return memory.NewCacheRepository(cfg.Cache.CleanupInterval)
	},
)

// DatasetModule provides the reference catalogs loaded from CSV files
var DatasetModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.RecipeCatalog {
		return dataset.NewRecipeCatalog(cfg.Datasets.RecipesPath, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.NutritionCatalog {
		return dataset.NewNutritionCatalog(cfg.Datasets.NutritionPath, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewPantryRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	planner.NewService,
	pantry.NewService,
)

// HealthModule provides health checks over the service's dependencies
var HealthModule = fx.Provide(
	func(
		cfg *config.Config,
		log *zap.Logger,
		db *gorm.DB,
		recipes outbound.RecipeCatalog,
		nutritionCatalog outbound.NutritionCatalog,
	) (*healthcheck.HealthCheck, error) {
		hc := healthcheck.New(cfg.App.Version, log)

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access SQL database for health checks: %w", err)
		}
		hc.Register("database", healthcheck.NewDatabaseChecker(sqlDB))

		hc.Register("recipes", healthcheck.NewDatasetChecker("recipes", func(ctx context.Context) (int, error) {
			all, err := recipes.All(ctx)
			if err != nil {
				return 0, err
			}
			return len(all), nil
		}))

		hc.Register("nutrition", healthcheck.NewDatasetChecker("nutrition", func(ctx context.Context) (int, error) {
			table, err := nutritionCatalog.Table(ctx)
			if err != nil {
				return 0, err
			}
			return table.Len(), nil
		}))

		return hc, nil
	},
)

// HTTPModule provides the HTTP server and handlers
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting ChefByte application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			// Start HTTP server
			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down ChefByte application")

			// Shutdown HTTP server
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			// Close database connections
			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
