package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	ledgerUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/ledger"
	transferUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/transfer"
	userUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/user"

	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/handler"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/routes"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/database"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/database/migration"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/hash"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/logger"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/repository"
	timeProvider "github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/time"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/token"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() {
		_ = appLogger.Flush()
	}()

	startingBalanceCents, err := entity.ParseAmount(cfg.Account.StartingBalance)
	if err != nil {
		log.Fatalf("Invalid account.startingBalance %q: %v", cfg.Account.StartingBalance, err)
	}

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Migrations occasionally collide with a concurrent deploy; transient
	// failures are retried with backoff
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	err = database.RetryOnTransientError(migrateCtx, database.DefaultRetryConfig(), func() error {
		return dbManager.MigrationManager().MigrateAll()
	}, appLogger)
	cancelMigrate()
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Backfill any enumerated accounts missing for existing users
	seeder := migration.NewAccountSeeder(dbManager.DB(), appLogger, tp)
	if err := seeder.EnsureAccounts(context.Background()); err != nil {
		appLogger.Error("Failed to backfill accounts", map[string]any{
			"error": err.Error(),
		})
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	accountRepo := repository.NewAccountRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	transferRepo := repository.NewTransferRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Core adapters
	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := token.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Use cases
	userService := userUseCase.NewService(uow, userRepo, hasher, tp, appLogger, startingBalanceCents, cfg.Auth.AdminSetupKey)
	ledgerService := ledgerUseCase.NewService(uow, accountRepo, transactionRepo, tp, appLogger)
	transferService := transferUseCase.NewService(uow, userRepo, accountRepo, transferRepo, tp, appLogger)

	// HTTP surface
	handlers := routes.Handlers{
		Auth:        handler.NewAuthHandler(userService, tokens, appLogger),
		Account:     handler.NewAccountHandler(ledgerService, appLogger),
		Transaction: handler.NewTransactionHandler(ledgerService, appLogger),
		Transfer:    handler.NewTransferHandler(transferService, appLogger),
		Admin:       handler.NewAdminHandler(userService, appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, tokens, userRepo, appLogger, routes.Health(func(c *gin.Context) error {
		return dbManager.Ping(c.Request.Context())
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or DGB_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or DGB_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or DGB_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or DGB_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or DGB_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Auth.AdminSetupKey == "" {
			warnings = append(warnings, "auth.adminSetupKey is empty; the admin promotion endpoint is disabled")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: production configuration: %v", warnings)
		}
	}

	return nil
}
