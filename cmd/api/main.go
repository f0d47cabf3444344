package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	cardUseCase "github.com/cardworks/cashcard-service/internal/domain/usecase/card"
	identityUseCase "github.com/cardworks/cashcard-service/internal/domain/usecase/identity"

	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/handler"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/routes"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/database"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/database/migration"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/logger"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/cardworks/cashcard-service/internal/infrastructure/adapter/time"
	"github.com/cardworks/cashcard-service/internal/infrastructure/config"

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

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	dbConfig := &database.Config{
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
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		LogLevel:        cfg.Logger.Level,
	}
	if err := dbConfig.Validate(); err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	migrationMgr := migration.NewManager(db, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	cardRepo := repository.NewCardRepository(db, tp, appLogger)
	credentialRepo := repository.NewCredentialRepository(db, appLogger)

	if cfg.Auth.SeedCredentials {
		if err := migration.SeedCredentials(context.Background(), credentialRepo, tp, appLogger, cfg.Auth.BcryptCost); err != nil {
			appLogger.Error("Failed to seed credentials", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	cardService := cardUseCase.NewService(cardRepo, tp, appLogger, cardUseCase.PagePolicy{
		DefaultSize: cfg.Pagination.DefaultPageSize,
		MaxSize:     cfg.Pagination.MaxPageSize,
	})
	resolver := identityUseCase.NewResolver(credentialRepo, appLogger)

	cardHandler := handler.NewCardHandler(cardService, appLogger)
	adminHandler := handler.NewAdminHandler(cardService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, cardHandler, adminHandler, resolver, appLogger)

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

// validateConfig ensures required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or CC_DB_HOST)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or CC_DB_USERNAME)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or CC_DB_NAME)")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}
	if cfg.Pagination.DefaultPageSize <= 0 {
		missing = append(missing, "pagination.defaultPageSize")
	}
	if cfg.Pagination.MaxPageSize < cfg.Pagination.DefaultPageSize {
		return fmt.Errorf("pagination.maxPageSize must be at least the default page size")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
