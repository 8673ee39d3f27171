// Package main реализует точку входа сервиса мемов.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httpapi "memhub/internal/memes/adapters/http"
	"memhub/internal/memes/adapters/http/auth"
	"memhub/internal/memes/adapters/postgres"
	redisadapter "memhub/internal/memes/adapters/redis"
	"memhub/internal/memes/adapters/services"
	"memhub/internal/memes/adapters/storage"
	"memhub/internal/memes/app"
	"memhub/internal/memes/config"
	"memhub/internal/memes/db"
	"memhub/internal/memes/ports/repositories"
	redisdb "memhub/pkg/db/redis"
	"memhub/pkg/logger"
	"memhub/pkg/resilience"
	"memhub/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "MEMES_LOGGER_MODE"
	EnvLoggerLevel = "MEMES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrCloseRedis           = "failed to close Redis connection"
	ErrInitStorage          = "failed to initialize image storage"
	ErrInitServices         = "failed to initialize services"
	ErrBootstrapAdmin       = "failed to create base admin"
	ErrSetupRouter          = "failed to set up HTTP router"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "memes service started"
	LogServiceShutdownDone = "memes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitStorage         = "initializing image storage"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, cfg.Postgres.MigrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}
		defer func() {
			log.Info(ctx, LogClosingDB)
			database.Close(ctx)
		}()

		redisClient, err := redisdb.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			exitCode = 1
			return
		}
		defer func() {
			if err := redisClient.Close(ctx); err != nil {
				log.Warn(ctx, ErrCloseRedis, zap.Error(err))
			}
		}()

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		memRepo := repoFactory.MemRepository()
		userRepo := repoFactory.UserRepository()
		denylist := redisadapter.NewTokenDenylist(redisClient.RawClient())

		log.Info(ctx, LogInitStorage, zap.String("backend", cfg.Storage.Backend))
		imageRepo, err := newImageRepository(ctx, &cfg.Storage, redisClient)
		if err != nil {
			log.Error(ctx, ErrInitStorage, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		serviceFactory, err := services.NewServiceFactory(services.FactoryConfig{
			AccessToken:    services.TokenKey{Secret: []byte(cfg.JWT.AccessSecret), TTL: cfg.JWT.GetAccessTokenTTL()},
			RefreshToken:   services.TokenKey{Secret: []byte(cfg.JWT.RefreshSecret), TTL: cfg.JWT.GetRefreshTokenTTL()},
			HashAlgorithm:  cfg.Password.Algorithm,
			HashSalt:       cfg.Password.Salt,
			HashIterations: cfg.Password.Iterations,
		})
		if err != nil {
			log.Error(ctx, ErrInitServices, zap.Error(err))
			exitCode = 1
			return
		}
		passwordService := serviceFactory.PasswordService()
		tokenService := serviceFactory.TokenService()
		ids := serviceFactory.IDGenerator()

		log.Info(ctx, LogInitUseCases)
		memUseCase := app.NewMemUseCase(memRepo, imageRepo, ids)
		userUseCase := app.NewUserUseCase(userRepo, passwordService, ids)
		authUseCase := app.NewAuthUseCase(userRepo, denylist, passwordService, tokenService, ids)

		if err := app.EnsureBaseAdmin(ctx, userRepo, passwordService, ids, app.BaseAdmin{
			Login:     cfg.Admin.Login,
			Password:  cfg.Admin.Password,
			Email:     cfg.Admin.Email,
			FirstName: cfg.Admin.FirstName,
		}); err != nil {
			log.Error(ctx, ErrBootstrapAdmin, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitHTTPServer)
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		server := httpapi.NewApp(fiber.Config{
			AppName:      "memhub",
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		if err := httpapi.SetupRouter(server, httpapi.Deps{
			Auth:  authUseCase,
			Users: userUseCase,
			Memes: memUseCase,
			Health: map[string]httpapi.Pinger{
				"postgres": database,
				"redis":    redisClient,
			},
			Registry: registry,
			Cookie:   auth.CookieConfig{Path: "/api/auth", Secure: cfg.HTTP.CookieSecure},
		}); err != nil {
			log.Error(ctx, ErrSetupRouter, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newImageRepository выбирает хранилище изображений по конфигурации.
func newImageRepository(ctx context.Context, cfg *config.StorageConfig, redisClient *redisdb.Client) (repositories.ImageRepository, error) {
	switch cfg.Backend {
	case config.StorageRedis:
		return redisadapter.NewImageRepository(redisClient.RawClient()), nil
	case config.StorageS3:
		client, err := storage.NewMinioClient(storage.S3Options{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Region:    cfg.Region,
			Secure:    cfg.Secure,
		})
		if err != nil {
			return nil, err
		}
		policy := resilience.NewPolicy("s3", cfg.GetRetryConfig(), cfg.GetCircuitBreakerConfig())
		repo := storage.NewImageRepository(client, cfg.Bucket, cfg.Region, policy)
		if err := repo.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
