package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/rs/cors"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/config"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/database"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/health"
	kaviarhttp "github.com/usbtecnok/kaviar-admin-os/internal/pkg/http"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/middleware"
	natspkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/nats"
	nrpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/newrelic"
	nsqpkg "github.com/usbtecnok/kaviar-admin-os/internal/pkg/nsq"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/server"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/view"
	authGateway "github.com/usbtecnok/kaviar-admin-os/services/auth/gateway"
	authHandler "github.com/usbtecnok/kaviar-admin-os/services/auth/handler"
	authRepository "github.com/usbtecnok/kaviar-admin-os/services/auth/repository"
	authUsecase "github.com/usbtecnok/kaviar-admin-os/services/auth/usecase"
	comboGateway "github.com/usbtecnok/kaviar-admin-os/services/combos/gateway"
	comboHandler "github.com/usbtecnok/kaviar-admin-os/services/combos/handler"
	comboRepository "github.com/usbtecnok/kaviar-admin-os/services/combos/repository"
	comboUsecase "github.com/usbtecnok/kaviar-admin-os/services/combos/usecase"
	driverGateway "github.com/usbtecnok/kaviar-admin-os/services/drivers/gateway"
	driverHandler "github.com/usbtecnok/kaviar-admin-os/services/drivers/handler"
	driverRepository "github.com/usbtecnok/kaviar-admin-os/services/drivers/repository"
	driverUsecase "github.com/usbtecnok/kaviar-admin-os/services/drivers/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "kaviar-admin"
	configPath := config.GetEnv("CONFIG_PATH", "config/admin.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("kaviar_api", configs.Kaviar.APIBase()),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService()

	// Session store: redis when configured, in-process otherwise
	sessionTTL := time.Duration(configs.Session.TTL) * time.Hour
	var store session.Store
	var redisClient *database.RedisClient
	if configs.Session.Store == "redis" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		shutdown.Register(func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.PingChecker(redisClient))
		store = session.NewRedisStore(redisClient.GetClient(), sessionTTL)
	} else {
		store = session.NewMemoryStore(sessionTTL)
	}

	// Audit events are optional; NATS wins over NSQ, without either they are dropped
	var auditPub natspkg.Publisher
	switch {
	case configs.NATS.URL != "":
		natsClient, err := natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		shutdown.Register(func(context.Context) error {
			natsClient.Close()
			return nil
		})
		healthService.AddChecker("nats", health.ConnectedChecker(natsClient.IsConnected))
		auditPub = natsClient
	case configs.NSQ.Address != "":
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		shutdown.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.PingChecker(producer))
		auditPub = producer
	}
	audit := natspkg.NewAuditPublisher(auditPub)

	// Kaviar API client
	apiClient := kaviarhttp.NewClient(kaviarhttp.Config{
		BaseURL: configs.Kaviar.APIBase(),
		Timeout: time.Duration(configs.Kaviar.Timeout) * time.Second,
	})
	healthService.AddChecker("kaviar_api", health.PingChecker(apiClient))

	// Initialize repositories
	authRepo := authRepository.NewAuthRepo(store)
	comboRepo := comboRepository.NewComboRepo(store)
	driverRepo := driverRepository.NewDriverRepo(store)

	// Initialize gateways
	authGW := authGateway.NewAuthGW(apiClient)
	comboGW := comboGateway.NewComboGW(apiClient, audit)
	driverGW := driverGateway.NewDriverGW(apiClient, audit)

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(authRepo, authGW)
	comboUC := comboUsecase.NewComboUC(comboRepo, comboGW)
	driverUC := driverUsecase.NewDriverUC(driverRepo, driverGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	renderer, err := view.NewRenderer()
	if err != nil {
		zapLogger.Fatal("Failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = view.HTTPErrorHandler

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, healthService)

	// without redis the limiter lets every attempt through
	var limiterClient *redis.Client
	if redisClient != nil {
		limiterClient = redisClient.GetClient()
	}
	loginLimit := middleware.LoginRateLimiter(
		configs.Session.LoginRateLimit,
		time.Duration(configs.Session.LoginRateWindow)*time.Second,
		limiterClient,
	)

	pages := e.Group("", middleware.AuthGuard(store, configs.Session.CookieName))
	api := e.Group("/api",
		echo.WrapMiddleware(cors.New(cors.Options{
			AllowedOrigins:   configs.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET"},
			AllowCredentials: true,
		}).Handler),
		middleware.APIAuthGuard(store, configs.Session.CookieName),
	)

	// Register service routes
	authHandler.NewHandler(authUC, store, configs.Session).RegisterRoutes(e, pages, loginLimit)
	comboHandler.NewHandler(comboUC).RegisterRoutes(pages, api)
	driverHandler.NewHandler(driverUC).RegisterRoutes(pages, api)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port).
		WithShutdownTimeout(time.Duration(configs.Server.ShutdownTimeout) * time.Second).
		WithShutdownManager(shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
