package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	_ "sportszone/docs" // swagger docs

	"sportszone/internal/auth"
	"sportszone/internal/cache"
	"sportszone/internal/config"
	"sportszone/internal/db"
	"sportszone/internal/gateway"
	"sportszone/internal/handler"
	"sportszone/internal/logger"
	"sportszone/internal/repository"
	"sportszone/internal/repository/mongorepo"
	"sportszone/internal/router"
	"sportszone/internal/service"
)

// @title Sports Zone API
// @version 1.0
// @description Course enrollment API: users and roles, classes, selections, payments and reviews.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// prices and amounts are numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, storeCheck, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log)
	defer func() { _ = cacheClient.Close() }()
	roleCache := auth.NewRoleCache(cacheClient, cfg.RoleCacheTTL)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	if cfg.PaymentSecretKey == "" {
		log.Warn("PAYMENT_SECRET_KEY is empty; payment intents will be rejected by the gateway")
	}
	gw := gateway.NewStripe(cfg.PaymentSecretKey, log)

	// Initialize services
	authService := service.NewAuthService(jwtService, log)
	userService := service.NewUserService(repos.Users, repos.Classes, roleCache, log)
	classService := service.NewClassService(repos.Classes, log)
	selectionService := service.NewSelectionService(repos.Selections, repos.Classes, log)
	paymentService := service.NewPaymentService(repos.Payments, repos.Classes, repos.Selections, gw, service.PaymentOptions{
		Currency:               cfg.PaymentCurrency,
		VerifyPayments:         cfg.VerifyPayments,
		ClearSelectionOnEnroll: cfg.ClearSelectionOnEnroll,
	}, log)
	reviewService := service.NewReviewService(repos.Reviews)

	health := handler.NewHealthHandler(map[string]handler.Check{"store": storeCheck}).
		WithOptional("cache", cacheClient.Ping)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, log, jwtService, userService, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Class:     handler.NewClassHandler(classService),
		Selection: handler.NewSelectionHandler(selectionService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Review:    handler.NewReviewHandler(reviewService),
		Health:    health,
	})

	log.Info("swagger documentation available", zap.String("url", swaggerURL(cfg.SwaggerHost)))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}

// openStore connects the configured backend and returns its repositories, a
// readiness check and a close function.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repository.Set, handler.Check, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := gormDB.AutoMigrate(repository.Models()...); err != nil {
			return nil, nil, nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := sqlDB.Close(); err != nil {
				log.Warn("close mysql", zap.Error(err))
			}
		}
		return repository.NewGormSet(gormDB), sqlDB.PingContext, closeFn, nil

	case config.StoreMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		client, err := db.NewMongo(connectCtx, cfg.MongoURI)
		if err != nil {
			return nil, nil, nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := mongorepo.EnsureIndexes(connectCtx, database); err != nil {
			// existing data may violate a unique index; serve anyway
			log.Warn("ensure indexes", zap.Error(err))
		}
		if n, err := mongorepo.NormalizeLegacy(connectCtx, database); err != nil {
			log.Warn("normalize legacy classes", zap.Error(err))
		} else if n > 0 {
			log.Info("normalized legacy class counters", zap.Int64("classes", n))
		}
		check := func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("close mongo", zap.Error(err))
			}
		}
		return mongorepo.New(database), check, closeFn, nil

	default:
		return nil, nil, nil, errors.New("unknown STORE_DRIVER " + cfg.StoreDriver)
	}
}

func swaggerURL(host string) string {
	switch {
	case host == "":
		return "http://localhost:5000/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return strings.TrimRight(host, "/") + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
