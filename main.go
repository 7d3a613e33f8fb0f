package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/configs"
	database "fitstudio_backend/internals/databases"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
	"fitstudio_backend/internals/metrics"
	middlewares "fitstudio_backend/internals/middlewares"
	requestLogger "fitstudio_backend/internals/middlewares/logger"
	routes "fitstudio_backend/internals/route"
	"fitstudio_backend/internals/seeds"
)

func main() {
	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(
			configs.LoadEnv,
			newLogger,
			newDatabase,
			newFiberApp,
		),
		accessModule,
		studioModule,
		financeModule,
		insightModule,
		fx.Invoke(
			routes.SetupRoutes,
			startServer,
		),
	).Run()
}

func newLogger(cfg *configs.Config) (*zap.Logger, error) {
	return logger.New(&cfg.Log, logger.DefaultServiceName)
}

// newDatabase opens the pool; migrations and sample data run on start and
// the pool is closed on stop, after the HTTP server hook.
func newDatabase(lc fx.Lifecycle, cfg *configs.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := database.Ping(ctx, db); err != nil {
				return fmt.Errorf("database ping: %w", err)
			}
			if cfg.Database.AutoMigrate {
				if err := database.Migrate(db, log); err != nil {
					return err
				}
			}
			if cfg.SeedSampleData {
				if err := seeds.RunAllSeeds(ctx, db, log); err != nil {
					return fmt.Errorf("seed sample data: %w", err)
				}
			}
			return nil
		},
		OnStop: func(context.Context) error {
			log.Info("closing database pool")
			return database.Close(db)
		},
	})
	return db, nil
}

func newFiberApp(cfg *configs.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.NewErrorHandler(log),
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          cfg.HTTP.RequestTimeout + 15*time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RequestIDMiddleware())
	app.Use(requestLogger.LoggerMiddleware(log.Named("http"), cfg.HTTP.RequestTimeout))
	app.Use(metrics.Middleware())
	app.Use(middlewares.RecoveryMiddleware(log))
	app.Use(middlewares.CorsMiddleware(cfg.HTTP.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.GlobalRateLimiter(cfg.HTTP.RateLimitMax))
	return app
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", "0.0.0.0:"+cfg.Port)
			if err != nil {
				return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
			}
			log.Info("listening", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down http server")
			return app.ShutdownWithContext(ctx)
		},
	})
}
