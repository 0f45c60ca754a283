package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/zivora/internal/api"
	"github.com/terraincognita07/zivora/internal/cli"
	"github.com/terraincognita07/zivora/internal/config"
	"github.com/terraincognita07/zivora/internal/db"
	"github.com/terraincognita07/zivora/internal/logger"
	"go.uber.org/zap"
)

const (
	commandServe      = "serve"
	commandIssueToken = "issue-token"
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "zivora: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	command, rest := splitCommand(args)

	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	switch command {
	case commandServe:
		return serve(cfg)
	case commandIssueToken:
		return cli.RunIssueTokenCommand(cfg.Auth.SecretKey, rest, os.Stdout, time.Now())
	default:
		return fmt.Errorf("unknown command %q (expected %s or %s)", command, commandServe, commandIssueToken)
	}
}

// splitCommand defaults to serve when no command is given.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return commandServe, args
	}
	return args[0], args[1:]
}

func serve(cfg *config.Config) error {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer func() { _ = log.Sync() }()

	location := loadLocation(cfg.Timezone, log)
	time.Local = location

	database, err := db.Open(db.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		URL:    cfg.Database.URL,
		Logger: logger.Named(log, "db"),
	})
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.Auth.SecretKey, log, nil)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(cfg, handler, log)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("zivora listening",
		zap.String("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(cfg *config.Config, handler *api.Handler, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Zivora",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(api.RequestLogger(log))
	app.Use(compress.New())
	app.Use(cors.New(corsMiddlewareConfig(cfg.Server.CORSAllowOrigins)))

	api.RegisterRoutes(app, handler)
	return app
}

func corsMiddlewareConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}
}

func loadLocation(name string, log *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}
