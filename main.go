package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/pairdraw/pairdraw/backend/config"
	"github.com/pairdraw/pairdraw/backend/handlers"
	"github.com/pairdraw/pairdraw/backend/middleware"
	"github.com/pairdraw/pairdraw/pairdraw"
	"github.com/pairdraw/pairdraw/pairdraw/database"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
	"github.com/pairdraw/pairdraw/pairdraw/logger"
	"github.com/pairdraw/pairdraw/pairdraw/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	customHandler := logger.NewHandler("PairDraw")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting PairDraw API",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("type", "sys"))

	cfg, err := pairdraw.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	db, err := database.New(ctx, database.DBConfig{
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Database:     cfg.DB.Database,
		PoolSize:     cfg.DB.PoolSize,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  cfg.DB.MaxLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Database ready",
		slog.Int("pool_conns", int(db.GetPool().Stat().TotalConns())))

	users := repositories.NewUserRepository(db.BunDB())
	couples := repositories.NewCoupleRepository(db.BunDB())
	requests := repositories.NewDrawRequestRepository(db.BunDB())
	drawLogs := repositories.NewDrawLogRepository(db.BunDB())
	userCards := repositories.NewUserCardRepository(db.BunDB())
	customCards := repositories.NewCustomCardRepository(db.BunDB())
	disabledCards := repositories.NewDisabledCardRepository(db.BunDB())

	store := gacha.NewSQLStore(db.BunDB(), couples, requests, customCards, disabledCards)
	resolver := gacha.NewResolver(store)
	consent := gacha.NewConsentManager(store)
	executor := gacha.NewExecutor(store, resolver, consent)

	var spaces *services.SpacesService
	if cfg.Spaces.Key != "" {
		spaces, err = services.NewSpacesService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.AvatarRoot,
		)
		if err != nil {
			slog.Error("Failed to initialize Spaces", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		slog.Warn("Spaces not configured, avatar upload disabled")
	}

	webCfg := config.NewWebAppConfig(cfg, os.Getenv("PAIRDRAW_DEBUG") != "")

	app := fiber.New(fiber.Config{
		AppName:      "PairDraw API",
		ServerHeader: "PairDraw",
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(middleware.CORSMiddleware(webCfg.AllowedOrigins))
	app.Use(middleware.LoggingMiddleware())

	webApp := &handlers.WebApp{
		Config:        webCfg,
		DB:            db,
		Users:         users,
		Couples:       couples,
		Requests:      requests,
		DrawLogs:      drawLogs,
		UserCards:     userCards,
		CustomCards:   customCards,
		DisabledCards: disabledCards,
		Consent:       consent,
		Executor:      executor,
		Spaces:        spaces,
		Version:       version,
		Commit:        commit,
	}
	webApp.SetupRoutes(app)

	group, groupCtx := errgroup.WithContext(context.Background())

	group.Go(func() error {
		slog.Info("Starting server", slog.String("address", webCfg.Addr))
		return app.Listen(webCfg.Addr)
	})

	group.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sig:
			slog.Info("Shutdown signal received")
		case <-groupCtx.Done():
			return groupCtx.Err()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		slog.Error("Server stopped", slog.String("error", err.Error()))
	}
	slog.Info("Shutdown complete")
}
