package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pairdraw/pairdraw/pairdraw"
	"github.com/pairdraw/pairdraw/pairdraw/database"
	"github.com/pairdraw/pairdraw/pairdraw/logger"
	"github.com/pairdraw/pairdraw/pairdraw/migration"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data", "data", "directory with mongodump .bson files")
	mongoURI := flag.String("mongo-uri", "", "migrate from a live MongoDB instead of dump files")
	mongoDB := flag.String("mongo-db", "pairdraw", "legacy MongoDB database name")
	batchSize := flag.Int("batch", 500, "insert batch size")
	flag.Parse()

	customHandler := logger.NewHandler("PairDraw-Migrate")
	slog.SetDefault(slog.New(customHandler))

	cfg, err := pairdraw.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
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

	migrator := migration.NewMigrator(db.BunDB(), *dataDir)
	migrator.SetBatchSize(*batchSize)

	if *mongoURI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
		if err != nil {
			slog.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer client.Disconnect(ctx)
		migrator.UseMongo(client, *mongoDB)
	}

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully")
}
