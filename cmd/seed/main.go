package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"sportszone/internal/config"
	"sportszone/internal/db"
	"sportszone/internal/logger"
	"sportszone/internal/repository"
	"sportszone/internal/repository/mongorepo"
	"sportszone/internal/seed"
)

// Seeds the configured store from SEED_FILE (a path or an http(s) URL) and
// promotes SEED_ADMIN_EMAIL to admin when set.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var repos *repository.Set
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatal("connect mysql", zap.Error(err))
		}
		if err := gormDB.AutoMigrate(repository.Models()...); err != nil {
			log.Fatal("auto-migrate", zap.Error(err))
		}
		repos = repository.NewGormSet(gormDB)
	default:
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal("connect mongo", zap.Error(err))
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		database := client.Database(cfg.MongoDatabase)
		if err := mongorepo.EnsureIndexes(ctx, database); err != nil {
			log.Fatal("ensure indexes", zap.Error(err))
		}
		if n, err := mongorepo.NormalizeLegacy(ctx, database); err != nil {
			log.Fatal("normalize legacy classes", zap.Error(err))
		} else if n > 0 {
			log.Info("normalized legacy class counters", zap.Int64("classes", n))
		}
		repos = mongorepo.New(database)
	}
	log.Info("connected to store", zap.String("driver", cfg.StoreDriver))

	seeder := seed.New(repos, log)

	if source := os.Getenv("SEED_FILE"); source != "" {
		log.Info("loading fixture", zap.String("source", source))
		fixture, err := seed.Load(ctx, source)
		if err != nil {
			log.Fatal("load fixture", zap.Error(err))
		}

		report, err := seeder.Run(ctx, fixture)
		if err != nil {
			log.Fatal("seed", zap.Error(err))
		}
		log.Info("seed completed",
			zap.Int("users_created", report.UsersCreated),
			zap.Int("users_existing", report.UsersUpdated),
			zap.Int("classes_created", report.ClassesCreated),
			zap.Int("classes_skipped", report.ClassesSkipped),
			zap.Int("reviews_created", report.ReviewsCreated),
		)
	}

	if email := os.Getenv("SEED_ADMIN_EMAIL"); email != "" {
		if err := seeder.PromoteAdmin(ctx, email, os.Getenv("SEED_ADMIN_NAME")); err != nil {
			log.Fatal("promote admin", zap.String("email", email), zap.Error(err))
		}
		log.Info("admin ready", zap.String("email", email))
	}
}
