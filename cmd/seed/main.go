package main

import (
	"context"
	"time"

	mongoMigration "hotels/internal/migrations/mongo"
	"hotels/internal/seed"
	"hotels/pkg/config"
)

const JobName = "seed"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	cfg.Log.Info("Starting seed job")

	err := run(ctx, cfg)
	cfg.GracefulShutdown()
	if err != nil {
		cfg.Log.Fatal("Seed failed", "error", err)
	}
	cfg.Log.Info("Seed completed successfully")
}

func run(ctx context.Context, cfg *config.Config) error {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)

	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		return err
	}

	store := seed.NewMongoStore(db, cfg.WriteTimeout)
	return seed.NewSeeder(store, cfg.Log).Run(ctx)
}
