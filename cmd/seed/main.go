// Command seed populates the database with sample member data for
// development and demos. Safe to run repeatedly; existing members are
// skipped.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jogjadev/members-api/internal/config"
	"github.com/jogjadev/members-api/internal/database"
	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/repository"
	"github.com/jogjadev/members-api/internal/seed"
	"github.com/jogjadev/members-api/internal/service"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Connect(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := db.AutoMigrate(&model.Member{}); err != nil {
		slog.Error("failed to migrate schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	members := service.NewMemberService(service.MemberServiceConfig{
		Repo: repository.NewMemberRepository(db),
	})

	res, err := seed.Load(context.Background(), members)
	if err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seeding complete",
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
	)
}
