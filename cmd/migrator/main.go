package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/YusovID/refugee-case-service/internal/auth"
	"github.com/YusovID/refugee-case-service/internal/config"
	"github.com/YusovID/refugee-case-service/internal/repository/postgres"
	"github.com/YusovID/refugee-case-service/internal/service"
	"github.com/YusovID/refugee-case-service/pkg/logger/slogpretty"
)

func main() {
	configPath := flag.String("config", "", "path to the config file, defaults to CONFIG_PATH")
	direction := flag.String("direction", string(postgres.Up), "migration direction: up or down")
	adminUsername := flag.String("admin-username", "", "create an administrator with this username after migrating up")
	adminEmail := flag.String("admin-email", "", "email of the administrator created by -admin-username")
	flag.Parse()

	cfg, err := load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dir := postgres.Direction(*direction)
	if flag.NArg() > 0 {
		dir = postgres.Direction(flag.Arg(0))
	}

	if err := postgres.Migrate(cfg.Postgres.DSN(), cfg.Postgres.MigrationsTable, dir); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("migrations %s applied successfully\n", dir)

	if *adminUsername == "" {
		return
	}

	if dir != postgres.Up {
		log.Fatal("-admin-username requires migrating up")
	}

	if err := bootstrapAdmin(context.Background(), cfg, *adminUsername, *adminEmail); err != nil {
		log.Fatalf("failed to create administrator: %v", err)
	}
}

// bootstrapAdmin is the only way to obtain an admin account; POST /register
// accepts ngo and refugee roles only.
func bootstrapAdmin(ctx context.Context, cfg *config.Config, username, email string) error {
	logger := slogpretty.SetupLogger(cfg.Env)

	pg, err := postgres.NewDB(cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	actors := service.NewActorService(pg.DB(), logger, postgres.NewActorRepository(logger))

	admin, err := actors.BootstrapAdmin(ctx, service.RegisterInput{Username: username, Email: email})
	if err != nil {
		return err
	}

	token, expiresAt, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.Issuer).Issue(admin.ID)
	if err != nil {
		return err
	}

	fmt.Printf("administrator %s created (id %s)\ntoken (expires %s): %s\n", admin.Username, admin.ID, expiresAt.Format(time.RFC3339), token)

	return nil
}

func load(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}

	return config.LoadPath(path)
}
