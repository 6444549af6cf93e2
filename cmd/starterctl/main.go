// Command starterctl runs operator tasks against the Starter Club database:
// migrations, catalog seeding, checklist resets and admin API keys.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/core/config"
	"github.com/Forhemit/StarterClub-sub002/core/db"
	"github.com/Forhemit/StarterClub-sub002/internal/mailer"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "starterctl",
		Short:         "starterctl - Starter Club operator CLI",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(apikeyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the connections a command needs. Close releases them.
type app struct {
	db        *db.DB
	publisher queue.Publisher
	services  *service.Services
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	if err := id.Init(cfg.NodeID); err != nil {
		return nil, fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	publisher := queue.NewLogPublisher()
	if cfg.Redis.Enabled() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		publisher = queue.NewRedisPublisher(redis.NewClient(opts), cfg.Redis.Stream, 10000)
	}

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		publisher,
		mailer.LogMailer{},
		nil,
		cfg.WorkOS,
		cfg.DashboardURL,
	)

	return &app{
		db:        database,
		publisher: publisher,
		services:  services,
	}, nil
}

func (a *app) Close() {
	if err := a.publisher.Close(); err != nil {
		slog.Warn("failed to close publisher", "error", err)
	}
	a.db.Close()
}

// withApp wraps a RunE body with connection setup and teardown.
func withApp(run func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(ctx, a, cmd, args)
	}
}
