package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Forhemit/StarterClub-sub002/core/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run embedded database migrations",
	}

	for _, sub := range []struct {
		command db.MigrateCommand
		short   string
	}{
		{db.MigrateUp, "Apply all pending migrations"},
		{db.MigrateDown, "Roll back the most recent migration"},
		{db.MigrateStatus, "Print applied and pending migrations"},
	} {
		command := sub.command
		cmd.AddCommand(&cobra.Command{
			Use:   string(command),
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
				if err := a.db.Migrate(ctx, command, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("migrate %s: %w", command, err)
				}
				return nil
			}),
		})
	}

	return cmd
}
