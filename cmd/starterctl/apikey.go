package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func apikeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage admin API keys",
	}
	cmd.AddCommand(apikeyCreateCmd())
	cmd.AddCommand(apikeyListCmd())
	cmd.AddCommand(apikeyRevokeCmd())
	return cmd
}

func apikeyCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a new admin API key. The token is printed once.",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			key, token, err := a.services.APIKeys().Create(ctx, name, nil)
			if err != nil {
				return fmt.Errorf("creating api key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created API key %d (%s)\n\n  %s\n\nStore it now, it cannot be shown again.\n", key.ID, key.Name, token)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "key name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func apikeyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admin API keys",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			keys, err := a.services.APIKeys().List(ctx)
			if err != nil {
				return fmt.Errorf("listing api keys: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPREFIX\tLAST USED\tREVOKED")
			for _, k := range keys {
				lastUsed, revoked := "-", "-"
				if k.LastUsedAt != nil {
					lastUsed = k.LastUsedAt.Format("2006-01-02 15:04")
				}
				if k.RevokedAt != nil {
					revoked = k.RevokedAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", k.ID, k.Name, k.Prefix, lastUsed, revoked)
			}
			return w.Flush()
		}),
	}
}

func apikeyRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [id]",
		Short: "Revoke an admin API key",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			keyID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := a.services.APIKeys().Revoke(ctx, keyID); err != nil {
				return fmt.Errorf("revoking api key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Revoked API key %d\n", keyID)
			return nil
		}),
	}
}
