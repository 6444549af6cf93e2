package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset business data",
	}
	cmd.AddCommand(resetChecklistCmd())
	cmd.AddCommand(resetBusinessCmd())
	return cmd
}

func resetChecklistCmd() *cobra.Command {
	var businessID int64

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Delete every checklist row of a business",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			deleted, err := a.services.Checklists().Reset(ctx, businessID)
			if err != nil {
				return fmt.Errorf("resetting checklist: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d checklist rows for business %d\n", deleted, businessID)
			return nil
		}),
	}

	cmd.Flags().Int64Var(&businessID, "business", 0, "business id")
	_ = cmd.MarkFlagRequired("business")

	return cmd
}

func resetBusinessCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "business",
		Short: "Delete a user's business with its installs and checklist",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			existed, err := a.services.Onboarding().ResetUserBusiness(ctx, userID)
			if err != nil {
				return fmt.Errorf("resetting business: %w", err)
			}
			if !existed {
				fmt.Fprintf(cmd.OutOrStdout(), "User %d has no business\n", userID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted business of user %d\n", userID)
			return nil
		}),
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
