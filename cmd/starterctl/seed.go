package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Forhemit/StarterClub-sub002/internal/catalog"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}
	cmd.AddCommand(seedCatalogCmd())
	return cmd
}

func seedCatalogCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Upsert modules and their checklist items from a YAML catalog",
		Long: `Upsert modules and their ordered checklist items from a YAML catalog.

Modules are matched by slug. Existing items keep their ids when their title
is unchanged, so business checklist progress survives a re-import.

Examples:
  starterctl seed catalog -f catalog.yaml
  starterctl seed catalog -f catalog.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs, err := catalog.LoadFile(file)
			if err != nil {
				return err
			}

			items := 0
			for _, d := range defs {
				items += len(d.Items)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d modules with %d items from %s\n", len(defs), items, file)

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run - no changes made")
				return nil
			}

			return withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
				n, err := a.services.Catalog().UpsertAll(ctx, defs)
				if err != nil {
					return fmt.Errorf("seeding catalog: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Upserted %d modules\n", n)
				return nil
			})(cmd, nil)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
