package main

import (
	"fmt"

	"lumina/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd writes the configured catalogue into a SQLite database
var seedCmd = &cobra.Command{
	Use:   "seed [db-path]",
	Short: "Write the catalogue into a SQLite database",
	Long: `Creates (or replaces) the products table in the given SQLite file and
fills it from the configured catalogue source. Point catalog.source at
"sqlite" and catalog.path at the file to browse from it.

Example:
  lumina seed .lumina/catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	c, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	path := args[0]
	if err := catalog.SeedSQLite(ctx, path, c.Products()); err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}
	logger.Info("catalog seeded", zap.String("path", path), zap.Int("products", c.Len()))

	fmt.Printf("Seeded %d products into %s\n", c.Len(), path)
	return nil
}
