package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"lumina/internal/assistant"
	"lumina/internal/catalog"
	"lumina/internal/config"
	"lumina/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "LUMINA - Elevated essentials for a thoughtful home",
	Long: `Lumina is a terminal storefront for curated home goods.

Browse the collection by category, build a cart, and ask the personal
shopper (Gemini) for recommendations drawn from the catalogue.

Run without arguments to open the interactive storefront.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		if err := logging.Initialize(cfg.Logging, verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryBoot)
		logger.Debug("config loaded",
			zap.String("path", configPath),
			zap.String("catalog_source", cfg.Catalog.Source),
			zap.String("model", cfg.Assistant.Model),
			zap.Bool("api_key", cfg.Assistant.HasAPIKey()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront(commandContext(cmd))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")

	catalogCmd.Flags().StringVar(&catalogCategory, "category", string(catalog.All), "Only list products in this category")
	catalogCmd.Flags().StringVar(&catalogQuery, "search", "", "Only list products whose name or description contains this text")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns the command's context, or Background for commands
// invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadCatalog resolves the configured catalogue source.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := catalog.Load(ctx, cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("products", c.Len()))
	return c, nil
}

// newGateway wires the assistant to Gemini. Without a usable client the
// gateway still works and answers with its fallback message.
func newGateway(ctx context.Context, c *catalog.Catalog) *assistant.Gateway {
	var gen assistant.Generator
	var opts []assistant.GenAIOption
	if cfg.Assistant.BaseURL != "" {
		opts = append(opts, assistant.WithBaseURL(cfg.Assistant.BaseURL))
	}
	client, err := assistant.NewGenAIGenerator(ctx, cfg.Assistant.APIKey, opts...)
	if err != nil {
		logger.Warn("assistant unavailable", zap.Error(err))
		gen = assistant.Unavailable(err)
	} else {
		gen = client
	}
	return assistant.NewGateway(gen, cfg.Assistant.Model, c.Products())
}

// joinArgs joins command arguments into a single string
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
