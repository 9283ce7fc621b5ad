package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/lexigraph/internal/config"
	"github.com/agenthands/lexigraph/internal/core"
	"github.com/agenthands/lexigraph/internal/driver"
)

var (
	cfgPath string
	verbose bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lexigraph",
	Short: "Relationship queries over a thesaurus graph in Memgraph",
	Long: `lexigraph answers relationship queries over a thesaurus-style graph:
distance-bounded synonym/antonym search, shortest paths between terms,
and similarity via shared edge types two hops away, plus read-only
graph statistics. Run "lexigraph serve" to expose the same operations
over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.LoadOrDefault(cfgPath)
		if err != nil {
			return err
		}
		cfg.ApplyEnv()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// withService connects to the store for the duration of one command.
func withService(fn func(ctx context.Context, svc *core.Service) error) error {
	ctx := context.Background()

	store, err := driver.NewMemgraphStore(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger)
	if err != nil {
		return fmt.Errorf("connecting to graph store: %w", err)
	}
	defer store.Close(ctx)

	svc := core.NewService(store, logger, core.Options{
		MaxTreeDepth:  cfg.Search.MaxTreeDepth,
		FrontierFetch: cfg.Search.FrontierFetch,
	})
	return fn(ctx, svc)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	// No .env file is fine; config and flags cover everything.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config/config.toml", "path to TOML config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
