package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/traits"
	"github.com/aretw0/traits/internal/logging"
	"github.com/aretw0/traits/pkg/observability"
	"github.com/aretw0/traits/pkg/rng"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "traits",
	Short:         "Traits samples per-individual trait values for synthetic households",
	Long:          `Traits assigns trait values (constant or gamma distributed) to the occupants of household occupancy arrays, using a catalog of trait definitions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "traits.yaml", "Trait catalog file (YAML, or JSON by extension)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks one and logs it)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
}

// loadCatalog builds the catalog named by the persistent flags.
// The seeded source is locked so the catalog may be sampled concurrently.
func loadCatalog(cmd *cobra.Command, metrics *observability.Metrics) (*traits.Catalog, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("file")
	seed, _ := cmd.Flags().GetUint64("seed")
	level, _ := cmd.Flags().GetString("log-level")

	logger := logging.New(level, cmd.ErrOrStderr())
	src, used := rng.NewSource(seed)
	logger.Debug("random source ready", "seed", used)

	cat, err := traits.Load(path,
		traits.WithSource(rng.NewLocked(src)),
		traits.WithLogger(logger),
		traits.WithMetrics(metrics),
	)
	if err != nil {
		return nil, nil, err
	}
	return cat, logger, nil
}
