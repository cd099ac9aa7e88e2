package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/covenantlabs/covenant/internal/config"
	"github.com/covenantlabs/covenant/internal/output"
	"github.com/covenantlabs/covenant/internal/providers"
	"github.com/covenantlabs/covenant/version"
)

var (
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "covenant",
	Short: "Contract metadata extraction powered by LLM structured outputs",
	Long: `Covenant extracts typed metadata from contract text: parties, licensed
products, services, payment milestones, penalties, SLAs, and deliverables.

The contract text is handed to an LLM provider together with a JSON schema
describing the target shape; the response is validated locally against the
same schema before anything is printed.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.covenant/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfigAndRegistry wires config into a provider registry.
func loadConfigAndRegistry() (*config.Config, *providers.Registry, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	registry := providers.BuildFromConfig(cfg.ToProviderRegistryConfig(slog.Default()), slog.Default())
	return cfg, registry, nil
}
