package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/cobra"

	"github.com/covenantlabs/covenant/internal/output"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Inspect configured LLM providers",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List enabled LLM providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := loadConfigAndRegistry()
		if err != nil {
			return err
		}

		type entry struct {
			Name    string `json:"name" yaml:"name"`
			Type    string `json:"type" yaml:"type"`
			Model   string `json:"model" yaml:"model"`
			Default bool   `json:"default" yaml:"default"`
		}
		entries := make([]entry, 0)
		for _, name := range registry.ListLLM() {
			pc, _ := cfg.GetLLMProvider(name)
			entries = append(entries, entry{
				Name:    name,
				Type:    pc.Type,
				Model:   pc.Model,
				Default: name == cfg.Defaults.LLMProvider,
			})
		}
		return output.Print(entries)
	},
}

var providersCheckCmd = &cobra.Command{
	Use:   "check [name]",
	Short: "Verify a provider is reachable with the configured credentials",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := loadConfigAndRegistry()
		if err != nil {
			return err
		}

		name := cfg.Defaults.LLMProvider
		if len(args) > 0 {
			name = args[0]
		}
		client, err := registry.GetLLM(name)
		if err != nil {
			return err
		}

		// Diagnostic pings may retry; extraction calls never do.
		err = retry.Do(
			func() error { return client.HealthCheck(cmd.Context()) },
			retry.Context(cmd.Context()),
			retry.Attempts(3),
			retry.Delay(time.Second),
			retry.DelayType(retry.BackOffDelay),
			retry.OnRetry(func(n uint, err error) {
				slog.Warn("provider health check failed, retrying", "provider", name, "attempt", n+1, "error", err)
			}),
		)
		if err != nil {
			return fmt.Errorf("provider %s unhealthy: %w", name, err)
		}

		fmt.Printf("provider %s: ok\n", name)
		return nil
	},
}

func init() {
	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersCheckCmd)
}
