package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/covenantlabs/covenant/internal/contract"
	"github.com/covenantlabs/covenant/internal/extract"
	"github.com/covenantlabs/covenant/internal/output"
)

// failureMessage is the fixed message printed when extraction fails for any
// reason. Details go to the log, not stdout.
const failureMessage = "Failed to extract contract info."

var (
	extractProvider string
	extractModel    string
	useSample       bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract structured metadata from contract text",
	Long: `Extract reads contract text from a file, from stdin ("-"), or from the
embedded sample agreement (--sample), sends it to the configured LLM
provider, and prints the validated analysis to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readContractText(args)
		if err != nil {
			return err
		}

		cfg, registry, err := loadConfigAndRegistry()
		if err != nil {
			return err
		}

		providerName := extractProvider
		if providerName == "" {
			providerName = cfg.Defaults.LLMProvider
		}
		client, err := registry.GetLLM(providerName)
		if err != nil {
			return err
		}

		model := extractModel
		if model == "" {
			if pc, ok := cfg.GetLLMProvider(providerName); ok {
				model = pc.Model
			}
		}

		extractor := extract.New(client, extract.Options{
			Model:       model,
			Temperature: &cfg.Defaults.Temperature,
			MaxTokens:   cfg.Defaults.MaxTokens,
			Logger:      slog.Default(),
		})

		analysis, err := extractor.Extract(cmd.Context(), text)
		if err != nil {
			// Failures are already logged with detail by the
			// extractor; the user gets the fixed message.
			fmt.Fprintln(os.Stderr, failureMessage)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return err
		}

		return output.Print(analysis)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider to use (default from config)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "model override")
	extractCmd.Flags().BoolVar(&useSample, "sample", false, "use the embedded sample agreement instead of a file")
}

// readContractText resolves the input source: --sample, a file path, or
// stdin when the path is "-" or absent.
func readContractText(args []string) (string, error) {
	if useSample {
		return contract.SampleText, nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
