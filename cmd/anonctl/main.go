package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/anonctl/internal/cli"
	"github.com/studiowebux/anonctl/internal/config"
	"github.com/studiowebux/anonctl/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "anonctl",
	Short: "Terminal client for the GDPR text-anonymization service",
	Long: `anonctl is a terminal client for an AI-based text-anonymization service.

Run without arguments to start the interactive TUI: enter text, anonymize it,
and browse the result across five tabs (original, anonymized, replacements,
risk assessment, insights).

The service address is resolved from, in order of precedence: the --server
flag, the ` + config.EnvServerURL + ` environment variable, a file given with
--env-file, ~/.anonctl/config.jsonc, and finally ` + config.DefaultServerURL + `.

Examples:
  anonctl                              # Start interactive TUI
  anonctl run letter.txt               # Anonymize a file, print a text report
  cat letter.txt | anonctl run -o json # Anonymize stdin, print raw JSON
  anonctl run letter.txt -s out.json -o json
  anonctl health                       # Check the service is reachable`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		settings, err := config.Resolve(flagServer, flagEnvFile)
		if err != nil {
			return err
		}
		return tui.Run(settings, version)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Anonymize one text in non-interactive mode",
	Long: `Anonymize the given file (or stdin when no file is provided) and print
the result. Output formats: text (default), json, yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		settings, err := config.Resolve(flagServer, flagEnvFile)
		if err != nil {
			return err
		}

		filePath := ""
		if len(args) > 0 {
			filePath = args[0]
		}
		return cli.Run(cli.RunOptions{
			FilePath:     filePath,
			ServerURL:    settings.ServerURL,
			Timeout:      settings.Timeout,
			OutputFormat: flagOutput,
			SavePath:     flagSave,
			DocumentID:   flagDocumentID,
		})
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the anonymization service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		settings, err := config.Resolve(flagServer, flagEnvFile)
		if err != nil {
			return err
		}
		return cli.Health(cli.HealthOptions{
			ServerURL: settings.ServerURL,
			Timeout:   settings.Timeout,
		})
	},
}

// Flags
var (
	flagServer     string
	flagEnvFile    string
	flagOutput     string
	flagSave       string
	flagDocumentID string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Anonymization service base URL")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load environment variables from file")

	runCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")
	runCmd.Flags().StringVarP(&flagSave, "save", "s", "", "Save output to file")
	runCmd.Flags().StringVarP(&flagDocumentID, "document-id", "d", "", "Document identifier sent with the request")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(healthCmd)
}
