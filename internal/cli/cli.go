// Package cli implements the one-shot (non-interactive) mode: read text,
// perform one anonymize request, print or save the result.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/store"
	"github.com/studiowebux/anonctl/internal/view"
)

// RunOptions contains options for running one anonymization in CLI mode
type RunOptions struct {
	FilePath     string // input file; empty means stdin
	ServerURL    string
	Timeout      time.Duration
	OutputFormat string // text, json, yaml
	SavePath     string // write the output here instead of stdout
	DocumentID   string
}

// HealthOptions contains options for the health probe
type HealthOptions struct {
	ServerURL string
	Timeout   time.Duration
}

// isInteractive checks if stdin is a terminal (not piped)
func isInteractive() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// readInput returns the text to anonymize from the file argument or stdin.
func readInput(filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	if isInteractive() {
		return "", fmt.Errorf("no input text provided (pipe it or provide a file)")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(data), nil
}

// Run executes one anonymization in CLI mode
func Run(opts RunOptions) error {
	text, err := readInput(opts.FilePath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input text is empty, nothing to anonymize")
	}

	client := api.NewClient(opts.ServerURL, opts.Timeout)
	result, err := client.Anonymize(context.Background(), text, opts.DocumentID)
	if err != nil {
		return fmt.Errorf("anonymization failed: %w", err)
	}

	output, err := FormatResult(result, opts.OutputFormat)
	if err != nil {
		return err
	}

	if opts.SavePath != "" {
		if err := os.WriteFile(opts.SavePath, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to save output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", opts.SavePath)
		return nil
	}

	fmt.Print(output)
	return nil
}

// Health probes the service and reports its status.
func Health(opts HealthOptions) error {
	client := api.NewClient(opts.ServerURL, opts.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	status, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	fmt.Printf("status:       %s\n", status.Status)
	fmt.Printf("version:      %s\n", status.Version)
	fmt.Printf("llm provider: %s\n", status.LLMProvider)
	return nil
}

// FormatResult renders a result in the requested output format. The text
// format reuses the same tab projections the TUI renders from.
func FormatResult(result *api.AnonymizeResult, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode result as JSON: %w", err)
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("failed to encode result as YAML: %w", err)
		}
		return string(data), nil

	case "", "text":
		return formatText(result), nil

	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// formatText renders the plain-text report.
func formatText(result *api.AnonymizeResult) string {
	snap := store.Snapshot{Result: result}
	var b strings.Builder

	section(&b, "Anonymized Text")
	b.WriteString(view.ProjectAnonymized(snap).Text)
	b.WriteString("\n\n")

	section(&b, "Replacements")
	replacements := view.ProjectReplacements(snap)
	if replacements.EmptyNotice != "" {
		b.WriteString(replacements.EmptyNotice)
		b.WriteString("\n")
	}
	for _, row := range replacements.Rows {
		b.WriteString(fmt.Sprintf("%s -> %s\n", row.Original, row.Replacement))
	}
	if replacements.ShowIssues {
		b.WriteString("\nValidation issues (detected but not anonymized):\n")
		for _, issue := range replacements.Issues {
			b.WriteString(fmt.Sprintf("- %s: %s (%s)\n", issue.IdentifierType, issue.Value, issue.LocationHint))
		}
	}
	b.WriteString("\n")

	section(&b, "Risk Assessment")
	risk := view.ProjectRisk(snap)
	b.WriteString(fmt.Sprintf("risk level:     %s\n", risk.Assessment.RiskLevel))
	b.WriteString(fmt.Sprintf("overall score:  %d/100\n", risk.Assessment.OverallScore))
	b.WriteString(fmt.Sprintf("gdpr compliant: %t\n", risk.Assessment.GDPRCompliant))
	b.WriteString(fmt.Sprintf("confidence:     %s\n", risk.Confidence))
	b.WriteString(fmt.Sprintf("reasoning:      %s\n", risk.Assessment.Reasoning))
	b.WriteString("\n")

	section(&b, "Insights")
	insights := view.ProjectInsights(snap)
	b.WriteString(fmt.Sprintf("success:               %t\n", insights.Success))
	b.WriteString(fmt.Sprintf("iterations:            %d\n", insights.Iterations))
	b.WriteString(fmt.Sprintf("llm provider:          %s\n", insights.Provider))
	b.WriteString(fmt.Sprintf("llm model:             %s\n", insights.Model))
	b.WriteString(fmt.Sprintf("validation confidence: %s\n", insights.ValidationConfidence))
	b.WriteString(fmt.Sprintf("risk confidence:       %s\n", insights.RiskConfidence))

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(title)))
	b.WriteString("\n")
}
