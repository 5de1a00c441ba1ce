package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/spf13/cobra"

	"github.com/revguard/cli/internal/analyzer"
	"github.com/revguard/cli/internal/classifier"
	"github.com/revguard/cli/internal/config"
	"github.com/revguard/cli/internal/logger"
	"github.com/revguard/cli/internal/parser"
	"github.com/revguard/cli/internal/rules"
)

// verboseLogger returns a stdout logger when --verbose is set, a no-op
// logger otherwise.
func verboseLogger(cmd *cobra.Command) logger.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return &logger.StdoutLogger{}
	}
	return &logger.NopLogger{}
}

// readInput returns the source text and its origin name. A missing
// argument or "-" reads stdin.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), path, nil
}

// resolveLanguage picks the language tag for an input: the --language
// flag wins; otherwise the language is detected from the file name and
// contents.
func resolveLanguage(cmd *cobra.Command, source, code string) string {
	if forced, _ := cmd.Flags().GetString("language"); forced != "" {
		return strings.ToLower(forced)
	}
	if source == "stdin" {
		// No file name to go on; content-only detection.
		return strings.ToLower(enry.GetLanguage("", []byte(code)))
	}

	lang, safe := enry.GetLanguageByExtension(source)
	if !safe || lang == "" {
		lang = enry.GetLanguage(source, []byte(code))
	}
	return strings.ToLower(lang)
}

// buildEngine assembles the analysis engine from the optional user
// config: embedded catalog plus extra rules, configured smell
// thresholds, and the process-wide classifier.
func buildEngine(cmd *cobra.Command) (*analyzer.Engine, *config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := rules.NewCatalog()
	if err != nil {
		return nil, nil, err
	}
	if err := catalog.Append(cfg.ExtraRules); err != nil {
		return nil, nil, fmt.Errorf("invalid extra rule in config: %w", err)
	}

	engine := analyzer.NewEngine(
		parser.NewParser(),
		rules.NewEngineWithThresholds(catalog, cfg.Thresholds()),
		classifier.Default(),
	)
	return engine, cfg, nil
}

// outputFormat resolves the output format from the flag and config.
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	format, _ := cmd.Flags().GetString("output")
	if !cmd.Flags().Changed("output") && cfg.Output.Format != "" {
		format = cfg.Output.Format
	}
	return format
}
