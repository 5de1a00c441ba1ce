package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revguard/cli/internal/domain"
	"github.com/revguard/cli/internal/ui"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full defect analysis on a source snippet",
	Long: `Analyze matches the input against the anti-pattern rule catalog,
detects code smells, estimates a statistical defect probability, and
fuses everything into a single bounded risk score with a three-level
classification.

Example usage:
  revguard analyze main.py              # Analyze a file
  cat main.py | revguard analyze        # Analyze stdin
  revguard analyze -l python snippet    # Force the language
  revguard analyze --output json main.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("metrics", "m", false, "include code metrics in the output")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	code, source, err := readInput(args)
	if err != nil {
		return err
	}

	engine, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	language := resolveLanguage(cmd, source, code)
	verboseLogger(cmd).Logf("Analyzing %s as %s\n", source, language)

	var prediction domain.DefectPrediction
	var metrics domain.Metrics
	withMetrics, _ := cmd.Flags().GetBool("metrics")

	runErr := ui.RunSpinner(cmd.Context(), "Analyzing code...", func() error {
		prediction = engine.Analyze(code, language)
		if withMetrics {
			metrics = engine.Metrics(code, language)
		}
		return nil
	})
	if runErr != nil {
		return runErr
	}

	summary := engine.Summarize(prediction.FlaggedSections)

	switch outputFormat(cmd, cfg) {
	case "json":
		result := map[string]interface{}{
			"language":   language,
			"prediction": prediction,
			"summary":    summary,
		}
		if withMetrics {
			result["metrics"] = metrics
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	default:
		fmt.Print(ui.RenderPrediction(&prediction, summary))
		if withMetrics {
			fmt.Println()
			fmt.Print(ui.RenderMetrics(&metrics))
		}
		return nil
	}
}
