package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revguard/cli/internal/parser"
	"github.com/revguard/cli/internal/ui"
)

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:   "metrics [file]",
	Short: "Compute size and shape metrics for a source snippet",
	Long: `Metrics reports line counts by kind, function/class/import counts,
average function length, and the complexity score.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	code, source, err := readInput(args)
	if err != nil {
		return err
	}

	language := resolveLanguage(cmd, source, code)
	verboseLogger(cmd).Logf("Measuring %s as %s\n", source, language)
	metrics := parser.NewParser().Metrics(code, language)

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(metrics)
	default:
		fmt.Print(ui.RenderMetrics(&metrics))
		return nil
	}
}
