package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revguard/cli/internal/parser"
	"github.com/revguard/cli/internal/ui"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract the structural model of a source snippet",
	Long: `Parse extracts functions, classes, imports, and global variables from
the input, along with a complexity score. Languages without a dedicated
extractor degrade to a metrics-only analysis and report it explicitly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	code, source, err := readInput(args)
	if err != nil {
		return err
	}

	language := resolveLanguage(cmd, source, code)
	verboseLogger(cmd).Logf("Parsing %s as %s\n", source, language)
	result := parser.NewParser().Parse(code, language)

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	default:
		fmt.Print(ui.RenderParseResult(&result))
		return nil
	}
}
