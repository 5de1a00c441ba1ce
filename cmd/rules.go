package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/revguard/cli/internal/ui"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the anti-pattern rule catalog",
	Long: `Rules lists the loaded anti-pattern catalog, including any extra rules
from the config file. With --language, only the rules that would apply
to that language are shown (its own rules plus the general set).`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	engine, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	catalog := engine.Rules()
	listed := catalog.Rules()
	if language, _ := cmd.Flags().GetString("language"); language != "" {
		listed = catalog.ForLanguage(language)
	}

	switch outputFormat(cmd, cfg) {
	case "json":
		type ruleJSON struct {
			ID       string `json:"id"`
			Language string `json:"language"`
			Pattern  string `json:"pattern"`
			Message  string `json:"message"`
			Severity string `json:"severity"`
		}
		out := make([]ruleJSON, 0, len(listed))
		for _, rule := range listed {
			out = append(out, ruleJSON{
				ID:       rule.ID,
				Language: rule.Language,
				Pattern:  rule.Pattern,
				Message:  rule.Message,
				Severity: string(rule.Severity),
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]interface{}{
			"version": catalog.Version(),
			"rules":   out,
		})
	default:
		fmt.Print(ui.RenderRules(listed))
		return nil
	}
}
