package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "revguard",
	Short: "Static code-analysis and defect-risk-scoring engine",
	Long: `Revguard analyzes source snippets to extract their structure, compute
complexity and size metrics, match them against a curated anti-pattern
rule catalog, and fuse the results with a statistical classifier into a
single bounded defect-risk score.

Input is a file path or stdin; the language is detected from the file
name and contents unless forced with --language.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a revguard config file")
	rootCmd.PersistentFlags().StringP("language", "l", "", "force the source language instead of detecting it")
}
