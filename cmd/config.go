package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect crowdsync configuration",
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the merged effective settings",
	RunE:  runConfigView,
}

func init() {
	configCmd.AddCommand(configViewCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigView(cmd *cobra.Command, args []string) error {
	s, err := getSettings()
	if err != nil {
		return err
	}

	// Re-marshal for consistent formatting
	out, err := yaml.Marshal(s.AllSettings())
	if err != nil {
		return fmt.Errorf("rendering settings: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
