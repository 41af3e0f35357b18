package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tomsleight/crowdsync/internal/config"
)

var (
	Version  = "dev"
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "crowdsync",
	Short: "Push localization files to a translation management project",
	Long: `Crowdsync uploads new localization files to a Crowdin-compatible
translation project (addfiles) or updates the ones already there
(updatefiles). Settings come from appsettings.json, the environment,
and flags, each layer overriding the last.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return fmt.Errorf("a command is required: updatefiles or addfiles")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Base URL of the translation management API")
	rootCmd.PersistentFlags().String("files", "", "Semicolon-delimited list of localization files")
	cobra.OnInitialize(initSettings)
}

func initSettings() {
	// .env sits below the real environment, the same way appsettings.json
	// sits below both.
	_ = godotenv.Load()

	s, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load configuration: %v\n", err)
		return
	}
	if err := s.BindFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not bind flags: %v\n", err)
	}
	settings = s
}

func getSettings() (*config.Settings, error) {
	if settings == nil {
		return nil, fmt.Errorf("configuration unavailable")
	}
	return settings, nil
}
