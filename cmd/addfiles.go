package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomsleight/crowdsync/internal/crowdin"
	"github.com/tomsleight/crowdsync/internal/fileset"
)

var addFilesCmd = &cobra.Command{
	Use:   "addfiles",
	Short: "Upload new localization files to the remote project",
	Long: `Addfiles uploads files that do not exist in the project yet. Unlike
updatefiles it takes files only from -f flags; the configured "files"
list is not consulted.`,
	RunE: runAddFiles,
}

func init() {
	addFilesCmd.Flags().StringArrayP("file", "f", nil, "Localization file to add (repeatable)")
	rootCmd.AddCommand(addFilesCmd)
}

func runAddFiles(cmd *cobra.Command, args []string) error {
	s, err := getSettings()
	if err != nil {
		return err
	}

	// No config fallback here: addfiles sends exactly what was flagged,
	// even if that is nothing.
	paths, _ := cmd.Flags().GetStringArray("file")
	files := fileset.Build(paths)

	project := s.Project()
	client := crowdin.NewClient(s.GetString("api"))

	fmt.Printf("Adding %d file(s) to project %s...\n", len(files), project.ProjectID)

	res, err := client.AddFiles(cmd.Context(), crowdin.Credentials{
		ProjectID:  project.ProjectID,
		ProjectKey: project.ProjectKey,
	}, files)
	if err != nil {
		return err
	}

	if !res.Success {
		fmt.Printf("%s (HTTP %d):\n", errorStyle.Render("Add failed"), res.StatusCode)
		fmt.Println(res.Body)
		return fmt.Errorf("add-file returned HTTP %d", res.StatusCode)
	}

	fmt.Println(successStyle.Render("Add complete"))
	if res.Body != "" {
		fmt.Println(res.Body)
	}
	return nil
}
