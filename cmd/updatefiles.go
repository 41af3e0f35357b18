package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomsleight/crowdsync/internal/crowdin"
	"github.com/tomsleight/crowdsync/internal/fileset"
)

var updateFilesCmd = &cobra.Command{
	Use:   "updatefiles",
	Short: "Update existing localization files in the remote project",
	Long: `Updatefiles replaces the content of files already present in the project.
Files come from repeated -f flags, or from the configured "files" list
when no flags are given.`,
	RunE: runUpdateFiles,
}

func init() {
	updateFilesCmd.Flags().StringArrayP("file", "f", nil, "Localization file to update (repeatable)")
	rootCmd.AddCommand(updateFilesCmd)
}

func runUpdateFiles(cmd *cobra.Command, args []string) error {
	s, err := getSettings()
	if err != nil {
		return err
	}

	paths, _ := cmd.Flags().GetStringArray("file")
	if len(paths) == 0 {
		paths = s.Files()
	}
	files := fileset.Build(paths)

	project := s.Project()
	client := crowdin.NewClient(s.GetString("api"))

	fmt.Printf("Updating %d file(s) in project %s...\n", len(files), project.ProjectID)

	res, err := client.UpdateFiles(cmd.Context(), crowdin.Credentials{
		ProjectID:  project.ProjectID,
		ProjectKey: project.ProjectKey,
	}, files)
	if err != nil {
		return err
	}

	if !res.Success {
		fmt.Printf("%s (HTTP %d):\n", errorStyle.Render("Update failed"), res.StatusCode)
		fmt.Println(res.Body)
		return fmt.Errorf("update-file returned HTTP %d", res.StatusCode)
	}

	fmt.Println(successStyle.Render("Update complete"))
	return nil
}
