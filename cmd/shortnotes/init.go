package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"shortnotes/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the built-in settings to <repo>/.shortnotes.yml (or --config) so
the app name, footer, keywords and limits can be edited.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := flags.ConfigPath
	if path == "" {
		path = filepath.Join(flags.RepoPath, config.DefaultFileName)
	}

	if err := config.Write(path, config.Default(), initForce); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
