package main

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"shortnotes/internal/app"
	"shortnotes/internal/publish"
)

var (
	loadDotEnv   = godotenv.Load
	newPublisher = publish.NewFromEnv
)

var (
	publishTag  string
	publishRepo string
)

var publishCmd = &cobra.Command{
	Use:   "publish <version_name>",
	Short: "Generate notes and store them on the GitHub release",
	Long: `Generate the notes exactly as the root command does, then set them as the
body of the GitHub release for --tag (default v<version_name>). A draft
release is created when the tag has none.

GITHUB_TOKEN is read from the environment or from a .env file.`,
	Args: exactlyOneVersion,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishTag, "tag", "", "Release tag (default v<version_name>)")
	publishCmd.Flags().StringVar(&publishRepo, "repo-slug", "", "GitHub repository as owner/name (default github.repository from config)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = loadDotEnv()

	opts, err := commandOptions(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	repository := publishRepo
	if repository == "" {
		repository = cfg.GitHub.Repository
	}
	if repository == "" {
		return errors.New("no GitHub repository: pass --repo-slug or set github.repository in the config")
	}

	publisher, err := newPublisher(repository)
	if err != nil {
		return err
	}

	notes, err := app.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	tag := publishTag
	if tag == "" {
		tag = "v" + opts.Version
	}
	link, err := publisher.Publish(cmd.Context(), tag, notes)
	if err != nil {
		return fmt.Errorf("publish %s: %w", tag, err)
	}
	opts.Logger.Printf("Published release notes to %s", link)
	return nil
}
