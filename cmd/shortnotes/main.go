// Package main provides the shortnotes CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"shortnotes/internal/app"
)

// Version is set at build time via ldflags
var Version = "dev"

var flags app.FlagValues

// usageError is returned by argument validators; execute prints the usage line for it.
type usageError struct {
	useLine string
}

func (e usageError) Error() string {
	return "usage: " + e.useLine
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var usage usageError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Usage: %s\n", usage.useLine)
	case errors.Is(err, app.ErrConfig):
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return ExitConfigError
	default:
		// SilenceErrors is set, so cobra errors such as unknown flags surface here
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	return ExitError
}

var rootCmd = &cobra.Command{
	Use:   "shortnotes <version_name>",
	Short: "Generate short store release notes from git history",
	Long: `shortnotes scans commit subjects since the last v* tag, sorts them into
new features, fixes and improvements, and prints a store-ready summary
of at most 500 characters.

The notes go to stdout; diagnostics go to stderr.`,
	Args:          exactlyOneVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.RepoPath, "repo", ".", "Path to the git repository")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Config file (default <repo>/.shortnotes.yml)")
	rootCmd.PersistentFlags().StringVarP(&flags.OutputPath, "output", "o", "", "Also write the notes to this file")
	rootCmd.Version = Version
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := commandOptions(cmd, args)
	if err != nil {
		return err
	}
	_, err = app.Run(cmd.Context(), opts)
	return err
}

func commandOptions(cmd *cobra.Command, args []string) (app.Options, error) {
	opts, err := app.OptionsFromArgs(args, flags)
	if err != nil {
		return app.Options{}, err
	}
	opts.Stdout = cmd.OutOrStdout()
	opts.Logger = log.New(cmd.ErrOrStderr(), "", 0)
	return opts, nil
}

func exactlyOneVersion(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{useLine: cmd.UseLine()}
	}
	return nil
}
