package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"shortnotes/internal/app"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show how each commit in the release range is categorized",
	Args:  cobra.NoArgs,
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	opts := app.OptionsFromFlags(flags)
	logger := log.New(cmd.ErrOrStderr(), "", 0)
	cfg, err := app.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range app.Explain(cmd.Context(), cfg, opts.Collector(cfg), logger) {
		if d.Skipped {
			fmt.Fprintf(out, "%-13s %s\n", "skipped", d.Subject)
			continue
		}
		fmt.Fprintf(out, "%-13s %s\n%13s → %s\n", d.Category, d.Subject, "", d.Text)
	}
	return nil
}
