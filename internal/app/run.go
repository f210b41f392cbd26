package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"shortnotes/internal/classify"
	"shortnotes/internal/config"
	"shortnotes/internal/gitlog"
	"shortnotes/internal/model"
	"shortnotes/internal/render"
)

// ErrConfig marks failures to load or validate the config file.
var ErrConfig = errors.New("config error")

// Generate runs the pipeline: git range -> classification -> rendered notes.
// Git failures are logged and produce the generic notes.
func Generate(ctx context.Context, cfg config.Config, src gitlog.Source, version string, logger *log.Logger) string {
	fromRef := releaseRange(ctx, src, logger)

	commits, err := src.Subjects(ctx, fromRef)
	if err != nil {
		logger.Printf("warning: %v", err)
		commits = nil
	}

	note := model.ReleaseNote{
		Version: version,
		FromRef: fromRef,
		Commits: commits,
		Buckets: classify.New(cfg).Classify(commits),
	}
	return render.New(cfg).Render(note)
}

// releaseRange returns the last release tag, or "" for the whole history, and logs which range is used.
func releaseRange(ctx context.Context, src gitlog.Source, logger *log.Logger) string {
	tag, ok, err := src.LastTag(ctx)
	if err != nil {
		logger.Printf("warning: %v", err)
		ok = false
	}
	if !ok {
		logger.Print("No previous tag found, generating initial release notes")
		return ""
	}
	logger.Printf("Generating release notes from %s to HEAD", tag)
	return tag
}

// Run loads config, generates notes for opts.Version and writes them out.
func Run(ctx context.Context, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return "", err
	}

	notes := Generate(ctx, cfg, opts.Collector(cfg), opts.Version, logger)

	if err := emit(stdout, opts.OutputPath, notes); err != nil {
		return "", err
	}
	logger.Printf("\n[Length: %d characters]", utf8.RuneCountInString(notes))
	return notes, nil
}

// LoadConfig loads the config file, marking failures with ErrConfig.
func LoadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

func emit(stdout io.Writer, outputPath, notes string) error {
	if _, err := fmt.Fprintln(stdout, notes); err != nil {
		return fmt.Errorf("write release notes: %w", err)
	}
	if outputPath == "" {
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(notes), 0o644); err != nil {
		return fmt.Errorf("write release notes: %w", err)
	}
	return nil
}
