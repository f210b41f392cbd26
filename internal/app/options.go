package app

import (
	"errors"
	"io"
	"log"
	"path/filepath"

	"shortnotes/internal/config"
	"shortnotes/internal/gitlog"
)

// Options collect validated inputs for one run.
type Options struct {
	Version    string
	RepoPath   string
	ConfigPath string
	OutputPath string

	// Runner overrides how git is invoked; nil runs the git binary.
	Runner gitlog.CommandRunner
	Stdout io.Writer
	Logger *log.Logger
}

// FlagValues mirrors the command-line flags so parsing and validation stay in one place.
type FlagValues struct {
	RepoPath   string
	ConfigPath string
	OutputPath string
}

// OptionsFromFlags resolves default paths. The config file defaults to the repository root.
func OptionsFromFlags(f FlagValues) Options {
	repo := f.RepoPath
	if repo == "" {
		repo = "."
	}
	cfgPath := f.ConfigPath
	if cfgPath == "" {
		cfgPath = filepath.Join(repo, config.DefaultFileName)
	}

	opts := Options{
		RepoPath:   filepath.Clean(repo),
		ConfigPath: filepath.Clean(cfgPath),
	}
	if f.OutputPath != "" {
		opts.OutputPath = filepath.Clean(f.OutputPath)
	}
	return opts
}

// OptionsFromArgs checks the argument count on top of OptionsFromFlags.
// The version name is used verbatim in the title.
func OptionsFromArgs(args []string, f FlagValues) (Options, error) {
	if len(args) != 1 {
		return Options{}, errors.New("expected exactly one version name")
	}

	opts := OptionsFromFlags(f)
	opts.Version = args[0]
	return opts, nil
}

// Collector returns the git source for the configured repository.
func (o Options) Collector(cfg config.Config) gitlog.Collector {
	return gitlog.Collector{RepoPath: o.RepoPath, Runner: o.Runner, TagPattern: cfg.TagPattern}
}
