package app

import (
	"path/filepath"
	"testing"
)

func TestOptionsFromArgs(t *testing.T) {
	t.Run("requires a version", func(t *testing.T) {
		if _, err := OptionsFromArgs(nil, FlagValues{}); err == nil {
			t.Fatalf("expected error when no version provided")
		}
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		if _, err := OptionsFromArgs([]string{"1.2.3", "extra"}, FlagValues{}); err == nil {
			t.Fatalf("expected error for extra arguments")
		}
	})

	t.Run("keeps version verbatim", func(t *testing.T) {
		for _, version := range []string{" 1.2.3 ", ""} {
			opts, err := OptionsFromArgs([]string{version}, FlagValues{})
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", version, err)
			}
			if opts.Version != version {
				t.Fatalf("expected version %q, got %q", version, opts.Version)
			}
		}
	})

	t.Run("defaults repo and config path", func(t *testing.T) {
		opts, err := OptionsFromArgs([]string{"1.2.3"}, FlagValues{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.Version != "1.2.3" || opts.RepoPath != "." {
			t.Fatalf("unexpected options: %+v", opts)
		}
		if opts.ConfigPath != ".shortnotes.yml" {
			t.Fatalf("expected config next to repo, got %q", opts.ConfigPath)
		}
		if opts.OutputPath != "" {
			t.Fatalf("expected no output file, got %q", opts.OutputPath)
		}
	})

	t.Run("config defaults inside repo", func(t *testing.T) {
		opts, err := OptionsFromArgs([]string{"2.0"}, FlagValues{RepoPath: "/src/app/", OutputPath: "out//notes.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.ConfigPath != filepath.Join("/src/app", ".shortnotes.yml") {
			t.Fatalf("unexpected config path %q", opts.ConfigPath)
		}
		if opts.OutputPath != filepath.Join("out", "notes.txt") {
			t.Fatalf("unexpected output path %q", opts.OutputPath)
		}
	})

	t.Run("explicit config wins", func(t *testing.T) {
		opts, err := OptionsFromArgs([]string{"2.0"}, FlagValues{RepoPath: "/src/app", ConfigPath: "/etc/notes.yml"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.ConfigPath != "/etc/notes.yml" {
			t.Fatalf("unexpected config path %q", opts.ConfigPath)
		}
	})
}
