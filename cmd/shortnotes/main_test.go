package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-github/v66/github"

	"shortnotes/internal/app"
	"shortnotes/internal/config"
	"shortnotes/internal/publish"
)

func resetFlags(t *testing.T) {
	t.Helper()
	flags = app.FlagValues{RepoPath: "."}
	initForce = false
	publishTag = ""
	publishRepo = ""
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	resetFlags(t)

	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{name: "missing version", args: nil, want: "Usage: shortnotes <version_name> [flags]\n"},
		{name: "extra arguments", args: []string{"1.2.3", "1.2.4"}, want: "Usage: shortnotes <version_name> [flags]\n"},
		{name: "publish without version", args: []string{"publish"}, want: "Usage: shortnotes publish <version_name> [flags]\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tc.args...)
			if code != ExitError {
				t.Fatalf("expected exit %d, got %d", ExitError, code)
			}
			if stdout != "" {
				t.Fatalf("expected nothing on stdout, got %q", stdout)
			}
			if stderr != tc.want {
				t.Fatalf("unexpected stderr %q", stderr)
			}
		})
	}
}

func TestGenerateOutsideRepositoryFallsBack(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := run(t, "--repo", dir, "4.0.1")
	if code != ExitSuccess {
		t.Fatalf("expected success, got %d: %s", code, stderr)
	}

	want := `SmartCommute v4.0.1

Bug fixes and performance improvements.

Questions or feedback? Leave a review or contact us!

Happy commuting! 🚇
`
	if stdout != want {
		t.Fatalf("unexpected stdout:\n%s", stdout)
	}
	if !strings.Contains(stderr, "[Length: ") {
		t.Fatalf("expected length diagnostic on stderr, got %q", stderr)
	}
}

func TestConfigErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte("max_length: 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, _, stderr := run(t, "--repo", dir, "1.0")
	if code != ExitConfigError {
		t.Fatalf("expected exit %d, got %d", ExitConfigError, code)
	}
	if !strings.HasPrefix(stderr, "Error: ") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestInitWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := run(t, "init", "--repo", dir)
	if code != ExitSuccess {
		t.Fatalf("init failed with %d: %s", code, stderr)
	}
	path := filepath.Join(dir, config.DefaultFileName)
	if stdout != "Wrote "+path+"\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	if code, _, _ := run(t, "init", "--repo", dir); code != ExitError {
		t.Fatalf("expected second init to fail, got %d", code)
	}
	if code, _, _ := run(t, "init", "--repo", dir, "--force"); code != ExitSuccess {
		t.Fatalf("expected forced init to succeed, got %d", code)
	}
}

func TestPublish(t *testing.T) {
	var gotBody string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/app/releases/tags/v1.5.0", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3})
	})
	mux.HandleFunc("/repos/acme/app/releases/3", func(w http.ResponseWriter, r *http.Request) {
		var rel github.RepositoryRelease
		_ = json.NewDecoder(r.Body).Decode(&rel)
		gotBody = rel.GetBody()
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "html_url": "https://example.test/acme/app/releases/3"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := github.NewClient(srv.Client())
	base, _ := url.Parse(srv.URL + "/")
	client.BaseURL = base

	origLoad, origNew := loadDotEnv, newPublisher
	t.Cleanup(func() { loadDotEnv, newPublisher = origLoad, origNew })
	loadDotEnv = func(...string) error { return nil }
	newPublisher = func(repository string) (*publish.Publisher, error) {
		return publish.New(client, repository)
	}

	dir := t.TempDir()
	code, stdout, stderr := run(t, "publish", "--repo", dir, "--repo-slug", "acme/app", "1.5.0")
	if code != ExitSuccess {
		t.Fatalf("publish failed with %d: %s", code, stderr)
	}
	if gotBody == "" || stdout != gotBody+"\n" {
		t.Fatalf("expected published body to match stdout.\nbody:\n%s\nstdout:\n%s", gotBody, stdout)
	}
	if !strings.Contains(stderr, "Published release notes to https://example.test/acme/app/releases/3") {
		t.Fatalf("expected publish log, got %q", stderr)
	}
}

func TestPublishRequiresRepository(t *testing.T) {
	origLoad := loadDotEnv
	t.Cleanup(func() { loadDotEnv = origLoad })
	loadDotEnv = func(...string) error { return nil }

	code, _, stderr := run(t, "publish", "--repo", t.TempDir(), "1.5.0")
	if code != ExitError || !strings.Contains(stderr, "no GitHub repository") {
		t.Fatalf("expected missing repository error, got %d %q", code, stderr)
	}
}

func TestExplainOutsideRepository(t *testing.T) {
	code, stdout, stderr := run(t, "explain", "--repo", t.TempDir())
	if code != ExitSuccess {
		t.Fatalf("explain failed with %d: %s", code, stderr)
	}
	if stdout != "" {
		t.Fatalf("expected no decisions, got %q", stdout)
	}
	if !strings.Contains(stderr, "warning: ") {
		t.Fatalf("expected git warning on stderr, got %q", stderr)
	}
}
