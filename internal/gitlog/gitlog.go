package gitlog

//go:generate mockgen -typed -source=gitlog.go -destination=../mocks/mock_gitlog.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// DefaultTagPattern matches release tags such as v1.2.3.
const DefaultTagPattern = `^v[0-9]`

// Source lists the release range and the commit subjects inside it.
type Source interface {
	// LastTag returns the newest tag matching the version pattern, by version sort order.
	LastTag(ctx context.Context) (tag string, ok bool, err error)

	// Subjects returns commit subjects after tag, or the whole history when tag is empty.
	Subjects(ctx context.Context, tag string) ([]string, error)
}

// CommandRunner runs an external command in dir and returns its stdout.
type CommandRunner interface {
	Exec(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Exec(ctx context.Context, dir string, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}

// Collector wraps the git queries. A nil Runner uses ExecRunner.
type Collector struct {
	RepoPath   string
	Runner     CommandRunner
	TagPattern string
}

func (c Collector) LastTag(ctx context.Context) (string, bool, error) {
	pattern := c.TagPattern
	if pattern == "" {
		pattern = DefaultTagPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false, fmt.Errorf("tag pattern %q: %w", pattern, err)
	}

	out, err := c.git(ctx, "tag", "--sort=-v:refname")
	if err != nil {
		return "", false, fmt.Errorf("git tag: %w", err)
	}

	for _, line := range strings.Split(out, "\n") {
		tag := strings.TrimSpace(line)
		if tag != "" && re.MatchString(tag) {
			return tag, true, nil
		}
	}
	return "", false, nil
}

func (c Collector) Subjects(ctx context.Context, tag string) ([]string, error) {
	args := []string{"log"}
	if tag != "" {
		args = append(args, tag+"..HEAD")
	}
	args = append(args, "--pretty=format:%s")

	out, err := c.git(ctx, args...)
	if err != nil {
		if tag != "" {
			return nil, fmt.Errorf("git log %s..HEAD: %w", tag, err)
		}
		return nil, fmt.Errorf("git log: %w", err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (c Collector) git(ctx context.Context, args ...string) (string, error) {
	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	return runner.Exec(ctx, c.RepoPath, "git", args...)
}
