// Package publish writes generated notes into the body of a GitHub release.
package publish

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrMissingToken is returned when GITHUB_TOKEN is not set.
var ErrMissingToken = errors.New("GITHUB_TOKEN is not set")

// Publisher updates or creates the release for a tag.
type Publisher struct {
	client *github.Client
	owner  string
	repo   string
}

// New wraps an existing client. repository is "owner/name".
func New(client *github.Client, repository string) (*Publisher, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(repository), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, fmt.Errorf("repository must look like owner/name, got %q", repository)
	}
	return &Publisher{client: client, owner: owner, repo: repo}, nil
}

// NewFromEnv authenticates with GITHUB_TOKEN.
func NewFromEnv(repository string) (*Publisher, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}
	return New(github.NewClient(nil).WithAuthToken(token), repository)
}

// Publish sets body on the release for tag, creating a draft release when none exists.
// It returns the release page URL.
func (p *Publisher) Publish(ctx context.Context, tag, body string) (string, error) {
	rel, resp, err := p.client.Repositories.GetReleaseByTag(ctx, p.owner, p.repo, tag)
	switch {
	case err == nil:
		rel, _, err = p.client.Repositories.EditRelease(ctx, p.owner, p.repo, rel.GetID(), &github.RepositoryRelease{
			Body: github.String(body),
		})
		if err != nil {
			return "", fmt.Errorf("edit release %s: %w", tag, err)
		}
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		rel, _, err = p.client.Repositories.CreateRelease(ctx, p.owner, p.repo, &github.RepositoryRelease{
			TagName: github.String(tag),
			Name:    github.String(tag),
			Body:    github.String(body),
			Draft:   github.Bool(true),
		})
		if err != nil {
			return "", fmt.Errorf("create release %s: %w", tag, err)
		}
	default:
		return "", fmt.Errorf("get release %s: %w", tag, err)
	}
	return rel.GetHTMLURL(), nil
}
