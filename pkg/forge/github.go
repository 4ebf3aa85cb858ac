package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
	// resolveTimeout bounds a single API lookup.
	resolveTimeout = 10 * time.Second
)

// ownerRepoRegexp matches the bare owner/repo shorthand. GitHub usernames
// cannot contain slashes; repository names cannot either.
var ownerRepoRegexp = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]*)/([A-Za-z0-9._-]+)$`)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ParseRepoReference parses various repository reference formats.
func (g *GitHub) ParseRepoReference(repoRef string) (*RepoReference, error) {
	// 1. GitHub repository URL: https://github.com/owner/repo[.git]
	if strings.Contains(repoRef, GitHubDomain+"/") {
		return g.parseGitHubURL(repoRef)
	}

	// 2. SSH form: git@github.com:owner/repo.git
	if strings.Contains(repoRef, "git@"+GitHubDomain+":") {
		return g.parseSSHURL(repoRef)
	}

	// 3. Bare owner/repo shorthand: lerenn/gitwrap
	if matches := ownerRepoRegexp.FindStringSubmatch(repoRef); matches != nil {
		owner, repo := matches[1], strings.TrimSuffix(matches[2], ".git")
		return &RepoReference{
			Owner: owner,
			Name:  repo,
			URL:   fmt.Sprintf("https://%s/%s/%s", GitHubDomain, owner, repo),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidRepoRef, repoRef)
}

// parseGitHubURL parses HTTPS repository URLs.
func (g *GitHub) parseGitHubURL(urlStr string) (*RepoReference, error) {
	re := regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	matches := re.FindStringSubmatch(urlStr)
	if len(matches) != 3 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRepoRef, urlStr)
	}

	return &RepoReference{
		Owner: matches[1],
		Name:  matches[2],
		URL:   urlStr,
	}, nil
}

// parseSSHURL parses git@github.com:owner/repo.git references.
func (g *GitHub) parseSSHURL(urlStr string) (*RepoReference, error) {
	re := regexp.MustCompile(`github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	matches := re.FindStringSubmatch(urlStr)
	if len(matches) != 3 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRepoRef, urlStr)
	}

	return &RepoReference{
		Owner: matches[1],
		Name:  matches[2],
		URL:   urlStr,
	}, nil
}

// GetRepositoryInfo resolves a reference to clone URLs and default branch
// using the GitHub API.
func (g *GitHub) GetRepositoryInfo(ctx context.Context, ref *RepoReference) (*RepoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	repo, resp, err := g.client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, ref)
	}

	return &RepoInfo{
		Owner:         ref.Owner,
		Name:          ref.Name,
		CloneURL:      repo.GetCloneURL(),
		SSHURL:        repo.GetSSHURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
	}, nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, ref *RepoReference) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, ref.Owner, ref.Name)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to resolve repository: %w", err)
}
