// Package fetcher pulls per-repository course artifacts from the GitHub
// contents API: the README from the default branch and the worktree manifest
// from the worktree ref. Fetched files are cached on disk and never
// re-downloaded.
package fetcher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound     = errors.New("file not found")
	ErrUnauthorized = errors.New("invalid token")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrFetch        = errors.New("could not obtain file from the github api")
)

// githubContent is the contents API response for a single file.
type githubContent struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Client fetches files from GitHub repositories.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient returns a fetcher using token for authorization. An empty token
// sends unauthenticated requests.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    "https://api.github.com",
		token:      token,
	}
}

// fetchFile retrieves one file via the contents API, optionally from a
// non-default ref, and decodes its base64 payload.
func (c *Client) fetchFile(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, org, repo, path)
	if ref != "" {
		url += "?ref=" + ref
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s/%s: %w", repo, path, err)
	}
	req.Header.Set("User-Agent", "fuma-go")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", repo, path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s/%s: %w", repo, path, ErrNotFound)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return nil, ErrRateLimited
		}
		return nil, fmt.Errorf("%s/%s: %w", repo, path, ErrFetch)
	default:
		return nil, fmt.Errorf("%s/%s: status %s: %w", repo, path, resp.Status, ErrFetch)
	}

	var content githubContent
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("decoding %s/%s response: %w", repo, path, err)
	}

	if content.Encoding != "base64" {
		return []byte(content.Content), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decoding %s/%s content: %w", repo, path, err)
	}
	return decoded, nil
}

// FetchReadme retrieves README.md from the repository's default branch.
func (c *Client) FetchReadme(ctx context.Context, org, repo string) ([]byte, error) {
	return c.fetchFile(ctx, org, repo, "README.md", "")
}

// FetchWorktree retrieves worktree.json from the given ref.
func (c *Client) FetchWorktree(ctx context.Context, org, repo, ref string) ([]byte, error) {
	return c.fetchFile(ctx, org, repo, "worktree.json", ref)
}

// FetchRepoData fetches README and worktree manifest for one repository into
// reposDir as <repo>.mdx and <repo>.json. With skipExisting, files already
// on disk are left alone. Fetch failures are warnings; only write failures
// are errors.
func (c *Client) FetchRepoData(ctx context.Context, org, repo, worktreeRef, reposDir string, skipExisting bool) error {
	mdxPath := filepath.Join(reposDir, repo+".mdx")
	if !skipExisting || !fileExists(mdxPath) {
		content, err := c.FetchReadme(ctx, org, repo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to fetch README for %s: %v\n", repo, err)
		} else if err := os.WriteFile(mdxPath, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", mdxPath, err)
		}
	}

	jsonPath := filepath.Join(reposDir, repo+".json")
	if !skipExisting || !fileExists(jsonPath) {
		content, err := c.FetchWorktree(ctx, org, repo, worktreeRef)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to fetch worktree.json for %s: %v\n", repo, err)
		} else if err := os.WriteFile(jsonPath, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", jsonPath, err)
		}
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FetchAll fetches every listed repository with at most concurrency parallel
// downloads, reporting progress on a bar. The first write failure aborts the
// run; fetch failures only lower the success count.
func FetchAll(ctx context.Context, token, org string, repos []string, worktreeRef, reposDir string, concurrency int, skipExisting bool) error {
	fmt.Printf("Fetching %d repositories from GitHub...\n", len(repos))

	if err := os.MkdirAll(reposDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", reposDir, err)
	}

	client := NewClient(token)
	bar := pb.Full.Start(len(repos))
	defer bar.Finish()

	var failed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, repo := range repos {
		repo := repo
		g.Go(func() error {
			err := client.FetchRepoData(gctx, org, repo, worktreeRef, reposDir, skipExisting)
			if err != nil {
				atomic.AddInt64(&failed, 1)
			}
			bar.Increment()
			return err
		})
	}

	err := g.Wait()
	bar.Finish()
	fmt.Printf("Fetch complete: %d succeeded, %d failed\n", len(repos)-int(failed), failed)
	return err
}

// ResolveToken finds a GitHub token: PERSONAL_ACCESS_TOKEN, then
// GITHUB_TOKEN, then the gh CLI's stored token. Returns "" when none exists.
func ResolveToken() string {
	if token := os.Getenv("PERSONAL_ACCESS_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	out, err := exec.Command("gh", "auth", "token").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
