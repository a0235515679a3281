package fetcher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.baseURL = server.URL
	return client
}

func contentResponse(t *testing.T, body string) []byte {
	t.Helper()
	payload, err := json.Marshal(githubContent{
		Content:  base64.StdEncoding.EncodeToString([]byte(body)),
		Encoding: "base64",
	})
	assert.NoError(t, err)
	return payload
}

func TestFetchReadme(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/HITSZ-OpenAuto/MATH1001/contents/README.md", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("ref"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Write(contentResponse(t, "# 数学分析\n\ncontent\n"))
	})

	got, err := client.FetchReadme(context.Background(), "HITSZ-OpenAuto", "MATH1001")
	assert.NoError(t, err)
	assert.Equal(t, "# 数学分析\n\ncontent\n", string(got))
}

func TestFetchWorktreeUsesRef(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/HITSZ-OpenAuto/MATH1001/contents/worktree.json", r.URL.Path)
		assert.Equal(t, "worktree", r.URL.Query().Get("ref"))
		w.Write(contentResponse(t, `{"a.pdf":{"size":1,"time":0}}`))
	})

	got, err := client.FetchWorktree(context.Background(), "HITSZ-OpenAuto", "MATH1001", "worktree")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"a.pdf":{"size":1,"time":0}}`, string(got))
}

func TestFetchFileBase64WithNewlines(t *testing.T) {
	// The contents API wraps base64 payloads in newlines every 60 chars.
	encoded := base64.StdEncoding.EncodeToString([]byte("hello world"))
	wrapped := encoded[:4] + "\n" + encoded[4:] + "\n"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(githubContent{Content: wrapped, Encoding: "base64"})
	})

	got, err := client.fetchFile(context.Background(), "org", "repo", "file.txt", "")
	assert.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}

func TestFetchFileStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		wantErr error
	}{
		{"not found", http.StatusNotFound, nil, ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, nil, ErrUnauthorized},
		{"rate limited", http.StatusForbidden, map[string]string{"X-RateLimit-Remaining": "0"}, ErrRateLimited},
		{"server error", http.StatusInternalServerError, nil, ErrFetch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			})

			_, err := client.fetchFile(context.Background(), "org", "repo", "x", "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchRepoData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/org/COURSE/contents/README.md":
			w.Write(contentResponse(t, "# Course\n"))
		case r.URL.Path == "/repos/org/COURSE/contents/worktree.json":
			w.Write(contentResponse(t, "{}"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	dir := t.TempDir()
	err := client.FetchRepoData(context.Background(), "org", "COURSE", "worktree", dir, true)
	assert.NoError(t, err)

	mdx, err := os.ReadFile(filepath.Join(dir, "COURSE.mdx"))
	assert.NoError(t, err)
	assert.Equal(t, "# Course\n", string(mdx))

	manifest, err := os.ReadFile(filepath.Join(dir, "COURSE.json"))
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(manifest))
}

func TestFetchRepoDataSkipsExisting(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write(contentResponse(t, "fresh"))
	})

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "COURSE.mdx"), []byte("cached"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "COURSE.json"), []byte("{}"), 0o644))

	err := client.FetchRepoData(context.Background(), "org", "COURSE", "worktree", dir, true)
	assert.NoError(t, err)
	assert.Zero(t, requests, "cached files must not be re-fetched")

	cached, err := os.ReadFile(filepath.Join(dir, "COURSE.mdx"))
	assert.NoError(t, err)
	assert.Equal(t, "cached", string(cached))
}

func TestFetchRepoDataRefetchesWhenSkipDisabled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(contentResponse(t, "fresh"))
	})

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "COURSE.mdx"), []byte("cached"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "COURSE.json"), []byte("{}"), 0o644))

	err := client.FetchRepoData(context.Background(), "org", "COURSE", "worktree", dir, false)
	assert.NoError(t, err)

	refreshed, err := os.ReadFile(filepath.Join(dir, "COURSE.mdx"))
	assert.NoError(t, err)
	assert.Equal(t, "fresh", string(refreshed), "disabled skip must overwrite cached files")
}

func TestFetchRepoDataFetchFailureIsWarning(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.FetchRepoData(context.Background(), "org", "MISSING", "worktree", t.TempDir(), true)
	assert.NoError(t, err, "fetch failures must not abort the repo")
}

func TestResolveTokenEnvPriority(t *testing.T) {
	t.Setenv("PERSONAL_ACCESS_TOKEN", "pat-token")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	assert.Equal(t, "pat-token", ResolveToken())

	t.Setenv("PERSONAL_ACCESS_TOKEN", "")
	assert.Equal(t, "gh-token", ResolveToken())
}
