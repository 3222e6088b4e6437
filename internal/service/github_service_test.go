package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"trait_tracer_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubTestServer(t *testing.T, userStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		if userStatus != http.StatusOK {
			w.WriteHeader(userStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"public_repos": 8,
			"followers": 42,
			"bio": "Building things",
			"company": "@github",
			"created_at": "2020-01-15T00:00:00Z"
		}`))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"language": "Go", "stargazers_count": 10, "forks_count": 2},
			{"language": "Go", "stargazers_count": 5, "forks_count": 1},
			{"language": "TypeScript", "stargazers_count": 3, "forks_count": 0},
			{"language": null, "stargazers_count": 1, "forks_count": 0}
		]`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAnalyzeBuildsSummary(t *testing.T) {
	server := githubTestServer(t, http.StatusOK)
	svc := NewGithubService(config.GithubConfig{BaseURL: server.URL})

	summary := svc.Analyze(context.Background(), "octocat")
	require.NotNil(t, summary)

	assert.Equal(t, 8, summary.Repositories)
	assert.Equal(t, 42, summary.Followers)
	assert.Equal(t, []string{"Go", "TypeScript"}, summary.Languages)
	assert.Equal(t, 19, summary.TotalStars)
	assert.Equal(t, 3, summary.TotalForks)
	assert.True(t, summary.ProfessionalProfile)
	assert.Empty(t, summary.Error)
	assert.NotEmpty(t, summary.AccountAge)
}

func TestAnalyzeReturnsNilOnLookupFailure(t *testing.T) {
	server := githubTestServer(t, http.StatusNotFound)
	svc := NewGithubService(config.GithubConfig{BaseURL: server.URL})

	assert.Nil(t, svc.Analyze(context.Background(), "octocat"))
}

func TestAnalyzeReturnsNilOnEmptyUsername(t *testing.T) {
	svc := NewGithubService(config.GithubConfig{BaseURL: "http://127.0.0.1:1"})
	assert.Nil(t, svc.Analyze(context.Background(), ""))
}

func TestAccountAgeFormatting(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt string
		expected  string
	}{
		{name: "years and months", createdAt: "2020-01-15T00:00:00Z", expected: "6 years, 7 months"},
		{name: "single year", createdAt: "2025-07-01T00:00:00Z", expected: "1 year, 1 month"},
		{name: "months only", createdAt: "2026-05-01T00:00:00Z", expected: "4 months"},
		{name: "brand new", createdAt: "2026-08-20T00:00:00Z", expected: "0 month"},
		{name: "unparseable", createdAt: "yesterday", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, accountAge(tt.createdAt, now))
		})
	}
}
